package httpserver

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieLifecycle(t *testing.T) {
	srv := buildTestServer(t)

	rec := doRequest(srv, http.MethodPost, "/movies/", `{"name":"Dune","description":"Sci-fi epic","popularity":95}`)
	require.Equal(t, http.StatusOK, rec.Code)
	created := decodeBody[movieResponse](t, rec)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Dune", created.Name)
	assert.Equal(t, "Sci-fi epic", created.Description)
	assert.Equal(t, int32(95), created.Popularity)

	rec = doRequest(srv, http.MethodGet, fmt.Sprintf("/movies/%d", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decodeBody[movieResponse](t, rec))

	updateBody := `{"name":"Dune","description":"Updated","popularity":98}`
	want := movieResponse{ID: created.ID, Name: "Dune", Description: "Updated", Popularity: 98}

	rec = doRequest(srv, http.MethodPut, fmt.Sprintf("/movies/%d", created.ID), updateBody)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, decodeBody[movieResponse](t, rec))

	// Same payload again: idempotent, identical response and state.
	rec = doRequest(srv, http.MethodPut, fmt.Sprintf("/movies/%d", created.ID), updateBody)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, decodeBody[movieResponse](t, rec))

	rec = doRequest(srv, http.MethodGet, fmt.Sprintf("/movies/%d", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, decodeBody[movieResponse](t, rec))

	rec = doRequest(srv, http.MethodDelete, fmt.Sprintf("/movies/%d", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Movie deleted", decodeBody[messageResponse](t, rec).Message)

	rec = doRequest(srv, http.MethodGet, fmt.Sprintf("/movies/%d", created.ID), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Movie not found", decodeBody[errorResponse](t, rec).Detail)
}

func TestMovieNotFound(t *testing.T) {
	srv := buildTestServer(t)

	rec := doRequest(srv, http.MethodGet, "/movies/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Movie not found", decodeBody[errorResponse](t, rec).Detail)

	rec = doRequest(srv, http.MethodPut, "/movies/999", `{"name":"x","description":"y","popularity":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(srv, http.MethodDelete, "/movies/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListMovies(t *testing.T) {
	srv := buildTestServer(t)

	rec := doRequest(srv, http.MethodGet, "/movies/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	for i := 0; i < 3; i++ {
		body := fmt.Sprintf(`{"name":"Movie %d","description":"d","popularity":%d}`, i, i)
		rec := doRequest(srv, http.MethodPost, "/movies/", body)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec = doRequest(srv, http.MethodGet, "/movies/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]movieResponse](t, rec), 3)
}
