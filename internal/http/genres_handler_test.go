package httpserver

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenreLifecycle(t *testing.T) {
	srv := buildTestServer(t)

	rec := doRequest(srv, http.MethodGet, "/genres/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = doRequest(srv, http.MethodPost, "/genres/", `{"name":"Sci-fi","description":"Science fiction","popularity":80}`)
	require.Equal(t, http.StatusOK, rec.Code)
	created := decodeBody[genreResponse](t, rec)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Sci-fi", created.Name)

	rec = doRequest(srv, http.MethodGet, fmt.Sprintf("/genres/%d", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decodeBody[genreResponse](t, rec))

	rec = doRequest(srv, http.MethodPut, fmt.Sprintf("/genres/%d", created.ID), `{"name":"Sci-fi","description":"Speculative fiction","popularity":85}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[genreResponse](t, rec)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Speculative fiction", updated.Description)

	rec = doRequest(srv, http.MethodGet, "/genres/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]genreResponse](t, rec), 1)

	rec = doRequest(srv, http.MethodDelete, fmt.Sprintf("/genres/%d", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Genre deleted", decodeBody[messageResponse](t, rec).Message)

	rec = doRequest(srv, http.MethodGet, fmt.Sprintf("/genres/%d", created.ID), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Genre not found", decodeBody[errorResponse](t, rec).Detail)
}

func TestGenreNotFound(t *testing.T) {
	srv := buildTestServer(t)

	rec := doRequest(srv, http.MethodGet, "/genres/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Genre not found", decodeBody[errorResponse](t, rec).Detail)

	rec = doRequest(srv, http.MethodPut, "/genres/999", `{"name":"x","description":"y","popularity":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(srv, http.MethodDelete, "/genres/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
