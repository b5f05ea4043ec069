package httpserver

import (
	"errors"
	"net/http"

	"github.com/Zemfira-B/RabotaWeb/internal/domain"
	"github.com/Zemfira-B/RabotaWeb/internal/repository"
)

type movieRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Popularity  *int32  `json:"popularity"`
}

type movieResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Popularity  int32  `json:"popularity"`
}

func (req movieRequest) params() (repository.MovieParams, error) {
	if req.Name == nil {
		return repository.MovieParams{}, errors.New("name is required")
	}
	if req.Description == nil {
		return repository.MovieParams{}, errors.New("description is required")
	}
	if req.Popularity == nil {
		return repository.MovieParams{}, errors.New("popularity is required")
	}
	return repository.MovieParams{
		Name:        *req.Name,
		Description: *req.Description,
		Popularity:  *req.Popularity,
	}, nil
}

func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := s.repo.Movies.List(r.Context())
	if err != nil {
		s.logger.Printf("list movies error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to list movies")
		return
	}

	items := make([]movieResponse, 0, len(movies))
	for _, movie := range movies {
		items = append(items, toMovieResponse(movie))
	}
	s.respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	movie, err := s.repo.Movies.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "Movie not found")
			return
		}
		s.logger.Printf("get movie %d error: %v", id, err)
		s.respondError(w, http.StatusInternalServerError, "Failed to fetch movie")
		return
	}
	s.respondJSON(w, http.StatusOK, toMovieResponse(movie))
}

func (s *Server) handleCreateMovie(w http.ResponseWriter, r *http.Request) {
	var req movieRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	params, err := req.params()
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	movie, err := s.repo.Movies.Create(r.Context(), params)
	if err != nil {
		s.logger.Printf("create movie error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to create movie")
		return
	}
	s.respondJSON(w, http.StatusOK, toMovieResponse(movie))
}

func (s *Server) handleUpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req movieRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	params, err := req.params()
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.repo.Movies.Update(r.Context(), id, params); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "Movie not found")
			return
		}
		s.logger.Printf("update movie %d error: %v", id, err)
		s.respondError(w, http.StatusInternalServerError, "Failed to update movie")
		return
	}

	// The response echoes the submitted fields; no re-fetch.
	s.respondJSON(w, http.StatusOK, movieResponse{
		ID:          id,
		Name:        params.Name,
		Description: params.Description,
		Popularity:  params.Popularity,
	})
}

func (s *Server) handleDeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.repo.Movies.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "Movie not found")
			return
		}
		s.logger.Printf("delete movie %d error: %v", id, err)
		s.respondError(w, http.StatusInternalServerError, "Failed to delete movie")
		return
	}
	s.respondJSON(w, http.StatusOK, messageResponse{Message: "Movie deleted"})
}

func toMovieResponse(movie domain.Movie) movieResponse {
	return movieResponse{
		ID:          movie.ID,
		Name:        movie.Name,
		Description: movie.Description,
		Popularity:  movie.Popularity,
	}
}
