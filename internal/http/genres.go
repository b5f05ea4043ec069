package httpserver

import (
	"errors"
	"net/http"

	"github.com/Zemfira-B/RabotaWeb/internal/domain"
	"github.com/Zemfira-B/RabotaWeb/internal/repository"
)

type genreRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Popularity  *int32  `json:"popularity"`
}

type genreResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Popularity  int32  `json:"popularity"`
}

func (req genreRequest) params() (repository.GenreParams, error) {
	if req.Name == nil {
		return repository.GenreParams{}, errors.New("name is required")
	}
	if req.Description == nil {
		return repository.GenreParams{}, errors.New("description is required")
	}
	if req.Popularity == nil {
		return repository.GenreParams{}, errors.New("popularity is required")
	}
	return repository.GenreParams{
		Name:        *req.Name,
		Description: *req.Description,
		Popularity:  *req.Popularity,
	}, nil
}

func (s *Server) handleListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := s.repo.Genres.List(r.Context())
	if err != nil {
		s.logger.Printf("list genres error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to list genres")
		return
	}

	items := make([]genreResponse, 0, len(genres))
	for _, genre := range genres {
		items = append(items, toGenreResponse(genre))
	}
	s.respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleGetGenre(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	genre, err := s.repo.Genres.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "Genre not found")
			return
		}
		s.logger.Printf("get genre %d error: %v", id, err)
		s.respondError(w, http.StatusInternalServerError, "Failed to fetch genre")
		return
	}
	s.respondJSON(w, http.StatusOK, toGenreResponse(genre))
}

func (s *Server) handleCreateGenre(w http.ResponseWriter, r *http.Request) {
	var req genreRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	params, err := req.params()
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	genre, err := s.repo.Genres.Create(r.Context(), params)
	if err != nil {
		s.logger.Printf("create genre error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to create genre")
		return
	}
	s.respondJSON(w, http.StatusOK, toGenreResponse(genre))
}

func (s *Server) handleUpdateGenre(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req genreRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	params, err := req.params()
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.repo.Genres.Update(r.Context(), id, params); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "Genre not found")
			return
		}
		s.logger.Printf("update genre %d error: %v", id, err)
		s.respondError(w, http.StatusInternalServerError, "Failed to update genre")
		return
	}

	s.respondJSON(w, http.StatusOK, genreResponse{
		ID:          id,
		Name:        params.Name,
		Description: params.Description,
		Popularity:  params.Popularity,
	})
}

func (s *Server) handleDeleteGenre(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.repo.Genres.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "Genre not found")
			return
		}
		s.logger.Printf("delete genre %d error: %v", id, err)
		s.respondError(w, http.StatusInternalServerError, "Failed to delete genre")
		return
	}
	s.respondJSON(w, http.StatusOK, messageResponse{Message: "Genre deleted"})
}

func toGenreResponse(genre domain.Genre) genreResponse {
	return genreResponse{
		ID:          genre.ID,
		Name:        genre.Name,
		Description: genre.Description,
		Popularity:  genre.Popularity,
	}
}
