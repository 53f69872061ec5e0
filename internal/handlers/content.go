package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edumela/admin-api/internal/handlers/schemas"
	"github.com/edumela/admin-api/internal/middlewares/logger"
	"github.com/edumela/admin-api/internal/models"
	"github.com/edumela/admin-api/internal/repository"
)

// ContentHandler serves the CMS screens: notices, sliders, team, reviews.
type ContentHandler struct {
	ContentStorage repository.ContentStorageRepositoryI
	validate       *validatorv10.Validate
}

func NewContentHandler(storage repository.ContentStorageRepositoryI, validate *validatorv10.Validate) *ContentHandler {
	return &ContentHandler{ContentStorage: storage, validate: validate}
}

func (h *ContentHandler) AddNotice(w http.ResponseWriter, r *http.Request) {
	var req schemas.NoticeRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	notice := models.Notice{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Body:      req.Body,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.ContentStorage.CreateNotice(r.Context(), notice); err != nil {
		writeRepositoryError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, notice)
}

func (h *ContentHandler) GetNotices(w http.ResponseWriter, r *http.Request) {
	notices, err := h.ContentStorage.GetNotices(r.Context())
	if err != nil {
		http.Error(w, "notices were not found", http.StatusInternalServerError)
		logger.Log.Error("notices were not found", zap.Error(err))
		return
	}
	writeJSON(w, http.StatusOK, notices)
}

func (h *ContentHandler) DeleteNotice(w http.ResponseWriter, r *http.Request) {
	if err := h.ContentStorage.DeleteNotice(r.Context(), chi.URLParam(r, "noticeID")); err != nil {
		writeRepositoryError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ContentHandler) AddSlider(w http.ResponseWriter, r *http.Request) {
	var req schemas.SliderRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	slider := models.Slider{
		ID:       uuid.NewString(),
		Title:    req.Title,
		ImageURL: req.ImageURL,
		LinkURL:  req.LinkURL,
		Position: req.Position,
	}

	if err := h.ContentStorage.CreateSlider(r.Context(), slider); err != nil {
		writeRepositoryError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, slider)
}

func (h *ContentHandler) GetSliders(w http.ResponseWriter, r *http.Request) {
	sliders, err := h.ContentStorage.GetSliders(r.Context())
	if err != nil {
		http.Error(w, "sliders were not found", http.StatusInternalServerError)
		logger.Log.Error("sliders were not found", zap.Error(err))
		return
	}
	writeJSON(w, http.StatusOK, sliders)
}

func (h *ContentHandler) DeleteSlider(w http.ResponseWriter, r *http.Request) {
	if err := h.ContentStorage.DeleteSlider(r.Context(), chi.URLParam(r, "sliderID")); err != nil {
		writeRepositoryError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ContentHandler) AddTeamMember(w http.ResponseWriter, r *http.Request) {
	var req schemas.TeamMemberRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	member := models.TeamMember{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Role:     req.Role,
		PhotoURL: req.PhotoURL,
	}

	if err := h.ContentStorage.CreateTeamMember(r.Context(), member); err != nil {
		writeRepositoryError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, member)
}

func (h *ContentHandler) GetTeamMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.ContentStorage.GetTeamMembers(r.Context())
	if err != nil {
		http.Error(w, "team members were not found", http.StatusInternalServerError)
		logger.Log.Error("team members were not found", zap.Error(err))
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *ContentHandler) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	if err := h.ContentStorage.DeleteTeamMember(r.Context(), chi.URLParam(r, "memberID")); err != nil {
		writeRepositoryError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ContentHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.ContentStorage.GetReviews(r.Context())
	if err != nil {
		http.Error(w, "reviews were not found", http.StatusInternalServerError)
		logger.Log.Error("reviews were not found", zap.Error(err))
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *ContentHandler) SetReviewVisibility(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "reviewID")

	var req schemas.ReviewVisibilityRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	if err := h.ContentStorage.SetReviewVisibility(r.Context(), reviewID, *req.Visible); err != nil {
		writeRepositoryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"id": reviewID, "visible": *req.Visible})
}

func (h *ContentHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	if err := h.ContentStorage.DeleteReview(r.Context(), chi.URLParam(r, "reviewID")); err != nil {
		writeRepositoryError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
