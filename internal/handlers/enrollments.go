package handlers

import (
	"net/http"
	"strings"
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

type EnrollmentsHandler struct {
	EnrollmentStorage repository.EnrollmentStorageRepositoryI
	validate          *validatorv10.Validate
}

func NewEnrollmentsHandler(storage repository.EnrollmentStorageRepositoryI, validate *validatorv10.Validate) *EnrollmentsHandler {
	return &EnrollmentsHandler{EnrollmentStorage: storage, validate: validate}
}

// Add registers an enrollment the admin entered manually, usually for
// payments made outside the site.
func (h *EnrollmentsHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req schemas.EnrollmentRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	enrollment := models.Enrollment{
		ID:            uuid.NewString(),
		CourseID:      req.CourseID,
		StudentName:   req.StudentName,
		StudentEmail:  req.StudentEmail,
		StudentPhone:  req.StudentPhone,
		TransactionID: req.TransactionID,
		PaymentMethod: req.PaymentMethod,
		Status:        models.EnrollmentPending,
		CreatedAt:     time.Now().UTC(),
	}

	if err := h.EnrollmentStorage.Create(r.Context(), enrollment); err != nil {
		writeRepositoryError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, enrollment)
}

func (h *EnrollmentsHandler) GetList(w http.ResponseWriter, r *http.Request) {
	courseID := r.URL.Query().Get("courseId")
	status := r.URL.Query().Get("status")

	enrollments, err := h.EnrollmentStorage.GetList(r.Context(), courseID, status)
	if err != nil {
		http.Error(w, "enrollments were not found", http.StatusInternalServerError)
		logger.Log.Error("enrollments were not found", zap.Error(err))
		return
	}

	writeJSON(w, http.StatusOK, enrollments)
}

func (h *EnrollmentsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	enrollmentID := chi.URLParam(r, "enrollmentID")

	var req schemas.UpdateEnrollmentStatusRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	newStatus := models.EnrollmentStatus(strings.ToLower(req.Status))
	if err := h.EnrollmentStorage.UpdateStatus(r.Context(), enrollmentID, newStatus); err != nil {
		writeRepositoryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": enrollmentID, "status": string(newStatus)})
}
