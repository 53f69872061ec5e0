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

type CatalogHandler struct {
	CatalogStorage repository.CatalogStorageRepositoryI
	validate       *validatorv10.Validate
}

func NewCatalogHandler(storage repository.CatalogStorageRepositoryI, validate *validatorv10.Validate) *CatalogHandler {
	return &CatalogHandler{CatalogStorage: storage, validate: validate}
}

func (h *CatalogHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req schemas.CourseRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	course := models.Course{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Published:   req.Published,
		CreatedAt:   time.Now().UTC(),
	}

	if err := h.CatalogStorage.CreateCourse(r.Context(), course); err != nil {
		writeRepositoryError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, course)
}

func (h *CatalogHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.CatalogStorage.GetCourses(r.Context())
	if err != nil {
		http.Error(w, "courses were not found", http.StatusInternalServerError)
		logger.Log.Error("courses were not found", zap.Error(err))
		return
	}
	writeJSON(w, http.StatusOK, courses)
}

func (h *CatalogHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	var req schemas.CourseRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	course := models.Course{
		ID:          chi.URLParam(r, "courseID"),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Published:   req.Published,
	}

	if err := h.CatalogStorage.UpdateCourse(r.Context(), course); err != nil {
		writeRepositoryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, course)
}

func (h *CatalogHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	if err := h.CatalogStorage.DeleteCourse(r.Context(), chi.URLParam(r, "courseID")); err != nil {
		writeRepositoryError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) CreateChapter(w http.ResponseWriter, r *http.Request) {
	var req schemas.ChapterRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	chapter := models.Chapter{
		ID:       uuid.NewString(),
		CourseID: req.CourseID,
		Title:    req.Title,
		Position: req.Position,
	}

	if err := h.CatalogStorage.CreateChapter(r.Context(), chapter); err != nil {
		writeRepositoryError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, chapter)
}

func (h *CatalogHandler) GetChapters(w http.ResponseWriter, r *http.Request) {
	chapters, err := h.CatalogStorage.GetChaptersByCourse(r.Context(), chi.URLParam(r, "courseID"))
	if err != nil {
		http.Error(w, "chapters were not found", http.StatusInternalServerError)
		logger.Log.Error("chapters were not found", zap.Error(err))
		return
	}
	writeJSON(w, http.StatusOK, chapters)
}

func (h *CatalogHandler) UpdateChapter(w http.ResponseWriter, r *http.Request) {
	var req schemas.ChapterRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	chapter := models.Chapter{
		ID:       chi.URLParam(r, "chapterID"),
		CourseID: req.CourseID,
		Title:    req.Title,
		Position: req.Position,
	}

	if err := h.CatalogStorage.UpdateChapter(r.Context(), chapter); err != nil {
		writeRepositoryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, chapter)
}

func (h *CatalogHandler) DeleteChapter(w http.ResponseWriter, r *http.Request) {
	if err := h.CatalogStorage.DeleteChapter(r.Context(), chi.URLParam(r, "chapterID")); err != nil {
		writeRepositoryError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) CreateClassSession(w http.ResponseWriter, r *http.Request) {
	var req schemas.ClassSessionRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	class := models.ClassSession{
		ID:        uuid.NewString(),
		ChapterID: req.ChapterID,
		Title:     req.Title,
		VideoURL:  req.VideoURL,
		Duration:  req.Duration,
		Position:  req.Position,
	}

	if err := h.CatalogStorage.CreateClassSession(r.Context(), class); err != nil {
		writeRepositoryError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, class)
}

func (h *CatalogHandler) GetClassSessions(w http.ResponseWriter, r *http.Request) {
	classes, err := h.CatalogStorage.GetClassesByChapter(r.Context(), chi.URLParam(r, "chapterID"))
	if err != nil {
		http.Error(w, "classes were not found", http.StatusInternalServerError)
		logger.Log.Error("classes were not found", zap.Error(err))
		return
	}
	writeJSON(w, http.StatusOK, classes)
}

func (h *CatalogHandler) UpdateClassSession(w http.ResponseWriter, r *http.Request) {
	var req schemas.ClassSessionRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	class := models.ClassSession{
		ID:        chi.URLParam(r, "classID"),
		ChapterID: req.ChapterID,
		Title:     req.Title,
		VideoURL:  req.VideoURL,
		Duration:  req.Duration,
		Position:  req.Position,
	}

	if err := h.CatalogStorage.UpdateClassSession(r.Context(), class); err != nil {
		writeRepositoryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, class)
}

func (h *CatalogHandler) DeleteClassSession(w http.ResponseWriter, r *http.Request) {
	if err := h.CatalogStorage.DeleteClassSession(r.Context(), chi.URLParam(r, "classID")); err != nil {
		writeRepositoryError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req schemas.ProductRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	product := models.Product{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DiscountedPrice: req.DiscountedPrice,
		Stock:           req.Stock,
		ImageURL:        req.ImageURL,
		CreatedAt:       time.Now().UTC(),
	}

	if err := h.CatalogStorage.CreateProduct(r.Context(), product); err != nil {
		writeRepositoryError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

func (h *CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.CatalogStorage.GetProducts(r.Context())
	if err != nil {
		http.Error(w, "products were not found", http.StatusInternalServerError)
		logger.Log.Error("products were not found", zap.Error(err))
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req schemas.ProductRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	product := models.Product{
		ID:              chi.URLParam(r, "productID"),
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DiscountedPrice: req.DiscountedPrice,
		Stock:           req.Stock,
		ImageURL:        req.ImageURL,
	}

	if err := h.CatalogStorage.UpdateProduct(r.Context(), product); err != nil {
		writeRepositoryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.CatalogStorage.DeleteProduct(r.Context(), chi.URLParam(r, "productID")); err != nil {
		writeRepositoryError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
