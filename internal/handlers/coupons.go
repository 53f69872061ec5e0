package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edumela/admin-api/internal/handlers/schemas"
	"github.com/edumela/admin-api/internal/middlewares/logger"
	"github.com/edumela/admin-api/internal/models"
	"github.com/edumela/admin-api/internal/repository"
)

type CouponsHandler struct {
	CouponStorage repository.CouponStorageRepositoryI
	validate      *validatorv10.Validate
}

func NewCouponsHandler(storage repository.CouponStorageRepositoryI, validate *validatorv10.Validate) *CouponsHandler {
	return &CouponsHandler{CouponStorage: storage, validate: validate}
}

func (h *CouponsHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req schemas.CouponRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	coupon := models.Coupon{
		ID:              uuid.NewString(),
		Code:            req.Code,
		DiscountPercent: req.DiscountPercent,
		StartsAt:        req.StartsAt,
		ExpiresAt:       req.ExpiresAt,
		Active:          req.Active,
	}

	if err := h.CouponStorage.Create(r.Context(), coupon); err != nil {
		writeRepositoryError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, coupon)
}

func (h *CouponsHandler) GetList(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.CouponStorage.GetList(r.Context())
	if err != nil {
		http.Error(w, "coupons were not found", http.StatusInternalServerError)
		logger.Log.Error("coupons were not found", zap.Error(err))
		return
	}
	writeJSON(w, http.StatusOK, coupons)
}

func (h *CouponsHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	couponID := chi.URLParam(r, "couponID")

	var req struct {
		Active *bool `json:"active" validate:"required"`
	}
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	if err := h.CouponStorage.SetActive(r.Context(), couponID, *req.Active); err != nil {
		writeRepositoryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"id": couponID, "active": *req.Active})
}

func (h *CouponsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.CouponStorage.Delete(r.Context(), chi.URLParam(r, "couponID")); err != nil {
		writeRepositoryError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
