package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	validatorv10 "github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edumela/admin-api/internal/handlers/schemas"
	"github.com/edumela/admin-api/internal/middlewares/logger"
	"github.com/edumela/admin-api/internal/models"
	"github.com/edumela/admin-api/internal/report"
	"github.com/edumela/admin-api/internal/repository"
)

// OrderReportServiceI is what the orders screen needs from the reporting
// pipeline; implemented by service.OrderReportService.
type OrderReportServiceI interface {
	FilteredOrders(ctx context.Context, criteria report.FilterCriteria) ([]models.Order, error)
	BookProducts(ctx context.Context) ([]report.BookProduct, error)
	WriteExport(ctx context.Context, criteria report.FilterCriteria, w io.Writer) error
}

type OrdersHandler struct {
	OrderStorage  repository.OrderStorageRepositoryI
	ReportService OrderReportServiceI
	validate      *validatorv10.Validate
}

func NewOrderHandler(storage repository.OrderStorageRepositoryI, reportService OrderReportServiceI, validate *validatorv10.Validate) *OrdersHandler {
	return &OrdersHandler{
		OrderStorage:  storage,
		ReportService: reportService,
		validate:      validate,
	}
}

func (h *OrdersHandler) GetList(w http.ResponseWriter, r *http.Request) {
	criteria := schemas.OrderFilterFromQuery(r.URL.Query())

	orders, err := h.ReportService.FilteredOrders(r.Context(), criteria)
	if err != nil {
		http.Error(w, "orders were not found", http.StatusInternalServerError)
		logger.Log.Error("orders were not found", zap.Error(err))
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

func (h *OrdersHandler) GetBookProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.ReportService.BookProducts(r.Context())
	if err != nil {
		http.Error(w, "book products were not found", http.StatusInternalServerError)
		logger.Log.Error("book products were not found", zap.Error(err))
		return
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *OrdersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	var req schemas.UpdateOrderStatusRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	err := h.OrderStorage.UpdateStatus(r.Context(), orderID, models.OrderStatus(strings.ToLower(req.Status)))
	if err != nil {
		writeRepositoryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": orderID, "status": strings.ToLower(req.Status)})
}

func (h *OrdersHandler) Export(w http.ResponseWriter, r *http.Request) {
	criteria := schemas.OrderFilterFromQuery(r.URL.Query())

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := h.ReportService.WriteExport(r.Context(), criteria, w); err != nil {
		http.Error(w, "export failed", http.StatusInternalServerError)
		logger.Log.Error("order export failed", zap.Error(err))
	}
}
