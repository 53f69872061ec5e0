package service

import (
	"context"
	"io"

	"github.com/edumela/admin-api/internal/models"
	"github.com/edumela/admin-api/internal/report"
	"github.com/edumela/admin-api/internal/repository"
)

// OrderReportService glues the order storage to the reporting pipeline.
// It loads the full order list and runs the pure filter/export functions
// over the in-memory snapshot, the same way the admin screen does.
type OrderReportService struct {
	storage repository.OrderStorageRepositoryI
}

func NewOrderReportService(storage repository.OrderStorageRepositoryI) *OrderReportService {
	return &OrderReportService{storage: storage}
}

func (service *OrderReportService) FilteredOrders(ctx context.Context, criteria report.FilterCriteria) ([]models.Order, error) {
	orders, err := service.storage.GetList(ctx)
	if err != nil {
		return nil, err
	}
	return report.ApplyFilters(orders, criteria), nil
}

func (service *OrderReportService) BookProducts(ctx context.Context) ([]report.BookProduct, error) {
	orders, err := service.storage.GetList(ctx)
	if err != nil {
		return nil, err
	}
	return report.CollectUniqueBookProducts(orders), nil
}

func (service *OrderReportService) WriteExport(ctx context.Context, criteria report.FilterCriteria, w io.Writer) error {
	filtered, err := service.FilteredOrders(ctx, criteria)
	if err != nil {
		return err
	}
	return report.WriteWorkbook(w, report.BuildExportRows(filtered))
}
