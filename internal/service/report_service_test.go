package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/edumela/admin-api/internal/models"
	"github.com/edumela/admin-api/internal/report"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetList(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, orderID string, newStatus models.OrderStatus) error {
	args := m.Called(ctx, orderID, newStatus)
	return args.Error(0)
}

func storedOrders() []models.Order {
	return []models.Order{
		{
			ID:           "o1",
			CustomerName: "Rahim",
			Status:       models.PendingStatus,
			Products:     []models.LineItem{{ID: "b1", Name: "Math Book"}},
		},
		{
			ID:           "o2",
			CustomerName: "Karim",
			Status:       models.DeliveredStatus,
			Products:     []models.LineItem{{ID: "t1", Name: "Red Shirt"}},
		},
	}
}

func TestOrderReportService_FilteredOrders(t *testing.T) {
	repo := new(MockOrderRepository)
	repo.On("GetList", mock.Anything).Return(storedOrders(), nil)

	service := NewOrderReportService(repo)

	criteria := report.FilterCriteria{
		SelectedType:   models.BooksType,
		SelectedStatus: report.StatusAll,
	}

	orders, err := service.FilteredOrders(context.Background(), criteria)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].ID)
	repo.AssertExpectations(t)
}

func TestOrderReportService_FilteredOrders_StorageError(t *testing.T) {
	repo := new(MockOrderRepository)
	repo.On("GetList", mock.Anything).Return([]models.Order{}, errors.New("connection lost"))

	service := NewOrderReportService(repo)

	_, err := service.FilteredOrders(context.Background(), report.FilterCriteria{})

	assert.Error(t, err)
}

func TestOrderReportService_BookProducts(t *testing.T) {
	repo := new(MockOrderRepository)
	repo.On("GetList", mock.Anything).Return(storedOrders(), nil)

	service := NewOrderReportService(repo)

	products, err := service.BookProducts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []report.BookProduct{{ID: "b1", Name: "Math Book"}}, products)
}

func TestOrderReportService_WriteExport(t *testing.T) {
	repo := new(MockOrderRepository)
	repo.On("GetList", mock.Anything).Return(storedOrders(), nil)

	service := NewOrderReportService(repo)

	var buf bytes.Buffer
	criteria := report.FilterCriteria{
		SelectedType:   models.AllTypes,
		SelectedStatus: "delivered",
	}

	require.NoError(t, service.WriteExport(context.Background(), criteria, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Orders", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Karim", name)

	// only the delivered order made it into the sheet
	empty, err := f.GetCellValue("Orders", "A3")
	require.NoError(t, err)
	assert.Equal(t, "", empty)
}
