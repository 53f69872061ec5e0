package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/edumela/admin-api/internal/models"
)

func TestBuildExportRows_FullOrder(t *testing.T) {
	createdAt := time.Date(2025, time.March, 9, 10, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{
			ID:              "1",
			CustomerName:    "Rahim",
			CustomerPhone:   "01700000000",
			CustomerAddress: "Dhaka",
			User:            &models.OrderUser{Email: "rahim@example.com"},
			Status:          models.DeliveredStatus,
			TotalAmount:     1250,
			PaymentStatus:   "paid",
			CreatedAt:       createdAt,
			Products: []models.LineItem{
				{ID: "b1", Name: "Physics Book"},
				{ID: "t1", Name: "T-Shirt XL"},
				{ID: "p1", Name: "Pen Set"},
			},
		},
	}

	rows := BuildExportRows(orders)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Rahim", row.CustomerName)
	assert.Equal(t, "rahim@example.com", row.CustomerEmail)
	assert.Equal(t, "01700000000", row.CustomerPhone)
	assert.Equal(t, "1250", row.TotalAmount)
	assert.Equal(t, "BOOKS_AND_GIFTS", row.OrderType)
	assert.Equal(t, "XL", row.TShirtSize)
	assert.Equal(t, "Physics Book", row.BooksOrdered)
	assert.Equal(t, "Pen Set", row.OtherProducts)
	assert.Equal(t, "delivered", row.OrderStatus)
	assert.Equal(t, "paid", row.PaymentStatus)
	assert.Equal(t, "Dhaka", row.Address)
	assert.Equal(t, "3/9/2025", row.CreatedAt)
}

func TestBuildExportRows_MissingFieldsBecomeNA(t *testing.T) {
	orders := []models.Order{{ID: "1", Status: models.PendingStatus}}

	rows := BuildExportRows(orders)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "N/A", row.CustomerName)
	assert.Equal(t, "N/A", row.CustomerEmail)
	assert.Equal(t, "N/A", row.CustomerPhone)
	assert.Equal(t, "N/A", row.TShirtSize)
	assert.Equal(t, "N/A", row.BooksOrdered)
	assert.Equal(t, "N/A", row.OtherProducts)
	assert.Equal(t, "N/A", row.PaymentStatus)
	assert.Equal(t, "N/A", row.Address)
	assert.Equal(t, "N/A", row.CreatedAt)
	assert.Equal(t, "OTHER", row.OrderType)
}

func TestBuildExportRows_JoinsMultipleBooks(t *testing.T) {
	orders := []models.Order{
		{
			ID: "1",
			Products: []models.LineItem{
				{ID: "b1", Name: "Math Book"},
				{ID: "b2", Name: "History Book"},
			},
		},
	}

	rows := BuildExportRows(orders)
	require.Len(t, rows, 1)
	assert.Equal(t, "Math Book, History Book", rows[0].BooksOrdered)
	assert.Equal(t, "N/A", rows[0].OtherProducts)
}

func TestWriteWorkbook(t *testing.T) {
	rows := BuildExportRows([]models.Order{
		{
			ID:           "1",
			CustomerName: "Karim",
			Status:       models.PendingStatus,
			Products:     []models.LineItem{{ID: "b1", Name: "Math Book"}},
		},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, rows))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Orders", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Customer Name", header)

	name, err := f.GetCellValue("Orders", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Karim", name)

	orderType, err := f.GetCellValue("Orders", "E2")
	require.NoError(t, err)
	assert.Equal(t, "BOOKS", orderType)
}
