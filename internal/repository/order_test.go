package repository

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumela/admin-api/internal/customerror"
	"github.com/edumela/admin-api/internal/models"
)

var orderColumns = []string{
	"id", "customer_name", "customer_phone", "customer_address", "user_email",
	"status", "total_amount", "payment_method", "transaction_id", "rider_name", "payment_status", "created_at",
	"product_id", "name", "description", "price", "discounted_price",
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestOrderRepository_GetList_FoldsItems(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(NewTestDB(mock))

	createdAt := time.Date(2025, time.January, 5, 12, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows(orderColumns).
		AddRow("o1", strPtr("Rahim"), strPtr("01700000000"), strPtr("Dhaka"), strPtr("rahim@example.com"),
			models.PendingStatus, 500.0, strPtr("cod"), nil, nil, strPtr("pending"), createdAt,
			strPtr("b1"), strPtr("Math Book"), nil, floatPtr(300.0), nil).
		AddRow("o1", strPtr("Rahim"), strPtr("01700000000"), strPtr("Dhaka"), strPtr("rahim@example.com"),
			models.PendingStatus, 500.0, strPtr("cod"), nil, nil, strPtr("pending"), createdAt,
			strPtr("t1"), strPtr("T-Shirt L"), strPtr("cotton"), floatPtr(200.0), floatPtr(180.0)).
		AddRow("o2", nil, nil, nil, nil,
			models.DeliveredStatus, 0.0, nil, nil, nil, nil, createdAt,
			nil, nil, nil, nil, nil)

	mock.ExpectQuery("SELECT o.id, o.customer_name").WillReturnRows(rows)

	orders, err := repo.GetList(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 2)

	first := orders[0]
	assert.Equal(t, "o1", first.ID)
	assert.Equal(t, "Rahim", first.CustomerName)
	require.NotNil(t, first.User)
	assert.Equal(t, "rahim@example.com", first.User.Email)
	require.Len(t, first.Products, 2)
	assert.Equal(t, "Math Book", first.Products[0].Name)
	assert.Equal(t, "cotton", first.Products[1].Description)
	require.NotNil(t, first.Products[1].DiscountedPrice)
	assert.Equal(t, 180.0, *first.Products[1].DiscountedPrice)

	second := orders[1]
	assert.Equal(t, "o2", second.ID)
	assert.Equal(t, "", second.CustomerName)
	assert.Nil(t, second.User)
	assert.Empty(t, second.Products)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_UpdateStatus_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(NewTestDB(mock))

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(models.DeliveredStatus, "o1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.UpdateStatus(context.Background(), "o1", models.DeliveredStatus)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_UpdateStatus_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(NewTestDB(mock))

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(models.DeliveredStatus, "missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.UpdateStatus(context.Background(), "missing", models.DeliveredStatus)

	require.Error(t, err)
	customErr, ok := err.(customerror.CustomError)
	require.True(t, ok)
	assert.Equal(t, 404, customErr.GetHTTPCode())
	assert.NoError(t, mock.ExpectationsWereMet())
}
