package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumela/admin-api/internal/customerror"
	"github.com/edumela/admin-api/internal/models"
)

func testCoupon() models.Coupon {
	return models.Coupon{
		ID:              "c1",
		Code:            "EID2025",
		DiscountPercent: 20,
		StartsAt:        time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		ExpiresAt:       time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		Active:          true,
	}
}

func TestCouponRepository_Create_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCouponRepository(NewTestDB(mock))
	coupon := testCoupon()

	mock.ExpectExec("INSERT INTO coupons").
		WithArgs(coupon.ID, coupon.Code, coupon.DiscountPercent, coupon.StartsAt, coupon.ExpiresAt, coupon.Active).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), coupon)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCouponRepository_Create_DuplicateCode(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCouponRepository(NewTestDB(mock))
	coupon := testCoupon()

	mock.ExpectExec("INSERT INTO coupons").
		WithArgs(coupon.ID, coupon.Code, coupon.DiscountPercent, coupon.StartsAt, coupon.ExpiresAt, coupon.Active).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err = repo.Create(context.Background(), coupon)

	require.Error(t, err)
	customErr, ok := err.(customerror.CustomError)
	require.True(t, ok)
	assert.Equal(t, 422, customErr.GetHTTPCode())
	assert.Contains(t, err.Error(), "EID2025")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCouponRepository_Delete_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCouponRepository(NewTestDB(mock))

	mock.ExpectExec("DELETE FROM coupons").
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err = repo.Delete(context.Background(), "missing")

	require.Error(t, err)
	customErr, ok := err.(customerror.CustomError)
	require.True(t, ok)
	assert.Equal(t, 404, customErr.GetHTTPCode())
	assert.NoError(t, mock.ExpectationsWereMet())
}
