package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/edumela/admin-api/internal/config/db"
	"github.com/edumela/admin-api/internal/customerror"
	"github.com/edumela/admin-api/internal/models"
	"github.com/edumela/admin-api/internal/retry"
)

type CouponRepository struct {
	db *db.DB
}

type CouponStorageRepositoryI interface {
	Create(ctx context.Context, coupon models.Coupon) error
	GetList(ctx context.Context) ([]models.Coupon, error)
	SetActive(ctx context.Context, couponID string, active bool) error
	Delete(ctx context.Context, couponID string) error
}

func NewCouponRepository(dbObj *db.DB) *CouponRepository {
	return &CouponRepository{db: dbObj}
}

func (repository *CouponRepository) Create(ctx context.Context, coupon models.Coupon) error {
	query := `INSERT INTO coupons (id, code, discount_percent, starts_at, expires_at, active) VALUES ($1, $2, $3, $4, $5, $6)`

	return retry.DoRetry(ctx, func() error {
		_, err := repository.db.Pool.Exec(ctx, query,
			coupon.ID, coupon.Code, coupon.DiscountPercent, coupon.StartsAt, coupon.ExpiresAt, coupon.Active)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return customerror.NewUniqueViolationError(fmt.Sprintf("coupon with code %v already exists", coupon.Code))
			}
			return customerror.NewCommonPGError(err.Error())
		}
		return nil
	})
}

func (repository *CouponRepository) GetList(ctx context.Context) ([]models.Coupon, error) {
	query := `SELECT id, code, discount_percent, starts_at, expires_at, active FROM coupons ORDER BY starts_at DESC`
	return retry.DoRetryWithResult(ctx, func() ([]models.Coupon, error) {
		rows, err := repository.db.Pool.Query(ctx, query)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		coupons := []models.Coupon{}
		for rows.Next() {
			var coupon models.Coupon
			err = rows.Scan(&coupon.ID, &coupon.Code, &coupon.DiscountPercent, &coupon.StartsAt, &coupon.ExpiresAt, &coupon.Active)
			if err != nil {
				return nil, err
			}
			coupons = append(coupons, coupon)
		}
		return coupons, rows.Err()
	})
}

func (repository *CouponRepository) SetActive(ctx context.Context, couponID string, active bool) error {
	query := `UPDATE coupons SET active = $1 WHERE id = $2`
	return retry.DoRetry(ctx, func() error {
		row, err := repository.db.Pool.Exec(ctx, query, active, couponID)
		if err != nil {
			return customerror.NewCommonPGError(err.Error())
		}
		if row.RowsAffected() == 0 {
			return customerror.NewNotFoundError(fmt.Sprintf("coupon with id %v not found", couponID))
		}
		return nil
	})
}

func (repository *CouponRepository) Delete(ctx context.Context, couponID string) error {
	query := `DELETE FROM coupons WHERE id = $1`
	return retry.DoRetry(ctx, func() error {
		row, err := repository.db.Pool.Exec(ctx, query, couponID)
		if err != nil {
			return customerror.NewCommonPGError(err.Error())
		}
		if row.RowsAffected() == 0 {
			return customerror.NewNotFoundError(fmt.Sprintf("coupon with id %v not found", couponID))
		}
		return nil
	})
}
