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

type EnrollmentRepository struct {
	db *db.DB
}

type EnrollmentStorageRepositoryI interface {
	Create(ctx context.Context, enrollment models.Enrollment) error
	GetList(ctx context.Context, courseID, status string) ([]models.Enrollment, error)
	UpdateStatus(ctx context.Context, enrollmentID string, newStatus models.EnrollmentStatus) error
}

func NewEnrollmentRepository(dbObj *db.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: dbObj}
}

func (repository *EnrollmentRepository) Create(ctx context.Context, enrollment models.Enrollment) error {
	query := `INSERT INTO enrollments (id, course_id, student_name, student_email, student_phone, transaction_id, payment_method, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	return retry.DoRetry(ctx, func() error {
		_, err := repository.db.Pool.Exec(ctx, query,
			enrollment.ID, enrollment.CourseID, enrollment.StudentName, enrollment.StudentEmail,
			enrollment.StudentPhone, enrollment.TransactionID, enrollment.PaymentMethod,
			enrollment.Status, enrollment.CreatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				errWithMessage := fmt.Sprintf("enrollment with transaction %v already exists for course %v",
					enrollment.TransactionID, enrollment.CourseID)
				return customerror.NewUniqueViolationError(errWithMessage)
			}
			return customerror.NewCommonPGError(err.Error())
		}
		return nil
	})
}

func (repository *EnrollmentRepository) GetList(ctx context.Context, courseID, status string) ([]models.Enrollment, error) {
	query := `SELECT id, course_id, student_name, student_email, student_phone, transaction_id, payment_method, status, created_at
FROM enrollments
WHERE ($1 = '' OR course_id = $1) AND ($2 = '' OR lower(status) = lower($2))
ORDER BY created_at DESC`

	return retry.DoRetryWithResult(ctx, func() ([]models.Enrollment, error) {
		rows, err := repository.db.Pool.Query(ctx, query, courseID, status)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		enrollments := []models.Enrollment{}
		for rows.Next() {
			var enrollment models.Enrollment
			var email, phone, transactionID, paymentMethod *string
			err = rows.Scan(&enrollment.ID, &enrollment.CourseID, &enrollment.StudentName,
				&email, &phone, &transactionID, &paymentMethod, &enrollment.Status, &enrollment.CreatedAt)
			if err != nil {
				return nil, err
			}
			enrollment.StudentEmail = deref(email)
			enrollment.StudentPhone = deref(phone)
			enrollment.TransactionID = deref(transactionID)
			enrollment.PaymentMethod = deref(paymentMethod)
			enrollments = append(enrollments, enrollment)
		}
		return enrollments, rows.Err()
	})
}

func (repository *EnrollmentRepository) UpdateStatus(ctx context.Context, enrollmentID string, newStatus models.EnrollmentStatus) error {
	query := `UPDATE enrollments SET status = $1 WHERE id = $2`
	return retry.DoRetry(ctx, func() error {
		row, err := repository.db.Pool.Exec(ctx, query, newStatus, enrollmentID)
		if err != nil {
			return customerror.NewCommonPGError(err.Error())
		}
		if row.RowsAffected() == 0 {
			return customerror.NewNotFoundError(fmt.Sprintf("enrollment with id %v not found", enrollmentID))
		}
		return nil
	})
}
