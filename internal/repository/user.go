package repository

import (
	"context"
	"errors"

	"github.com/edumela/admin-api/internal/config/db"
	"github.com/edumela/admin-api/internal/models"
	"github.com/edumela/admin-api/internal/retry"
)

type UserRepository struct {
	db *db.DB
}

type UserStorageRepositoryI interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
}

func NewUserRepository(dbObj *db.DB) *UserRepository {
	return &UserRepository{db: dbObj}
}

func (repository *UserRepository) CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error) {
	query := `INSERT INTO users (name, password) VALUES ($1, $2) RETURNING id, name, password`

	return retry.DoRetryWithResult(ctx, func() (*models.User, error) {
		row := repository.db.Pool.QueryRow(ctx, query, username, passwordHash)
		if row == nil {
			return nil, errors.New("user was not created")
		}
		user := models.User{}
		err := row.Scan(&user.ID, &user.Username, &user.PasswordHash)
		return &user, err
	})
}

func (repository *UserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT id, name, password FROM users WHERE name = $1`
	return retry.DoRetryWithResult(ctx, func() (*models.User, error) {
		row := repository.db.Pool.QueryRow(ctx, query, username)

		elem := models.User{}
		err := row.Scan(&elem.ID, &elem.Username, &elem.PasswordHash)
		return &elem, err
	})
}

func (repository *UserRepository) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	query := `SELECT id, name, password FROM users WHERE id = $1`
	return retry.DoRetryWithResult(ctx, func() (*models.User, error) {
		row := repository.db.Pool.QueryRow(ctx, query, id)

		elem := models.User{}
		err := row.Scan(&elem.ID, &elem.Username, &elem.PasswordHash)
		return &elem, err
	})
}
