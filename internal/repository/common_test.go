package repository

import "github.com/edumela/admin-api/internal/config/db"

func NewTestDB(pool db.PgxPoolInterface) *db.DB {
	return &db.DB{
		Pool: pool,
	}
}
