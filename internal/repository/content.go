package repository

import (
	"context"
	"fmt"

	"github.com/edumela/admin-api/internal/config/db"
	"github.com/edumela/admin-api/internal/customerror"
	"github.com/edumela/admin-api/internal/models"
	"github.com/edumela/admin-api/internal/retry"
)

// ContentRepository backs the thin CMS screens: notices, sliders, team
// members and reviews.
type ContentRepository struct {
	db *db.DB
}

type ContentStorageRepositoryI interface {
	CreateNotice(ctx context.Context, notice models.Notice) error
	GetNotices(ctx context.Context) ([]models.Notice, error)
	DeleteNotice(ctx context.Context, id string) error

	CreateSlider(ctx context.Context, slider models.Slider) error
	GetSliders(ctx context.Context) ([]models.Slider, error)
	DeleteSlider(ctx context.Context, id string) error

	CreateTeamMember(ctx context.Context, member models.TeamMember) error
	GetTeamMembers(ctx context.Context) ([]models.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id string) error

	GetReviews(ctx context.Context) ([]models.Review, error)
	SetReviewVisibility(ctx context.Context, id string, visible bool) error
	DeleteReview(ctx context.Context, id string) error
}

func NewContentRepository(dbObj *db.DB) *ContentRepository {
	return &ContentRepository{db: dbObj}
}

func (repository *ContentRepository) CreateNotice(ctx context.Context, notice models.Notice) error {
	query := `INSERT INTO notices (id, title, body, created_at) VALUES ($1, $2, $3, $4)`
	return retry.DoRetry(ctx, func() error {
		_, err := repository.db.Pool.Exec(ctx, query, notice.ID, notice.Title, notice.Body, notice.CreatedAt)
		if err != nil {
			return customerror.NewCommonPGError(err.Error())
		}
		return nil
	})
}

func (repository *ContentRepository) GetNotices(ctx context.Context) ([]models.Notice, error) {
	query := `SELECT id, title, body, created_at FROM notices ORDER BY created_at DESC`
	return retry.DoRetryWithResult(ctx, func() ([]models.Notice, error) {
		rows, err := repository.db.Pool.Query(ctx, query)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		notices := []models.Notice{}
		for rows.Next() {
			var notice models.Notice
			if err = rows.Scan(&notice.ID, &notice.Title, &notice.Body, &notice.CreatedAt); err != nil {
				return nil, err
			}
			notices = append(notices, notice)
		}
		return notices, rows.Err()
	})
}

func (repository *ContentRepository) DeleteNotice(ctx context.Context, id string) error {
	return repository.deleteByID(ctx, "notices", id)
}

func (repository *ContentRepository) CreateSlider(ctx context.Context, slider models.Slider) error {
	query := `INSERT INTO sliders (id, title, image_url, link_url, position) VALUES ($1, $2, $3, $4, $5)`
	return retry.DoRetry(ctx, func() error {
		_, err := repository.db.Pool.Exec(ctx, query, slider.ID, slider.Title, slider.ImageURL, slider.LinkURL, slider.Position)
		if err != nil {
			return customerror.NewCommonPGError(err.Error())
		}
		return nil
	})
}

func (repository *ContentRepository) GetSliders(ctx context.Context) ([]models.Slider, error) {
	query := `SELECT id, title, image_url, link_url, position FROM sliders ORDER BY position`
	return retry.DoRetryWithResult(ctx, func() ([]models.Slider, error) {
		rows, err := repository.db.Pool.Query(ctx, query)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		sliders := []models.Slider{}
		for rows.Next() {
			var slider models.Slider
			var title, linkURL *string
			if err = rows.Scan(&slider.ID, &title, &slider.ImageURL, &linkURL, &slider.Position); err != nil {
				return nil, err
			}
			slider.Title = deref(title)
			slider.LinkURL = deref(linkURL)
			sliders = append(sliders, slider)
		}
		return sliders, rows.Err()
	})
}

func (repository *ContentRepository) DeleteSlider(ctx context.Context, id string) error {
	return repository.deleteByID(ctx, "sliders", id)
}

func (repository *ContentRepository) CreateTeamMember(ctx context.Context, member models.TeamMember) error {
	query := `INSERT INTO team_members (id, name, role, photo_url) VALUES ($1, $2, $3, $4)`
	return retry.DoRetry(ctx, func() error {
		_, err := repository.db.Pool.Exec(ctx, query, member.ID, member.Name, member.Role, member.PhotoURL)
		if err != nil {
			return customerror.NewCommonPGError(err.Error())
		}
		return nil
	})
}

func (repository *ContentRepository) GetTeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	query := `SELECT id, name, role, photo_url FROM team_members ORDER BY name`
	return retry.DoRetryWithResult(ctx, func() ([]models.TeamMember, error) {
		rows, err := repository.db.Pool.Query(ctx, query)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		members := []models.TeamMember{}
		for rows.Next() {
			var member models.TeamMember
			var role, photoURL *string
			if err = rows.Scan(&member.ID, &member.Name, &role, &photoURL); err != nil {
				return nil, err
			}
			member.Role = deref(role)
			member.PhotoURL = deref(photoURL)
			members = append(members, member)
		}
		return members, rows.Err()
	})
}

func (repository *ContentRepository) DeleteTeamMember(ctx context.Context, id string) error {
	return repository.deleteByID(ctx, "team_members", id)
}

func (repository *ContentRepository) GetReviews(ctx context.Context) ([]models.Review, error) {
	query := `SELECT id, author, comment, rating, visible, created_at FROM reviews ORDER BY created_at DESC`
	return retry.DoRetryWithResult(ctx, func() ([]models.Review, error) {
		rows, err := repository.db.Pool.Query(ctx, query)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		reviews := []models.Review{}
		for rows.Next() {
			var review models.Review
			var comment *string
			if err = rows.Scan(&review.ID, &review.Author, &comment, &review.Rating, &review.Visible, &review.CreatedAt); err != nil {
				return nil, err
			}
			review.Comment = deref(comment)
			reviews = append(reviews, review)
		}
		return reviews, rows.Err()
	})
}

func (repository *ContentRepository) SetReviewVisibility(ctx context.Context, id string, visible bool) error {
	query := `UPDATE reviews SET visible = $1 WHERE id = $2`
	return retry.DoRetry(ctx, func() error {
		row, err := repository.db.Pool.Exec(ctx, query, visible, id)
		if err != nil {
			return customerror.NewCommonPGError(err.Error())
		}
		if row.RowsAffected() == 0 {
			return customerror.NewNotFoundError(fmt.Sprintf("review with id %v not found", id))
		}
		return nil
	})
}

func (repository *ContentRepository) DeleteReview(ctx context.Context, id string) error {
	return repository.deleteByID(ctx, "reviews", id)
}

func (repository *ContentRepository) deleteByID(ctx context.Context, table, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table)
	return retry.DoRetry(ctx, func() error {
		row, err := repository.db.Pool.Exec(ctx, query, id)
		if err != nil {
			return customerror.NewCommonPGError(err.Error())
		}
		if row.RowsAffected() == 0 {
			return customerror.NewNotFoundError(fmt.Sprintf("record with id %v not found in %s", id, table))
		}
		return nil
	})
}
