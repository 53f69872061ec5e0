package repository

import (
	"context"
	"fmt"

	"github.com/edumela/admin-api/internal/config/db"
	"github.com/edumela/admin-api/internal/customerror"
	"github.com/edumela/admin-api/internal/models"
	"github.com/edumela/admin-api/internal/retry"
)

type CatalogRepository struct {
	db *db.DB
}

type CatalogStorageRepositoryI interface {
	CreateCourse(ctx context.Context, course models.Course) error
	GetCourses(ctx context.Context) ([]models.Course, error)
	UpdateCourse(ctx context.Context, course models.Course) error
	DeleteCourse(ctx context.Context, id string) error

	CreateChapter(ctx context.Context, chapter models.Chapter) error
	GetChaptersByCourse(ctx context.Context, courseID string) ([]models.Chapter, error)
	UpdateChapter(ctx context.Context, chapter models.Chapter) error
	DeleteChapter(ctx context.Context, id string) error

	CreateClassSession(ctx context.Context, class models.ClassSession) error
	GetClassesByChapter(ctx context.Context, chapterID string) ([]models.ClassSession, error)
	UpdateClassSession(ctx context.Context, class models.ClassSession) error
	DeleteClassSession(ctx context.Context, id string) error

	CreateProduct(ctx context.Context, product models.Product) error
	GetProducts(ctx context.Context) ([]models.Product, error)
	UpdateProduct(ctx context.Context, product models.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

func NewCatalogRepository(dbObj *db.DB) *CatalogRepository {
	return &CatalogRepository{db: dbObj}
}

func (repository *CatalogRepository) CreateCourse(ctx context.Context, course models.Course) error {
	query := `INSERT INTO courses (id, title, description, price, image_url, published, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	return retry.DoRetry(ctx, func() error {
		_, err := repository.db.Pool.Exec(ctx, query,
			course.ID, course.Title, course.Description, course.Price, course.ImageURL, course.Published, course.CreatedAt)
		if err != nil {
			return customerror.NewCommonPGError(err.Error())
		}
		return nil
	})
}

func (repository *CatalogRepository) GetCourses(ctx context.Context) ([]models.Course, error) {
	query := `SELECT id, title, description, price, image_url, published, created_at FROM courses ORDER BY created_at DESC`
	return retry.DoRetryWithResult(ctx, func() ([]models.Course, error) {
		rows, err := repository.db.Pool.Query(ctx, query)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		courses := []models.Course{}
		for rows.Next() {
			var course models.Course
			var description, imageURL *string
			err = rows.Scan(&course.ID, &course.Title, &description, &course.Price, &imageURL, &course.Published, &course.CreatedAt)
			if err != nil {
				return nil, err
			}
			course.Description = deref(description)
			course.ImageURL = deref(imageURL)
			courses = append(courses, course)
		}
		return courses, rows.Err()
	})
}

func (repository *CatalogRepository) UpdateCourse(ctx context.Context, course models.Course) error {
	query := `UPDATE courses SET title = $1, description = $2, price = $3, image_url = $4, published = $5 WHERE id = $6`
	return retry.DoRetry(ctx, func() error {
		row, err := repository.db.Pool.Exec(ctx, query,
			course.Title, course.Description, course.Price, course.ImageURL, course.Published, course.ID)
		if err != nil {
			return customerror.NewCommonPGError(err.Error())
		}
		if row.RowsAffected() == 0 {
			return customerror.NewNotFoundError(fmt.Sprintf("course with id %v not found", course.ID))
		}
		return nil
	})
}

func (repository *CatalogRepository) DeleteCourse(ctx context.Context, id string) error {
	return repository.deleteByID(ctx, "courses", id)
}

func (repository *CatalogRepository) CreateChapter(ctx context.Context, chapter models.Chapter) error {
	query := `INSERT INTO chapters (id, course_id, title, position) VALUES ($1, $2, $3, $4)`
	return retry.DoRetry(ctx, func() error {
		_, err := repository.db.Pool.Exec(ctx, query, chapter.ID, chapter.CourseID, chapter.Title, chapter.Position)
		if err != nil {
			return customerror.NewCommonPGError(err.Error())
		}
		return nil
	})
}

func (repository *CatalogRepository) GetChaptersByCourse(ctx context.Context, courseID string) ([]models.Chapter, error) {
	query := `SELECT id, course_id, title, position FROM chapters WHERE course_id = $1 ORDER BY position`
	return retry.DoRetryWithResult(ctx, func() ([]models.Chapter, error) {
		rows, err := repository.db.Pool.Query(ctx, query, courseID)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		chapters := []models.Chapter{}
		for rows.Next() {
			var chapter models.Chapter
			err = rows.Scan(&chapter.ID, &chapter.CourseID, &chapter.Title, &chapter.Position)
			if err != nil {
				return nil, err
			}
			chapters = append(chapters, chapter)
		}
		return chapters, rows.Err()
	})
}

func (repository *CatalogRepository) UpdateChapter(ctx context.Context, chapter models.Chapter) error {
	query := `UPDATE chapters SET title = $1, position = $2 WHERE id = $3`
	return retry.DoRetry(ctx, func() error {
		row, err := repository.db.Pool.Exec(ctx, query, chapter.Title, chapter.Position, chapter.ID)
		if err != nil {
			return customerror.NewCommonPGError(err.Error())
		}
		if row.RowsAffected() == 0 {
			return customerror.NewNotFoundError(fmt.Sprintf("chapter with id %v not found", chapter.ID))
		}
		return nil
	})
}

func (repository *CatalogRepository) DeleteChapter(ctx context.Context, id string) error {
	return repository.deleteByID(ctx, "chapters", id)
}

func (repository *CatalogRepository) CreateClassSession(ctx context.Context, class models.ClassSession) error {
	query := `INSERT INTO class_sessions (id, chapter_id, title, video_url, duration_minutes, position)
VALUES ($1, $2, $3, $4, $5, $6)`
	return retry.DoRetry(ctx, func() error {
		_, err := repository.db.Pool.Exec(ctx, query,
			class.ID, class.ChapterID, class.Title, class.VideoURL, class.Duration, class.Position)
		if err != nil {
			return customerror.NewCommonPGError(err.Error())
		}
		return nil
	})
}

func (repository *CatalogRepository) GetClassesByChapter(ctx context.Context, chapterID string) ([]models.ClassSession, error) {
	query := `SELECT id, chapter_id, title, video_url, duration_minutes, position FROM class_sessions WHERE chapter_id = $1 ORDER BY position`
	return retry.DoRetryWithResult(ctx, func() ([]models.ClassSession, error) {
		rows, err := repository.db.Pool.Query(ctx, query, chapterID)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		classes := []models.ClassSession{}
		for rows.Next() {
			var class models.ClassSession
			var videoURL *string
			err = rows.Scan(&class.ID, &class.ChapterID, &class.Title, &videoURL, &class.Duration, &class.Position)
			if err != nil {
				return nil, err
			}
			class.VideoURL = deref(videoURL)
			classes = append(classes, class)
		}
		return classes, rows.Err()
	})
}

func (repository *CatalogRepository) UpdateClassSession(ctx context.Context, class models.ClassSession) error {
	query := `UPDATE class_sessions SET title = $1, video_url = $2, duration_minutes = $3, position = $4 WHERE id = $5`
	return retry.DoRetry(ctx, func() error {
		row, err := repository.db.Pool.Exec(ctx, query, class.Title, class.VideoURL, class.Duration, class.Position, class.ID)
		if err != nil {
			return customerror.NewCommonPGError(err.Error())
		}
		if row.RowsAffected() == 0 {
			return customerror.NewNotFoundError(fmt.Sprintf("class with id %v not found", class.ID))
		}
		return nil
	})
}

func (repository *CatalogRepository) DeleteClassSession(ctx context.Context, id string) error {
	return repository.deleteByID(ctx, "class_sessions", id)
}

func (repository *CatalogRepository) CreateProduct(ctx context.Context, product models.Product) error {
	query := `INSERT INTO products (id, name, description, price, discounted_price, stock, image_url, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	return retry.DoRetry(ctx, func() error {
		_, err := repository.db.Pool.Exec(ctx, query,
			product.ID, product.Name, product.Description, product.Price, product.DiscountedPrice,
			product.Stock, product.ImageURL, product.CreatedAt)
		if err != nil {
			return customerror.NewCommonPGError(err.Error())
		}
		return nil
	})
}

func (repository *CatalogRepository) GetProducts(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id, name, description, price, discounted_price, stock, image_url, created_at FROM products ORDER BY created_at DESC`
	return retry.DoRetryWithResult(ctx, func() ([]models.Product, error) {
		rows, err := repository.db.Pool.Query(ctx, query)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		products := []models.Product{}
		for rows.Next() {
			var product models.Product
			var description, imageURL *string
			err = rows.Scan(&product.ID, &product.Name, &description, &product.Price, &product.DiscountedPrice,
				&product.Stock, &imageURL, &product.CreatedAt)
			if err != nil {
				return nil, err
			}
			product.Description = deref(description)
			product.ImageURL = deref(imageURL)
			products = append(products, product)
		}
		return products, rows.Err()
	})
}

func (repository *CatalogRepository) UpdateProduct(ctx context.Context, product models.Product) error {
	query := `UPDATE products SET name = $1, description = $2, price = $3, discounted_price = $4, stock = $5, image_url = $6 WHERE id = $7`
	return retry.DoRetry(ctx, func() error {
		row, err := repository.db.Pool.Exec(ctx, query,
			product.Name, product.Description, product.Price, product.DiscountedPrice, product.Stock, product.ImageURL, product.ID)
		if err != nil {
			return customerror.NewCommonPGError(err.Error())
		}
		if row.RowsAffected() == 0 {
			return customerror.NewNotFoundError(fmt.Sprintf("product with id %v not found", product.ID))
		}
		return nil
	})
}

func (repository *CatalogRepository) DeleteProduct(ctx context.Context, id string) error {
	return repository.deleteByID(ctx, "products", id)
}

func (repository *CatalogRepository) deleteByID(ctx context.Context, table, id string) error {
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
