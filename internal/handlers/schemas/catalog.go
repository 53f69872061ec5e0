package schemas

type CourseRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	ImageURL    string  `json:"imageUrl" validate:"omitempty,url"`
	Published   bool    `json:"published"`
}

type ChapterRequest struct {
	CourseID string `json:"courseId" validate:"required"`
	Title    string `json:"title" validate:"required,max=255"`
	Position int    `json:"position" validate:"gte=0"`
}

type ClassSessionRequest struct {
	ChapterID string `json:"chapterId" validate:"required"`
	Title     string `json:"title" validate:"required,max=255"`
	VideoURL  string `json:"videoUrl" validate:"omitempty,url"`
	Duration  int    `json:"durationMinutes" validate:"gte=0"`
	Position  int    `json:"position" validate:"gte=0"`
}

type ProductRequest struct {
	Name            string   `json:"name" validate:"required,max=255"`
	Description     string   `json:"description"`
	Price           float64  `json:"price" validate:"gte=0"`
	DiscountedPrice *float64 `json:"discountedPrice" validate:"omitempty,gte=0"`
	Stock           int      `json:"stock" validate:"gte=0"`
	ImageURL        string   `json:"imageUrl" validate:"omitempty,url"`
}
