package schemas

type NoticeRequest struct {
	Title string `json:"title" validate:"required,max=255"`
	Body  string `json:"body" validate:"required"`
}

type SliderRequest struct {
	Title    string `json:"title" validate:"max=255"`
	ImageURL string `json:"imageUrl" validate:"required,url"`
	LinkURL  string `json:"linkUrl" validate:"omitempty,url"`
	Position int    `json:"position" validate:"gte=0"`
}

type TeamMemberRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Role     string `json:"role" validate:"max=255"`
	PhotoURL string `json:"photoUrl" validate:"omitempty,url"`
}

type ReviewVisibilityRequest struct {
	Visible *bool `json:"visible" validate:"required"`
}
