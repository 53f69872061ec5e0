package models

import "time"

type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Chapter struct {
	ID       string `json:"id"`
	CourseID string `json:"courseId"`
	Title    string `json:"title"`
	Position int    `json:"position"`
}

// ClassSession is a single lesson inside a chapter, usually a recorded video.
type ClassSession struct {
	ID        string `json:"id"`
	ChapterID string `json:"chapterId"`
	Title     string `json:"title"`
	VideoURL  string `json:"videoUrl,omitempty"`
	Duration  int    `json:"durationMinutes"`
	Position  int    `json:"position"`
}

type Product struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Price           float64   `json:"price"`
	DiscountedPrice *float64  `json:"discountedPrice,omitempty"`
	Stock           int       `json:"stock"`
	ImageURL        string    `json:"imageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
