package models

import "time"

type Coupon struct {
	ID              string    `json:"id"`
	Code            string    `json:"code"`
	DiscountPercent int       `json:"discountPercent"`
	StartsAt        time.Time `json:"startsAt"`
	ExpiresAt       time.Time `json:"expiresAt"`
	Active          bool      `json:"active"`
}

type Notice struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

type Slider struct {
	ID       string `json:"id"`
	Title    string `json:"title,omitempty"`
	ImageURL string `json:"imageUrl"`
	LinkURL  string `json:"linkUrl,omitempty"`
	Position int    `json:"position"`
}

type TeamMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

type Review struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Comment   string    `json:"comment,omitempty"`
	Rating    int       `json:"rating"`
	Visible   bool      `json:"visible"`
	CreatedAt time.Time `json:"createdAt"`
}
