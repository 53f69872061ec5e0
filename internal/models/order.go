package models

import (
	"strings"
	"time"
)

type OrderStatus string

const (
	PendingStatus   OrderStatus = "pending"
	DeliveredStatus OrderStatus = "delivered"
)

// EqualsFold compares statuses case-insensitively. Unknown values never
// match any of the declared constants, they just fall through filters.
func (s OrderStatus) EqualsFold(other string) bool {
	return strings.EqualFold(string(s), other)
}

type OrderType string

const (
	BooksType         OrderType = "BOOKS"
	GiftsType         OrderType = "GIFTS"
	BooksAndGiftsType OrderType = "BOOKS_AND_GIFTS"
	OtherType         OrderType = "OTHER"

	// AllTypes disables the type stage of the order filter.
	AllTypes OrderType = "ALL"
)

const (
	PaymentMethodCOD   = "cod"
	PaymentMethodBKash = "bkash"
	PaymentMethodNagad = "nagad"
)

type OrderUser struct {
	Email string `json:"email,omitempty"`
}

type LineItem struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Price           float64  `json:"price"`
	DiscountedPrice *float64 `json:"discountedPrice,omitempty"`
}

// DisplayPrice prefers the discounted price when the catalog carries one.
func (item LineItem) DisplayPrice() float64 {
	if item.DiscountedPrice != nil {
		return *item.DiscountedPrice
	}
	return item.Price
}

type Order struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customerName,omitempty"`
	CustomerPhone   string      `json:"customerPhone,omitempty"`
	CustomerAddress string      `json:"customerAddress,omitempty"`
	User            *OrderUser  `json:"user,omitempty"`
	Status          OrderStatus `json:"status"`
	TotalAmount     float64     `json:"totalAmount"`
	PaymentMethod   string      `json:"paymentMethod,omitempty"`
	TransactionID   string      `json:"transactionId,omitempty"`
	RiderName       string      `json:"riderName,omitempty"`
	PaymentStatus   string      `json:"Paymentstatus,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	Products        []LineItem  `json:"products"`
}

// CustomerEmail coerces a missing user block to an empty string so search
// and export never have to nil-check.
func (o Order) CustomerEmail() string {
	if o.User == nil {
		return ""
	}
	return o.User.Email
}
