package schemas

import "time"

type CouponRequest struct {
	Code            string    `json:"code" validate:"required,min=3,max=50"`
	DiscountPercent int       `json:"discountPercent" validate:"required,gte=1,lte=100"`
	StartsAt        time.Time `json:"startsAt" validate:"required"`
	ExpiresAt       time.Time `json:"expiresAt" validate:"required"`
	Active          bool      `json:"active"`
}
