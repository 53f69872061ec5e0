package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/edumela/admin-api/internal/handlers/schemas"
)

// New returns a configured validator with the struct-level rules the plain
// tag syntax cannot express.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	v.RegisterStructValidation(couponDatesValidation, schemas.CouponRequest{})

	return v
}

// couponDatesValidation rejects coupons that expire before they start.
func couponDatesValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(schemas.CouponRequest)

	if !req.ExpiresAt.After(req.StartsAt) {
		sl.ReportError(req.ExpiresAt, "expiresAt", "ExpiresAt", "expires_after_starts", "")
	}
}
