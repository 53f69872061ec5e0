package schemas

type EnrollmentRequest struct {
	CourseID      string `json:"courseId" validate:"required"`
	StudentName   string `json:"studentName" validate:"required,max=255"`
	StudentEmail  string `json:"studentEmail" validate:"omitempty,email"`
	StudentPhone  string `json:"studentPhone" validate:"omitempty,max=50"`
	TransactionID string `json:"transactionId" validate:"omitempty,max=100"`
	PaymentMethod string `json:"paymentMethod" validate:"omitempty,oneof=cod bkash nagad"`
}

type UpdateEnrollmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}
