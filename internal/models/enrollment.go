package models

import (
	"strings"
	"time"
)

type EnrollmentStatus string

const (
	EnrollmentPending  EnrollmentStatus = "pending"
	EnrollmentApproved EnrollmentStatus = "approved"
	EnrollmentRejected EnrollmentStatus = "rejected"
)

func (s EnrollmentStatus) EqualsFold(other string) bool {
	return strings.EqualFold(string(s), other)
}

type Enrollment struct {
	ID            string           `json:"id"`
	CourseID      string           `json:"courseId"`
	StudentName   string           `json:"studentName"`
	StudentEmail  string           `json:"studentEmail,omitempty"`
	StudentPhone  string           `json:"studentPhone,omitempty"`
	TransactionID string           `json:"transactionId,omitempty"`
	PaymentMethod string           `json:"paymentMethod,omitempty"`
	Status        EnrollmentStatus `json:"status"`
	CreatedAt     time.Time        `json:"createdAt"`
}
