package dto

import "time"

// Request DTOs

type PatientRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email" validate:"required,email,max=200"`
	Phone int64  `json:"phone" validate:"required,phone"`
	DNI   int64  `json:"dni" validate:"required,dni"`
}

type UpdatePatientPartialRequest struct {
	IDRequest
	Name  *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email *string `json:"email" validate:"omitempty,email,max=200"`
	Phone *int64  `json:"phone" validate:"omitempty,phone"`
	DNI   *int64  `json:"dni" validate:"omitempty,dni"`
}

// Response DTOs

type PatientResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     int64     `json:"phone"`
	DNI       int64     `json:"dni"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
