package dto

import "time"

// Request DTOs

type DoctorRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	Specialty string `json:"specialty" validate:"required,max=100"`
}

type UpdateDoctorPartialRequest struct {
	IDRequest
	Name      *string `json:"name" validate:"omitempty,min=1,max=200"`
	Specialty *string `json:"specialty" validate:"omitempty,min=1,max=100"`
}

// Response DTOs

type DoctorResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
