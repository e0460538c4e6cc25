package dto

import "time"

// Request DTOs

type AppointmentRequest struct {
	Date      time.Time `json:"date" validate:"required"`
	Reason    string    `json:"reason" validate:"required,max=500"`
	PatientID int64     `json:"patient_id" validate:"required,gt=0"`
	DoctorID  int64     `json:"doctor_id" validate:"required,gt=0"`
}

type UpdateAppointmentPartialRequest struct {
	IDRequest
	Date      *time.Time `json:"date" validate:"omitempty"`
	Reason    *string    `json:"reason" validate:"omitempty,min=1,max=500"`
	PatientID *int64     `json:"patient_id" validate:"omitempty,gt=0"`
	DoctorID  *int64     `json:"doctor_id" validate:"omitempty,gt=0"`
}

// Response DTOs

type AppointmentResponse struct {
	ID        int64            `json:"id"`
	Date      time.Time        `json:"date"`
	Reason    string           `json:"reason"`
	PatientID int64            `json:"patient_id"`
	DoctorID  int64            `json:"doctor_id"`
	Status    bool             `json:"status"`
	Patient   *PatientResponse `json:"patient,omitempty"`
	Doctor    *DoctorResponse  `json:"doctor,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
