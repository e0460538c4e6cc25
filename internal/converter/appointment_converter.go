package converter

import (
	"medical-scheduling-api/internal/delivery/dto"
	"medical-scheduling-api/internal/domain/entity"
)

func AppointmentFromRequest(req *dto.AppointmentRequest) *entity.Appointment {
	appointment := &entity.Appointment{}
	ApplyAppointmentRequest(appointment, req)
	appointment.Status = true
	return appointment
}

// ApplyAppointmentRequest copies req onto appointment. Preloaded references
// are dropped when their foreign key changes so responses never show a stale
// patient or doctor.
func ApplyAppointmentRequest(appointment *entity.Appointment, req *dto.AppointmentRequest) {
	if appointment.PatientID != req.PatientID {
		appointment.Patient = nil
	}
	if appointment.DoctorID != req.DoctorID {
		appointment.Doctor = nil
	}

	appointment.Date = req.Date.UTC()
	appointment.Reason = req.Reason
	appointment.PatientID = req.PatientID
	appointment.DoctorID = req.DoctorID
}

func AppointmentPartialFields(req *dto.UpdateAppointmentPartialRequest) map[string]interface{} {
	fields := make(map[string]interface{})
	if req.Date != nil {
		fields["date"] = req.Date.UTC()
	}
	if req.Reason != nil {
		fields["reason"] = *req.Reason
	}
	if req.PatientID != nil {
		fields["patient_id"] = *req.PatientID
	}
	if req.DoctorID != nil {
		fields["doctor_id"] = *req.DoctorID
	}
	return fields
}

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:        appointment.ID,
		Date:      appointment.Date,
		Reason:    appointment.Reason,
		PatientID: appointment.PatientID,
		DoctorID:  appointment.DoctorID,
		Status:    appointment.Status,
		Patient:   PatientToResponse(appointment.Patient),
		Doctor:    DoctorToResponse(appointment.Doctor),
		CreatedAt: appointment.CreatedAt,
		UpdatedAt: appointment.UpdatedAt,
	}
}
