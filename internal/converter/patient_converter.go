package converter

import (
	"medical-scheduling-api/internal/delivery/dto"
	"medical-scheduling-api/internal/domain/entity"
)

// PatientFromRequest builds a new, active patient from a create request.
func PatientFromRequest(req *dto.PatientRequest) *entity.Patient {
	patient := &entity.Patient{}
	ApplyPatientRequest(patient, req)
	patient.Status = true
	return patient
}

// ApplyPatientRequest copies every writable field of req onto patient.
func ApplyPatientRequest(patient *entity.Patient, req *dto.PatientRequest) {
	patient.Name = req.Name
	patient.Email = req.Email
	patient.Phone = req.Phone
	patient.DNI = req.DNI
}

// PatientPartialFields maps the provided fields of req to column names.
func PatientPartialFields(req *dto.UpdatePatientPartialRequest) map[string]interface{} {
	fields := make(map[string]interface{})
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.DNI != nil {
		fields["dni"] = *req.DNI
	}
	return fields
}

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:        patient.ID,
		Name:      patient.Name,
		Email:     patient.Email,
		Phone:     patient.Phone,
		DNI:       patient.DNI,
		Status:    patient.Status,
		CreatedAt: patient.CreatedAt,
		UpdatedAt: patient.UpdatedAt,
	}
}
