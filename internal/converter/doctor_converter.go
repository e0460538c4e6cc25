package converter

import (
	"medical-scheduling-api/internal/delivery/dto"
	"medical-scheduling-api/internal/domain/entity"
)

func DoctorFromRequest(req *dto.DoctorRequest) *entity.Doctor {
	doctor := &entity.Doctor{}
	ApplyDoctorRequest(doctor, req)
	doctor.Status = true
	return doctor
}

func ApplyDoctorRequest(doctor *entity.Doctor, req *dto.DoctorRequest) {
	doctor.Name = req.Name
	doctor.Specialty = req.Specialty
}

func DoctorPartialFields(req *dto.UpdateDoctorPartialRequest) map[string]interface{} {
	fields := make(map[string]interface{})
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Specialty != nil {
		fields["specialty"] = *req.Specialty
	}
	return fields
}

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:        doctor.ID,
		Name:      doctor.Name,
		Specialty: doctor.Specialty,
		Status:    doctor.Status,
		CreatedAt: doctor.CreatedAt,
		UpdatedAt: doctor.UpdatedAt,
	}
}
