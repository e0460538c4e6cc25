package converter

import (
	"testing"
	"time"

	"medical-scheduling-api/internal/delivery/dto"
	"medical-scheduling-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestPatientFromRequest_IsActive(t *testing.T) {
	p := PatientFromRequest(&dto.PatientRequest{Name: "Ana", Email: "ana@x.com", Phone: 5551234, DNI: 12345678})

	assert.True(t, p.Status)
	assert.Equal(t, "Ana", p.Name)
	assert.Equal(t, int64(12345678), p.DNI)
	assert.Zero(t, p.ID)
}

func TestPatientPartialFields_OnlyProvided(t *testing.T) {
	fields := PatientPartialFields(&dto.UpdatePatientPartialRequest{
		IDRequest: dto.IDRequest{ID: 1},
		Email:     ptr("new@x.com"),
	})

	assert.Equal(t, map[string]interface{}{"email": "new@x.com"}, fields)
}

func TestDoctorPartialFields_Empty(t *testing.T) {
	fields := DoctorPartialFields(&dto.UpdateDoctorPartialRequest{IDRequest: dto.IDRequest{ID: 3}})
	assert.Empty(t, fields)
}

func TestAppointmentPartialFields_NormalizesDate(t *testing.T) {
	loc := time.FixedZone("COT", -5*3600)
	date := time.Date(2024, 6, 3, 9, 30, 0, 0, loc)

	fields := AppointmentPartialFields(&dto.UpdateAppointmentPartialRequest{
		IDRequest: dto.IDRequest{ID: 1},
		Date:      &date,
		DoctorID:  ptr(int64(4)),
	})

	assert.Equal(t, time.UTC, fields["date"].(time.Time).Location())
	assert.Equal(t, 14, fields["date"].(time.Time).Hour())
	assert.Equal(t, int64(4), fields["doctor_id"])
	assert.NotContains(t, fields, "reason")
}

func TestApplyAppointmentRequest_DropsStaleReferences(t *testing.T) {
	a := &entity.Appointment{
		PatientID: 1,
		DoctorID:  2,
		Patient:   &entity.Patient{Name: "Ana"},
		Doctor:    &entity.Doctor{Name: "Dr. House"},
	}

	ApplyAppointmentRequest(a, &dto.AppointmentRequest{PatientID: 1, DoctorID: 5, Reason: "checkup"})

	assert.NotNil(t, a.Patient)
	assert.Nil(t, a.Doctor)
	assert.Equal(t, int64(5), a.DoctorID)
}

func TestAppointmentToResponse_IncludesReferences(t *testing.T) {
	a := &entity.Appointment{Reason: "checkup", Patient: &entity.Patient{Name: "Ana"}}
	a.ID = 9

	resp := AppointmentToResponse(a)
	assert.Equal(t, int64(9), resp.ID)
	assert.Equal(t, "Ana", resp.Patient.Name)
	assert.Nil(t, resp.Doctor)
	assert.Nil(t, AppointmentToResponse(nil))
}
