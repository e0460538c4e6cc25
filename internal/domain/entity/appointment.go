package entity

import "time"

// Appointment links a patient and a doctor at a point in time.
// Patient and Doctor are read-side only; deleting either is restricted
// while an appointment references it.
type Appointment struct {
	BaseEntity
	Date      time.Time `gorm:"not null;index" json:"date"`
	Reason    string    `gorm:"type:varchar(500);not null" json:"reason"`
	PatientID int64     `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoctorID  int64     `gorm:"column:doctor_id;not null;index" json:"doctor_id"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID;constraint:OnDelete:RESTRICT" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID;constraint:OnDelete:RESTRICT" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
