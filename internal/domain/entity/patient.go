package entity

type Patient struct {
	BaseEntity
	Name  string `gorm:"type:varchar(200);not null;index" json:"name"`
	Email string `gorm:"type:varchar(200);not null;uniqueIndex:ix_patients_email" json:"email"`
	Phone int64  `gorm:"not null" json:"phone"`
	DNI   int64  `gorm:"column:dni;not null;uniqueIndex:ix_patients_dni" json:"dni"`
}

func (Patient) TableName() string {
	return "patients"
}
