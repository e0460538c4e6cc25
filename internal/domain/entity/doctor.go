package entity

type Doctor struct {
	BaseEntity
	Name      string `gorm:"type:varchar(200);not null;index" json:"name"`
	Specialty string `gorm:"type:varchar(100);not null;index" json:"specialty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
