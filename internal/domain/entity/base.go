package entity

import "time"

// Model is implemented by every persisted entity through BaseEntity.
type Model interface {
	GetID() int64
	IsActive() bool
	SetActive(active bool)
}

// BaseEntity holds the identity and audit columns shared by all tables.
// CreatedAt is write-once; UpdatedAt is refreshed by GORM on every update.
type BaseEntity struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime;<-:create" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
	Status    bool      `gorm:"not null;default:true;index" json:"status"`
}

func (b *BaseEntity) GetID() int64 {
	return b.ID
}

func (b *BaseEntity) IsActive() bool {
	return b.Status
}

func (b *BaseEntity) SetActive(active bool) {
	b.Status = active
}
