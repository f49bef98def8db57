// models/user.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"            json:"id"`
	Name         string    `gorm:"size:100;not null"               json:"name"`
	Email        string    `gorm:"size:100;uniqueIndex;not null"   json:"email"`
	PasswordHash string    `gorm:"size:255;not null"               json:"-"`
	Role         string    `gorm:"size:50;not null;default:member" json:"role"`
	IsActive     bool      `gorm:"default:true"                    json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}
