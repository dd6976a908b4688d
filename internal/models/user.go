package models

import (
	"time"
)

// User is a registered account profile
type User struct {
	ID        string    `gorm:"primarykey" json:"id"` // uuid
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	NamaLengkap  string `gorm:"not null" json:"nama_lengkap"`
	Alamat       string `json:"alamat"`
	PasswordHash string `json:"-"`
}

// AuthToken is an opaque bearer token issued at login and revoked at logout
type AuthToken struct {
	Token     string    `gorm:"primarykey" json:"token"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
