package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	Email                string     `gorm:"uniqueIndex;not null" json:"email"`
	Password             string     `gorm:"not null" json:"-"`
	FirstName            string     `json:"firstName"`
	LastName             string     `json:"lastName"`
	IsAdmin              bool       `gorm:"default:false" json:"isAdmin"`
	IsProfileComplete    bool       `gorm:"default:false" json:"isProfileComplete"`
	PasswordResetToken   string     `gorm:"index" json:"-"`
	PasswordResetExpires *time.Time `json:"-"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}
