package models

import (
	"time"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/users"
)

// UserModel is the GORM database model for users
type UserModel struct {
	ID             uint       `gorm:"primaryKey"`
	Username       string     `gorm:"not null;type:varchar(50)"`
	Email          string     `gorm:"not null;uniqueIndex;type:varchar(150)"`
	HashedPassword string     `gorm:"not null;type:varchar(255)"`
	Avatar         *string    `gorm:"type:varchar(255)"`
	RefreshToken   *string    `gorm:"type:varchar(512)"`
	FirstName      string     `gorm:"not null;type:varchar(50)"`
	LastName       string     `gorm:"not null;type:varchar(50)"`
	Birthday       *time.Time `gorm:"type:date"`
	Phone          *string    `gorm:"type:varchar(14)"`
	Role           string     `gorm:"not null;type:varchar(20)"`
	IsActive       bool       `gorm:"not null"`
	IsBlocked      bool       `gorm:"not null"`
	About          *string    `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:             m.ID,
		Username:       m.Username,
		Email:          m.Email,
		HashedPassword: m.HashedPassword,
		Avatar:         m.Avatar,
		RefreshToken:   m.RefreshToken,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Birthday:       m.Birthday,
		Phone:          m.Phone,
		Role:           users.Role(m.Role),
		IsActive:       m.IsActive,
		IsBlocked:      m.IsBlocked,
		About:          m.About,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Username = u.Username
	m.Email = u.Email
	m.HashedPassword = u.HashedPassword
	m.Avatar = u.Avatar
	m.RefreshToken = u.RefreshToken
	m.FirstName = u.FirstName
	m.LastName = u.LastName
	m.Birthday = u.Birthday
	m.Phone = u.Phone
	m.Role = string(u.Role)
	m.IsActive = u.IsActive
	m.IsBlocked = u.IsBlocked
	m.About = u.About
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
}
