package models

import (
	"time"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/comments"
)

// CommentModel is the GORM database model for comments
type CommentModel struct {
	ID        uint      `gorm:"primaryKey"`
	Text      string    `gorm:"not null;type:varchar(500)"`
	UserID    uint      `gorm:"not null;index"`
	User      UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	PostID    uint      `gorm:"not null;index"`
	Post      PostModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (CommentModel) TableName() string {
	return "comments"
}

// ToDomain converts GORM model to domain entity
func (m *CommentModel) ToDomain() *comments.Comment {
	return &comments.Comment{
		ID:        m.ID,
		Text:      m.Text,
		UserID:    m.UserID,
		PostID:    m.PostID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CommentModel) FromDomain(c *comments.Comment) {
	m.ID = c.ID
	m.Text = c.Text
	m.UserID = c.UserID
	m.PostID = c.PostID
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}
