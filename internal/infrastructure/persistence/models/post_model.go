package models

import (
	"time"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/posts"
)

// TagModel is the GORM database model for tags
type TagModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null;uniqueIndex;type:varchar(50)"`
}

// TableName specifies the table name for GORM
func (TagModel) TableName() string {
	return "tags"
}

// PostModel is the GORM database model for photo posts
type PostModel struct {
	ID           uint       `gorm:"primaryKey"`
	ImageURL     string     `gorm:"not null;type:varchar(255)"`
	StorageKey   string     `gorm:"not null;type:varchar(255)"`
	QRCodeURL    *string    `gorm:"type:varchar(255)"`
	QRStorageKey *string    `gorm:"type:varchar(255)"`
	Description  *string    `gorm:"type:text"`
	ContentType  string     `gorm:"not null;type:varchar(50)"`
	OwnerID      uint       `gorm:"not null;index"`
	Owner        UserModel  `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Tags         []TagModel `gorm:"many2many:post_tags;joinForeignKey:PostID;joinReferences:TagID"`
	CreatedAt    time.Time  `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (PostModel) TableName() string {
	return "posts"
}

// ToDomain converts GORM model to domain entity
func (m *PostModel) ToDomain() *posts.Post {
	tags := make([]posts.Tag, 0, len(m.Tags))
	for _, tag := range m.Tags {
		tags = append(tags, posts.Tag{ID: tag.ID, Name: tag.Name})
	}

	return &posts.Post{
		ID:           m.ID,
		ImageURL:     m.ImageURL,
		StorageKey:   m.StorageKey,
		QRCodeURL:    m.QRCodeURL,
		QRStorageKey: m.QRStorageKey,
		Description:  m.Description,
		ContentType:  m.ContentType,
		OwnerID:      m.OwnerID,
		Tags:         tags,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PostModel) FromDomain(p *posts.Post) {
	m.ID = p.ID
	m.ImageURL = p.ImageURL
	m.StorageKey = p.StorageKey
	m.QRCodeURL = p.QRCodeURL
	m.QRStorageKey = p.QRStorageKey
	m.Description = p.Description
	m.ContentType = p.ContentType
	m.OwnerID = p.OwnerID
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt

	m.Tags = make([]TagModel, 0, len(p.Tags))
	for _, tag := range p.Tags {
		m.Tags = append(m.Tags, TagModel{ID: tag.ID, Name: tag.Name})
	}
}
