package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VaultDocument is a personal document a user keeps on the platform.
type VaultDocument struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string `gorm:"type:uuid;not null;index" json:"userId"`
	Category   string `json:"category"`
	URL        string `gorm:"not null" json:"url"`
	Name       string `json:"name"`
	Size       int64  `json:"size"`
	Type       string `json:"type"`
	StorageKey string `gorm:"not null" json:"-"`

	// Set for images only.
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	ThumbnailKey string `json:"-"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (d *VaultDocument) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// Ref returns the public tuple for the stored file.
func (d VaultDocument) Ref() DocumentRef {
	return DocumentRef{URL: d.URL, Name: d.Name, Size: d.Size, Type: d.Type}
}

// AllModels lists every table managed by AutoMigrate.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Admin{},
		&Policy{},
		&Application{},
		&Claim{},
		&VaultDocument{},
	}
}
