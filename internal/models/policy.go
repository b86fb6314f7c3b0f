package models

import "gorm.io/datatypes"

type Policy struct {
	BaseModel
	Name              string                      `gorm:"not null" json:"name"`
	Category          string                      `gorm:"index" json:"category"`
	Provider          string                      `json:"provider"`
	CoverageAmount    float64                     `json:"coverageAmount"`
	Premium           float64                     `json:"premium"`
	Tenure            string                      `json:"tenure"`
	Features          datatypes.JSONSlice[string] `json:"features"`
	RequiredDocuments datatypes.JSONSlice[string] `json:"requiredDocuments"`
	Terms             datatypes.JSONSlice[string] `json:"terms"`
	Popular           bool                        `gorm:"default:false" json:"popular"`
	Status            PolicyStatus                `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedBy         string                      `gorm:"type:uuid;not null;index" json:"createdBy"`
	Subscribers       int                         `gorm:"default:0" json:"subscribers"`
	Revenue           float64                     `gorm:"default:0" json:"revenue"`

	// Relations
	Owner *Admin `gorm:"foreignKey:CreatedBy" json:"-"`
}
