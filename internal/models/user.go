package models

import "gorm.io/datatypes"

type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string `json:"phone"`
	PasswordHash string `gorm:"not null" json:"-"`
}

// Admin represents an insurance company account. One admin owns many policies.
type Admin struct {
	BaseModel
	CompanyName    string                      `gorm:"not null" json:"companyName"`
	Email          string                      `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string                      `gorm:"not null" json:"-"`
	InsuranceTypes datatypes.JSONSlice[string] `json:"insuranceTypes"`
	Address        string                      `json:"address"`
}
