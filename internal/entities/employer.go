package entities

import "time"

type Employer struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	CompanyName  string `gorm:"not null" json:"companyName"`
	OwnerName    string `gorm:"not null" json:"ownerName"`
	Sector       string `json:"sector"`
	Address      string `json:"address"`
	Phone        string `gorm:"uniqueIndex;not null" json:"phone"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	IsActive     bool   `gorm:"default:true" json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Admin struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"default:master" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
