package domain

import "time"

type Province struct {
	ID      uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string `json:"name" gorm:"not null;uniqueIndex;size:100"`
	Country string `json:"country" gorm:"not null;size:100"`

	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

type Locality struct {
	ID         uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string `json:"name" gorm:"not null;size:100"`
	Zipcode    string `json:"zipcode" gorm:"not null;uniqueIndex;size:16"`
	ProvinceID uint64 `json:"provinceId" gorm:"not null;index"`

	Province *Province `json:"province,omitempty" gorm:"foreignKey:ProvinceID"`

	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

type PickupPoint struct {
	ID           uint64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string  `json:"name" gorm:"not null;size:100"`
	Address      string  `json:"address" gorm:"not null;size:255"`
	Phone        string  `json:"phone,omitempty" gorm:"size:32"`
	Email        string  `json:"email,omitempty" gorm:"size:255"`
	Description  string  `json:"description,omitempty" gorm:"type:text"`
	OpeningHours string  `json:"openingHours,omitempty" gorm:"size:100"`
	ImageURL     string  `json:"imageUrl,omitempty" gorm:"type:text"`
	Latitude     float64 `json:"latitude,omitempty"`
	Longitude    float64 `json:"longitude,omitempty"`
	Active       bool    `json:"active" gorm:"not null;default:true"`
	LocalityID   uint64  `json:"localityId" gorm:"not null;index"`

	Locality *Locality `json:"locality,omitempty" gorm:"foreignKey:LocalityID"`

	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
