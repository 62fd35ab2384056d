package domain

import "time"

type Review struct {
	ID        uint64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string  `json:"name" gorm:"not null;size:100"`
	Text      string  `json:"text" gorm:"not null;type:text"`
	Rating    int     `json:"rating" gorm:"not null;default:5"`
	ProductID uint64  `json:"productId" gorm:"not null;index"`
	UserID    *uint64 `json:"userId,omitempty" gorm:"index"`

	Date      time.Time `json:"date" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
