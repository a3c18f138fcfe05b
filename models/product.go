package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Brand         string    `json:"brand,omitempty"`
	Description   string    `json:"description,omitempty"`
	Price         float64   `gorm:"not null" json:"price"`
	Stock         int       `gorm:"not null;default:0" json:"stock"`
	Category      string    `json:"category,omitempty"`
	Rating        float64   `gorm:"default:0" json:"rating"`
	Reviews       int       `gorm:"default:0" json:"reviews"`
	ImageURL      string    `json:"image_url,omitempty"`
	OriginalPrice *float64  `json:"original_price,omitempty"`
	IsNew         bool      `gorm:"default:false" json:"is_new"`
	IsOnSale      bool      `gorm:"default:false" json:"is_on_sale"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
