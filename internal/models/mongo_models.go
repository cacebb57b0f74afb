package models

import (
	"time"
)

// Product model - MongoDB (flexible catalog data).
// IDs are the legacy string identifiers from the original storefront catalog
// ("1".."15"); the cart and order items reference products by this id.
type Product struct {
	ID            string    `bson:"_id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Category      string    `bson:"category" json:"category"` // coffee, spices, dryfoods, textiles, household
	Origin        string    `bson:"origin" json:"origin"`
	Price         float64   `bson:"price" json:"price"`
	Image         string    `bson:"image" json:"image"`
	Description   string    `bson:"description" json:"description"`
	CulturalNotes string    `bson:"cultural_notes,omitempty" json:"cultural_notes,omitempty"`
	Featured      bool      `bson:"featured" json:"featured"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// ProductCategory model - MongoDB
type ProductCategory struct {
	ID          string `bson:"_id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Icon        string `bson:"icon" json:"icon"`
	Description string `bson:"description" json:"description"`
}
