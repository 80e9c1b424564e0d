package models

import "gorm.io/gorm"

// Product represents a catalog item. Quantity is available stock; it is
// not decremented when an order is placed against the product.
type Product struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string  `json:"name" validate:"required,min=1,max=100"`
	Price      float64 `json:"price" validate:"gte=0"`
	Quantity   int     `json:"quantity" validate:"gte=0"`
	Active     bool    `json:"active"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
