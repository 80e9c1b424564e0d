package models

import "time"

// Order represents a placed customer order. Orders are written once and
// never updated or deleted. ProductName is a snapshot of the product name
// at placement time, so later renames of the product do not touch it.
type Order struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID    string    `json:"productId" gorm:"type:varchar(36);index"`
	ProductName  string    `json:"productName"`
	UserName     string    `json:"userName"`
	Quantity     int       `json:"quantity"`
	TicketNumber int       `json:"ticketNumber" gorm:"index"`
	CreatedAt    time.Time `json:"createdAt"`
}
