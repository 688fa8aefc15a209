package domain

import "time"

// Attribute дополнительная опция к бронированию, цена за оплачиваемый день
type Attribute struct {
	ID          int64
	Name        string
	Description *string
	Price       float64
	IsActive    bool
	CreatedAt   time.Time
}
