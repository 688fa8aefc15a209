package domain

import "time"

// Camper транспортное средство в аренду
type Camper struct {
	ID            int64
	Name          string
	LicensePlate  *string
	PricePerDay   float64
	Color         string
	Description   *string
	Facilities    []string
	Images        []string
	MaxPassengers int
	Year          *int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
