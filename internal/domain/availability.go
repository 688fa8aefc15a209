package domain

// AvailabilityResult доступность кемпера на выбранный диапазон
type AvailabilityResult struct {
	Camper    Camper
	Available bool
	Price     float64
}
