package check_availability

import (
	"github.com/m04kA/Truckify-BookingService/internal/calendar"
	camperModels "github.com/m04kA/Truckify-BookingService/internal/service/campers/models"
	checkAvailability "github.com/m04kA/Truckify-BookingService/internal/usecase/check_availability"
)

// AvailabilityResult доступность одного кемпера
type AvailabilityResult struct {
	Camper    *camperModels.CamperResponse `json:"camper"`
	Available bool                         `json:"available"`
	Price     float64                      `json:"price"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	StartDate    calendar.Date        `json:"start_date"`
	EndDate      calendar.Date        `json:"end_date"`
	ChargeType   string               `json:"charge_type"`
	BillableDays int                  `json:"billable_days"`
	Availability []AvailabilityResult `json:"availability"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	results := make([]AvailabilityResult, 0, len(resp.Availability))
	for i := range resp.Availability {
		a := resp.Availability[i]
		results = append(results, AvailabilityResult{
			Camper:    camperModels.FromDomainCamper(&a.Camper),
			Available: a.Available,
			Price:     a.Price,
		})
	}

	return &AvailabilityResponse{
		StartDate:    resp.Range.Start,
		EndDate:      resp.Range.End,
		ChargeType:   string(resp.ChargeType),
		BillableDays: resp.BillableDays,
		Availability: results,
	}
}
