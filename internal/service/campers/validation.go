package campers

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/Truckify-BookingService/internal/domain"
	"github.com/m04kA/Truckify-BookingService/internal/service/campers/models"
)

// validateRequest проверяет и нормализует запрос
func validateRequest(req *models.CamperRequest, now time.Time) error {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if req.PricePerDay < 0 || req.PricePerDay > domain.MaxPrice {
		return fmt.Errorf("%w: price_per_day must be between 0 and %d", ErrInvalidInput, domain.MaxPrice)
	}

	if req.Color == "" {
		req.Color = domain.DefaultCompanyColor
	}
	if !domain.ValidColor(req.Color) {
		return fmt.Errorf("%w: color must be #RRGGBB", ErrInvalidInput)
	}

	if req.MaxPassengers < 1 || req.MaxPassengers > domain.MaxPassengersLimit {
		return fmt.Errorf("%w: max_passengers must be between 1 and %d", ErrInvalidInput, domain.MaxPassengersLimit)
	}

	if req.Year != nil && (*req.Year < domain.MinVehicleYear || *req.Year > now.Year()+1) {
		return fmt.Errorf("%w: year must be between %d and %d", ErrInvalidInput, domain.MinVehicleYear, now.Year()+1)
	}

	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}

	if len(req.Facilities) > domain.MaxFacilities {
		return fmt.Errorf("%w: at most %d facilities", ErrInvalidInput, domain.MaxFacilities)
	}
	if len(req.Images) > domain.MaxImages {
		return fmt.Errorf("%w: at most %d images", ErrInvalidInput, domain.MaxImages)
	}

	return nil
}
