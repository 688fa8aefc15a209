package models

import (
	"time"

	"github.com/m04kA/Truckify-BookingService/internal/domain"
)

// CamperRequest тело запроса на создание и обновление кемпера
type CamperRequest struct {
	Name          string   `json:"name"`
	LicensePlate  *string  `json:"license_plate,omitempty"`
	PricePerDay   float64  `json:"price_per_day"`
	Color         string   `json:"color"`
	Description   *string  `json:"description,omitempty"`
	Facilities    []string `json:"facilities,omitempty"`
	Images        []string `json:"images,omitempty"`
	MaxPassengers int      `json:"max_passengers"`
	Year          *int     `json:"year,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"` // по умолчанию true
}

// ToDomain конвертирует запрос в domain модель
func (r *CamperRequest) ToDomain() *domain.Camper {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}

	return &domain.Camper{
		Name:          r.Name,
		LicensePlate:  r.LicensePlate,
		PricePerDay:   r.PricePerDay,
		Color:         r.Color,
		Description:   r.Description,
		Facilities:    r.Facilities,
		Images:        r.Images,
		MaxPassengers: r.MaxPassengers,
		Year:          r.Year,
		IsActive:      active,
	}
}

// CamperResponse кемпер в ответе API
type CamperResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	LicensePlate  *string   `json:"license_plate,omitempty"`
	PricePerDay   float64   `json:"price_per_day"`
	Color         string    `json:"color"`
	Description   *string   `json:"description,omitempty"`
	Facilities    []string  `json:"facilities"`
	Images        []string  `json:"images"`
	MaxPassengers int       `json:"max_passengers"`
	Year          *int      `json:"year,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FromDomainCamper конвертирует domain модель в DTO
func FromDomainCamper(c *domain.Camper) *CamperResponse {
	if c == nil {
		return nil
	}

	return &CamperResponse{
		ID:            c.ID,
		Name:          c.Name,
		LicensePlate:  c.LicensePlate,
		PricePerDay:   c.PricePerDay,
		Color:         c.Color,
		Description:   c.Description,
		Facilities:    emptyIfNil(c.Facilities),
		Images:        emptyIfNil(c.Images),
		MaxPassengers: c.MaxPassengers,
		Year:          c.Year,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// FromDomainCamperList конвертирует список кемперов
func FromDomainCamperList(campers []*domain.Camper) []CamperResponse {
	resp := make([]CamperResponse, 0, len(campers))
	for _, c := range campers {
		if dto := FromDomainCamper(c); dto != nil {
			resp = append(resp, *dto)
		}
	}
	return resp
}

func emptyIfNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
