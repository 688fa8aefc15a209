package models

import (
	"time"

	"github.com/m04kA/Truckify-BookingService/internal/domain"
)

// AttributeRequest тело запроса на создание и обновление опции
type AttributeRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	IsActive    *bool   `json:"is_active,omitempty"` // по умолчанию true
}

func (r *AttributeRequest) ToDomain() *domain.Attribute {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &domain.Attribute{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		IsActive:    active,
	}
}

// AttributeResponse опция в ответе API
type AttributeResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       float64   `json:"price"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromDomainAttribute(a *domain.Attribute) *AttributeResponse {
	if a == nil {
		return nil
	}
	return &AttributeResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Price:       a.Price,
		IsActive:    a.IsActive,
		CreatedAt:   a.CreatedAt,
	}
}

func FromDomainAttributeList(attrs []*domain.Attribute) []AttributeResponse {
	resp := make([]AttributeResponse, 0, len(attrs))
	for _, a := range attrs {
		if dto := FromDomainAttribute(a); dto != nil {
			resp = append(resp, *dto)
		}
	}
	return resp
}
