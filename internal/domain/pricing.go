package domain

import (
	"math"

	"github.com/m04kA/Truckify-BookingService/internal/calendar"
)

// BillableDays число оплачиваемых единиц: дни включительно или ночи (минимум одна)
func BillableDays(r calendar.Range, charge ChargeType) int {
	days := r.Days()
	if charge == ChargePerNight {
		nights := days - 1
		if nights < 1 {
			return 1
		}
		return nights
	}
	return days
}

// Quote расчёт стоимости бронирования
type Quote struct {
	BillableDays    int
	BasePrice       float64
	AttributesPrice float64
	TotalPrice      float64
}

// PriceBooking считает цену кемпера и опций за диапазон
func PriceBooking(camper Camper, attributes []Attribute, r calendar.Range, charge ChargeType) Quote {
	units := BillableDays(r, charge)

	base := RoundPrice(camper.PricePerDay * float64(units))
	extras := AttributesPrice(attributes, units)

	return Quote{
		BillableDays:    units,
		BasePrice:       base,
		AttributesPrice: extras,
		TotalPrice:      RoundPrice(base + extras),
	}
}

// AttributesPrice сумма цен опций за units оплачиваемых дней
func AttributesPrice(attributes []Attribute, units int) float64 {
	var sum float64
	for _, a := range attributes {
		sum += a.Price * float64(units)
	}
	return RoundPrice(sum)
}

// RoundPrice округляет до центов
func RoundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}
