package create_booking

import (
	"github.com/m04kA/Truckify-BookingService/internal/calendar"
	"github.com/m04kA/Truckify-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	CamperID        int64         // ID кемпера
	StartDate       calendar.Date // Первый день аренды
	EndDate         calendar.Date // Последний день аренды (включительно)
	CustomerName    string        // Имя клиента
	CustomerEmail   string        // Email клиента
	CustomerPhone   *string       // Телефон (опционально)
	CustomerMessage *string       // Сообщение (опционально)
	AttributeIDs    []int64       // Выбранные опции
}

// Response созданное бронирование с расчётом стоимости
type Response struct {
	Booking    *domain.Booking
	Camper     *domain.Camper
	Attributes []domain.Attribute
	Quote      domain.Quote
}
