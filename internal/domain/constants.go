package domain

// Default settings values
const (
	DefaultBusinessName       = "Truckify"
	DefaultCompanyColor       = "#3B82F6"
	DefaultMinimumBookingDays = 1
	DefaultMaximumBookingDays = 365
)

// Business validation constants
const (
	MaxBookingDaysLimit   = 730
	MaxNameLength         = 200
	MaxDescriptionLength  = 2000
	MaxCustomerMessageLen = 2000
	MaxFacilities         = 50
	MaxImages             = 20
	MaxPassengersLimit    = 20
	MinVehicleYear        = 1950
	MaxPrice              = 100000
)

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы, не занимающие даты
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}
