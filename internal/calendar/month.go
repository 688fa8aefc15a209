package calendar

import (
	"fmt"
	"time"
)

const monthLayout = "2006-01"

// Month отображаемый месяц
type Month struct {
	Year  int
	Month time.Month
}

// NewMonth нормализует месяц вне 1..12 (13 -> январь следующего года)
func NewMonth(year int, month time.Month) Month {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{Year: t.Year(), Month: t.Month()}
}

func MonthOf(d Date) Month {
	return Month{Year: d.Year, Month: d.Month}
}

func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("%w: month %q", ErrInvalidDate, s)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func (m Month) IsZero() bool {
	return m == Month{}
}

// Valid год в пределах MinYear..MaxYear и месяц 1..12
func (m Month) Valid() bool {
	return validYear(m.Year) && m.Month >= time.January && m.Month <= time.December
}

func (m Month) Add(n int) Month {
	return NewMonth(m.Year, m.Month+time.Month(n))
}

func (m Month) First() Date {
	return Date{Year: m.Year, Month: m.Month, Day: 1}
}

func (m Month) Last() Date {
	return Date{Year: m.Year, Month: m.Month, Day: m.Days()}
}

func (m Month) Days() int {
	return DaysIn(m.Month, m.Year)
}

func (m Month) Contains(d Date) bool {
	return d.Year == m.Year && d.Month == m.Month
}

func (m Month) String() string {
	return m.First().Time().Format(monthLayout)
}

// MarshalText нулевой месяц кодируется пустой строкой
func (m Month) MarshalText() ([]byte, error) {
	if m.IsZero() {
		return []byte{}, nil
	}
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrOutOfRange, m.Year)
	}
	return []byte(m.String()), nil
}

func (m *Month) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*m = Month{}
		return nil
	}
	parsed, err := ParseMonth(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
