// Package calendar строит сетку месяца и управляет выбором диапазона дат.
// Пакет не зависит от хранилища и транспорта: все функции чистые.
package calendar

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const (
	// ISOLayout формат даты в API
	ISOLayout = "2006-01-02"
	// KeyLayout формат ключа ячейки сетки
	KeyLayout = "02-01-2006"
)

const (
	// MinYear и MaxYear границы, которые выдерживает текстовый формат YYYY
	MinYear = 1
	MaxYear = 9999
)

var (
	ErrInvalidDate = errors.New("calendar: invalid date")
	ErrOutOfRange  = errors.New("calendar: year out of range")
)

// Date календарная дата без времени и часового пояса
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate нормализует переполнение как time.Date (31 февраля -> 2 или 3 марта)
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf берет дату из t в его часовом поясе
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today текущая дата в локальном времени
func Today(now time.Time) Date {
	return DateOf(now.In(time.Local))
}

func ParseISO(s string) (Date, error) {
	t, err := time.Parse(ISOLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

func ParseKey(s string) (Date, error) {
	t, err := time.Parse(KeyLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// Time полночь даты в UTC
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// In полночь даты в указанном часовом поясе
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	return d.Time().Format(ISOLayout)
}

// Key ключ в формате DD-MM-YYYY
func (d Date) Key() string {
	return d.Time().Format(KeyLayout)
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// Compare возвращает -1, 0 или 1
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }
func (d Date) Equal(o Date) bool  { return d == o }

// DaysUntil число дней от d до o (отрицательное, если o раньше)
func (d Date) DaysUntil(o Date) int {
	return int(o.Time().Sub(d.Time()).Hours() / 24)
}

// MarshalText нулевая дата кодируется пустой строкой
func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	if !validYear(d.Year) {
		return nil, fmt.Errorf("%w: %d", ErrOutOfRange, d.Year)
	}
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseISO(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan читает DATE из PostgreSQL
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidDate, src)
	}
}

func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// DaysIn число дней в месяце
func DaysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func validYear(y int) bool {
	return y >= MinYear && y <= MaxYear
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
