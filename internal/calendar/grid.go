package calendar

import "time"

const (
	DaysPerWeek  = 7
	WeeksPerGrid = 6
	GridCells    = DaysPerWeek * WeeksPerGrid
)

// DayCell ячейка сетки месяца
type DayCell struct {
	Date             Date   `json:"date"`
	Label            int    `json:"label"`
	Key              string `json:"key"`
	InDisplayedMonth bool   `json:"in_displayed_month"`
}

// MonthGrid 42 ячейки (6 недель по 7 дней), первая ячейка всегда понедельник
type MonthGrid struct {
	Month Month              `json:"month"`
	Cells [GridCells]DayCell `json:"cells"`
}

// BuildMonthGridByIndex строит сетку по индексу месяца 0..11
func BuildMonthGridByIndex(monthIndex, year int) MonthGrid {
	return BuildMonthGrid(year, time.Month(monthIndex+1))
}

// BuildMonthGrid строит сетку месяца: хвост предыдущего месяца,
// все дни месяца и начало следующего до 42 ячеек
func BuildMonthGrid(year int, month time.Month) MonthGrid {
	m := NewMonth(year, month)
	first := m.First()

	// неделя начинается с понедельника: Sunday(0) -> 6, Monday(1) -> 0
	offset := (int(first.Weekday()) + DaysPerWeek - 1) % DaysPerWeek
	start := first.AddDays(-offset)

	grid := MonthGrid{Month: m}
	for i := range grid.Cells {
		d := start.AddDays(i)
		grid.Cells[i] = DayCell{
			Date:             d,
			Label:            d.Day,
			Key:              d.Key(),
			InDisplayedMonth: m.Contains(d),
		}
	}
	return grid
}

// Weeks сетка по строкам
func (g MonthGrid) Weeks() [][]DayCell {
	weeks := make([][]DayCell, 0, WeeksPerGrid)
	for w := 0; w < WeeksPerGrid; w++ {
		row := make([]DayCell, DaysPerWeek)
		copy(row, g.Cells[w*DaysPerWeek:(w+1)*DaysPerWeek])
		weeks = append(weeks, row)
	}
	return weeks
}

// Lookup ищет ячейку с датой d
func (g MonthGrid) Lookup(d Date) (DayCell, bool) {
	first := g.Cells[0].Date
	i := first.DaysUntil(d)
	if i < 0 || i >= GridCells {
		return DayCell{}, false
	}
	return g.Cells[i], true
}

// Padding число ячеек до и после дней месяца
func (g MonthGrid) Padding() (leading, trailing int) {
	for _, c := range g.Cells {
		if c.InDisplayedMonth {
			break
		}
		leading++
	}
	return leading, GridCells - leading - g.Month.Days()
}
