package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthGrid_Properties(t *testing.T) {
	for year := 1999; year <= 2030; year++ {
		for month := time.January; month <= time.December; month++ {
			g := BuildMonthGrid(year, month)

			require.Len(t, g.Cells, GridCells)
			assert.Equal(t, time.Monday, g.Cells[0].Date.Weekday(), "%d-%02d", year, month)

			inMonth := 0
			seen := make(map[string]bool, GridCells)
			for i, c := range g.Cells {
				if i > 0 {
					assert.Equal(t, g.Cells[i-1].Date.AddDays(1), c.Date, "cells must be consecutive")
				}
				assert.False(t, seen[c.Key], "duplicate %s", c.Key)
				seen[c.Key] = true

				assert.Equal(t, c.Date.Day, c.Label)
				if c.InDisplayedMonth {
					inMonth++
				}
			}
			assert.Equal(t, DaysIn(month, year), inMonth, "%d-%02d", year, month)
		}
	}
}

func TestBuildMonthGrid_March2024(t *testing.T) {
	g := BuildMonthGrid(2024, time.March)

	leading, trailing := g.Padding()
	assert.Equal(t, 4, leading)
	assert.Equal(t, 7, trailing)

	assert.Equal(t, NewDate(2024, time.February, 26), g.Cells[0].Date)
	assert.Equal(t, "26-02-2024", g.Cells[0].Key)
	assert.False(t, g.Cells[0].InDisplayedMonth)

	assert.Equal(t, NewDate(2024, time.March, 1), g.Cells[4].Date)
	assert.True(t, g.Cells[4].InDisplayedMonth)
	assert.Equal(t, time.Friday, g.Cells[4].Date.Weekday())

	assert.Equal(t, NewDate(2024, time.April, 7), g.Cells[41].Date)
	assert.False(t, g.Cells[41].InDisplayedMonth)
}

func TestBuildMonthGrid_MonthStartingOnMonday(t *testing.T) {
	// 1 апреля 2024 - понедельник
	g := BuildMonthGrid(2024, time.April)

	leading, trailing := g.Padding()
	assert.Equal(t, 0, leading)
	assert.Equal(t, 12, trailing)
}

func TestBuildMonthGrid_MonthStartingOnSunday(t *testing.T) {
	// 1 сентября 2024 - воскресенье
	g := BuildMonthGrid(2024, time.September)

	leading, _ := g.Padding()
	assert.Equal(t, 6, leading)
}

func TestBuildMonthGridByIndex(t *testing.T) {
	assert.Equal(t, BuildMonthGrid(2024, time.March), BuildMonthGridByIndex(2, 2024))
	assert.Equal(t, BuildMonthGrid(2025, time.January), BuildMonthGridByIndex(0, 2025))
	assert.Equal(t, BuildMonthGrid(2025, time.December), BuildMonthGridByIndex(11, 2025))
}

func TestMonthGrid_WeeksAndLookup(t *testing.T) {
	g := BuildMonthGrid(2024, time.February)

	weeks := g.Weeks()
	require.Len(t, weeks, WeeksPerGrid)
	for _, w := range weeks {
		require.Len(t, w, DaysPerWeek)
		assert.Equal(t, time.Monday, w[0].Date.Weekday())
	}

	cell, ok := g.Lookup(NewDate(2024, time.February, 29))
	require.True(t, ok)
	assert.True(t, cell.InDisplayedMonth)

	_, ok = g.Lookup(NewDate(2024, time.June, 1))
	assert.False(t, ok)
}

func TestGridCache(t *testing.T) {
	c := NewGridCache(2)

	g := c.Get(2024, time.March)
	assert.Equal(t, BuildMonthGrid(2024, time.March), g)
	assert.Equal(t, 1, c.Len())

	c.Get(2024, time.March)
	assert.Equal(t, 1, c.Len())

	c.Get(2024, time.April)
	c.Get(2024, time.May)
	assert.Equal(t, 1, c.Len(), "cache resets when the limit is reached")

	// 13-й месяц нормализуется в январь следующего года
	assert.Equal(t, BuildMonthGrid(2025, time.January), c.Get(2024, 13))
}
