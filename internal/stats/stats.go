// Package stats computes birthday statistics over an address book.
package stats

import (
	"time"

	"github.com/makery/addressapp/internal/model"
)

// BirthdayStats counts birthdays per calendar month.
type BirthdayStats struct {
	// ByMonth is indexed by time.Month-1.
	ByMonth [12]int `json:"by_month"`
	// Unknown counts persons without a usable birthday.
	Unknown int `json:"unknown"`
}

// MonthCount is one row of BirthdayStats.
type MonthCount struct {
	Month time.Month `json:"month"`
	Count int        `json:"count"`
}

// BirthdaysByMonth counts the birthdays of persons per month.
func BirthdaysByMonth(persons []*model.Person) BirthdayStats {
	var s BirthdayStats
	for _, p := range persons {
		if p == nil {
			continue
		}
		if p.Birthday == nil || !p.Birthday.IsValid() {
			s.Unknown++
			continue
		}
		s.ByMonth[p.Birthday.Month-1]++
	}
	return s
}

// Months returns the twelve months in calendar order with their counts.
func (s BirthdayStats) Months() []MonthCount {
	out := make([]MonthCount, 0, len(s.ByMonth))
	for i, n := range s.ByMonth {
		out = append(out, MonthCount{Month: time.Month(i + 1), Count: n})
	}
	return out
}

// Total is the number of persons with a known birthday.
func (s BirthdayStats) Total() int {
	total := 0
	for _, n := range s.ByMonth {
		total += n
	}
	return total
}

// Max is the highest monthly count.
func (s BirthdayStats) Max() int {
	m := 0
	for _, n := range s.ByMonth {
		m = max(m, n)
	}
	return m
}
