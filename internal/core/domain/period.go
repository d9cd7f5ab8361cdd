package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Granularity is the size of an aggregation bucket.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// ParseGranularity maps user input to a Granularity. Anything unrecognised is a month.
func ParseGranularity(s string) Granularity {
	switch Granularity(s) {
	case GranularityDay, GranularityWeek, GranularityYear:
		return Granularity(s)
	default:
		return GranularityMonth
	}
}

// PeriodKey identifies one bucket. Each granularity has its own variant with named fields.
type PeriodKey interface {
	Granularity() Granularity
	// Period is the sortable textual key, e.g. "2024-03" or "2024-W11".
	Period() string
	// CalendarYear is the year embedded in the key (the ISO year for weeks).
	CalendarYear() int
	// SamePeriod groups periods for historical comparison: the month number for months,
	// the week number for weeks, the weekday for days and a single group for years.
	SamePeriod() int
	Label() string
	CompareLabel() string
}

// DayKey is a calendar day.
type DayKey struct {
	Year    int
	Month   time.Month
	Day     int
	Weekday time.Weekday
}

func (k DayKey) Granularity() Granularity { return GranularityDay }
func (k DayKey) Period() string           { return fmt.Sprintf("%04d-%02d-%02d", k.Year, int(k.Month), k.Day) }
func (k DayKey) CalendarYear() int        { return k.Year }
func (k DayKey) SamePeriod() int          { return int(k.Weekday) }
func (k DayKey) Label() string            { return k.Period() }
func (k DayKey) CompareLabel() string     { return k.Weekday.String() }

// WeekKey is an ISO-8601 week.
type WeekKey struct {
	Year int
	Week int
}

func (k WeekKey) Granularity() Granularity { return GranularityWeek }
func (k WeekKey) Period() string           { return fmt.Sprintf("%04d-W%02d", k.Year, k.Week) }
func (k WeekKey) CalendarYear() int        { return k.Year }
func (k WeekKey) SamePeriod() int          { return k.Week }
func (k WeekKey) Label() string            { return fmt.Sprintf("Week %d, %d", k.Week, k.Year) }
func (k WeekKey) CompareLabel() string     { return fmt.Sprintf("Week %d", k.Week) }

// MonthKey is a calendar month.
type MonthKey struct {
	Year  int
	Month time.Month
}

func (k MonthKey) Granularity() Granularity { return GranularityMonth }
func (k MonthKey) Period() string           { return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month)) }
func (k MonthKey) CalendarYear() int        { return k.Year }
func (k MonthKey) SamePeriod() int          { return int(k.Month) }
func (k MonthKey) Label() string            { return fmt.Sprintf("%s %d", k.Month, k.Year) }
func (k MonthKey) CompareLabel() string     { return k.Month.String() }

// YearKey is a calendar year.
type YearKey struct {
	Year int
}

func (k YearKey) Granularity() Granularity { return GranularityYear }
func (k YearKey) Period() string           { return fmt.Sprintf("%04d", k.Year) }
func (k YearKey) CalendarYear() int        { return k.Year }
func (k YearKey) SamePeriod() int          { return 0 }
func (k YearKey) Label() string            { return k.Period() }
func (k YearKey) CompareLabel() string     { return k.Period() }

// KeyFor returns the bucket of date under g.
func KeyFor(date time.Time, g Granularity) PeriodKey {
	switch g {
	case GranularityDay:
		return DayKey{Year: date.Year(), Month: date.Month(), Day: date.Day(), Weekday: date.Weekday()}
	case GranularityWeek:
		year, week := date.ISOWeek()
		return WeekKey{Year: year, Week: week}
	case GranularityYear:
		return YearKey{Year: date.Year()}
	default:
		return MonthKey{Year: date.Year(), Month: date.Month()}
	}
}

// PeriodRollup is the raw per-bucket total as produced by the summary views.
type PeriodRollup struct {
	Key              PeriodKey
	TotalIn          decimal.Decimal
	TotalOut         decimal.Decimal
	Balance          decimal.Decimal
	TransactionCount int
	PeriodStart      *time.Time
	PeriodEnd        *time.Time
}

// PeriodSummary is a rollup enriched with historical averages and labels.
type PeriodSummary struct {
	Key              PeriodKey       `json:"-"`
	Granularity      Granularity     `json:"granularity"`
	Period           string          `json:"period"`
	Year             int             `json:"year"`
	Month            *int            `json:"month,omitempty"`
	Week             *int            `json:"week,omitempty"`
	Day              *int            `json:"day,omitempty"`
	DayOfWeek        *int            `json:"dayOfWeek,omitempty"`
	TotalIn          decimal.Decimal `json:"totalIn"`
	TotalOut         decimal.Decimal `json:"totalOut"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transactionCount"`
	AvgIn            decimal.Decimal `json:"avgIn"`
	AvgOut           decimal.Decimal `json:"avgOut"`
	SamePeriodAvgIn  decimal.Decimal `json:"samePeriodAvgIn"`
	SamePeriodAvgOut decimal.Decimal `json:"samePeriodAvgOut"`
	Label            string          `json:"label"`
	CompareLabel     string          `json:"compareLabel"`
	PeriodStart      *time.Time      `json:"periodStart,omitempty"`
	PeriodEnd        *time.Time      `json:"periodEnd,omitempty"`
}

// PeriodReport is the aggregator output. Warning is set when the summaries could not be read.
type PeriodReport struct {
	Granularity Granularity     `json:"granularity"`
	Periods     []PeriodSummary `json:"periods"`
	Warning     string          `json:"warning,omitempty"`
}

// CumulativePoint is the running income and expense total after one accounting date.
type CumulativePoint struct {
	Date          time.Time       `json:"date"`
	CumulativeIn  decimal.Decimal `json:"cumulativeIn"`
	CumulativeOut decimal.Decimal `json:"cumulativeOut"`
}

// Overview is the headline view of every stored transaction.
type Overview struct {
	TotalIn  decimal.Decimal   `json:"totalIn"`
	TotalOut decimal.Decimal   `json:"totalOut"`
	Balance  decimal.Decimal   `json:"balance"`
	Series   []CumulativePoint `json:"series"`
}
