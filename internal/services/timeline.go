package services

import (
	"math"
	"time"

	"github.com/pregbuddy/pregbuddy/internal/models"
)

const (
	// GestationWeeks is the fixed full-term length used by every conversion.
	GestationWeeks = 40
	GestationDays  = GestationWeeks * 7
)

const (
	TrimesterFirst  = "First Trimester"
	TrimesterSecond = "Second Trimester"
	TrimesterThird  = "Third Trimester"
)

type Progress struct {
	Percentage float64 `json:"percentage"`
	Trimester  string  `json:"trimester"`
}

// DeriveProgress computes elapsed-term percentage and trimester from the due
// date. It is pure and must be re-derived on every read; the result drifts as
// "now" advances. A zero due date means the due date is unknown.
func DeriveProgress(dueDate time.Time, now time.Time) Progress {
	if dueDate.IsZero() {
		return Progress{Percentage: 0, Trimester: TrimesterFirst}
	}

	daysRemaining := math.Floor(dueDate.Sub(now).Hours() / 24)
	daysPassed := GestationDays - daysRemaining

	percentage := daysPassed / GestationDays * 100
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}

	return Progress{Percentage: percentage, Trimester: TrimesterForPercentage(percentage)}
}

// TrimesterForPercentage classifies elapsed-term percentage into a trimester.
// Bands are inclusive at the lower bound: 33.3 is already the second
// trimester and 66.7 the third.
func TrimesterForPercentage(percentage float64) string {
	switch {
	case percentage >= 66.7:
		return TrimesterThird
	case percentage >= 33.3:
		return TrimesterSecond
	default:
		return TrimesterFirst
	}
}

// WeekFromDueDate converts a due date into the current gestational week.
//
// Note the asymmetry with DueDateFromWeek: this direction rounds the
// remaining distance up to whole weeks, so the two conversions are not exact
// inverses and a round trip may drift by one week. That behavior is kept on
// purpose.
func WeekFromDueDate(dueDate time.Time, now time.Time) int {
	diffWeeks := int(math.Ceil(dueDate.Sub(now).Hours() / 24 / 7))
	return models.ClampPregnancyWeek(GestationWeeks - diffWeeks)
}

// DueDateFromWeek projects the due date from a known gestational week.
func DueDateFromWeek(week int, now time.Time) time.Time {
	remainingWeeks := GestationWeeks - week
	return now.AddDate(0, 0, remainingWeeks*7)
}

// NearestMilestone picks the table entry whose week is closest to the given
// week. Ties keep the earlier entry; the reduce is stable from the first
// element. Returns false only for an empty table.
func NearestMilestone(week int, table []models.Milestone) (models.Milestone, bool) {
	if len(table) == 0 {
		return models.Milestone{}, false
	}

	closest := table[0]
	for _, candidate := range table[1:] {
		if absInt(candidate.Week-week) < absInt(closest.Week-week) {
			closest = candidate
		}
	}
	return closest, true
}

func absInt(value int) int {
	if value < 0 {
		return -value
	}
	return value
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}
