// Package formula computes infant-formula doses for children who have not
// started solid food yet.
package formula

import (
	"fmt"
	"math"
)

const (
	mlPerKg      = 150
	dailyCeiling = 1000
)

// Amount is a daily formula dose split across feedings, in ml.
// PerFeedingMax * FeedingsPerDay never exceeds DailyTotal.
type Amount struct {
	DailyTotal     int    `json:"daily_total" yaml:"daily_total"`
	PerFeedingMin  int    `json:"per_feeding_min" yaml:"per_feeding_min"`
	PerFeedingMax  int    `json:"per_feeding_max" yaml:"per_feeding_max"`
	FeedingsPerDay int    `json:"feedings_per_day" yaml:"feedings_per_day"`
	IntervalDesc   string `json:"interval_desc" yaml:"interval_desc"`
}

type bracket struct {
	throughMonths int
	feedings      int
	interval      string
}

// Ages count completed months, so a child reported as 1 month old is still
// inside the newborn bracket. The last two brackets are identical; the table
// has no separate schedule for infants past three months.
var brackets = []bracket{
	{1, 8, "3시간"},
	{2, 6, "4시간"},
	{3, 5, "약 5시간"},
	{math.MaxInt, 5, "약 5시간"},
}

// Dose returns the recommended formula amount for an infant of the given age
// and weight. Weight is expected to be positive.
func Dose(months int, weightKg float64) Amount {
	daily := min(int(math.Round(weightKg*mlPerKg)), dailyCeiling)

	b := brackets[len(brackets)-1]
	for _, candidate := range brackets {
		if months <= candidate.throughMonths {
			b = candidate
			break
		}
	}

	perMax := daily / b.feedings / 10 * 10
	perMin := max(perMax-20, 10)

	return Amount{
		DailyTotal:     daily,
		PerFeedingMin:  perMin,
		PerFeedingMax:  perMax,
		FeedingsPerDay: b.feedings,
		IntervalDesc:   b.interval,
	}
}

// Feeding is one entry of an example daily feeding schedule.
type Feeding struct {
	Time   string `json:"time" yaml:"time"`
	Amount string `json:"amount" yaml:"amount"`
}

// BuildSchedule spreads the feedings evenly over 24 hours. Newborn schedules
// (eight or more feeds) start at midnight, the rest at 06:00.
func BuildSchedule(a Amount) []Feeding {
	if a.FeedingsPerDay <= 0 {
		return nil
	}
	interval := 24 / a.FeedingsPerDay
	start := 6
	if a.FeedingsPerDay >= 8 {
		start = 0
	}

	schedule := make([]Feeding, a.FeedingsPerDay)
	for i := range schedule {
		hour := (start + i*interval) % 24
		schedule[i] = Feeding{
			Time:   fmt.Sprintf("%02d:00", hour),
			Amount: fmt.Sprintf("%d~%d", a.PerFeedingMin, a.PerFeedingMax),
		}
	}
	return schedule
}
