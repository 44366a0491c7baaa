package models

import "time"

type Metric string

const (
	MetricWeight        Metric = "weight"
	MetricBloodPressure Metric = "blood-pressure"
	MetricWater         Metric = "water"
	MetricSleep         Metric = "sleep"
)

func SupportedMetrics() []Metric {
	return []Metric{MetricWeight, MetricBloodPressure, MetricWater, MetricSleep}
}

// MetricValueKind selects the parse rule applied to raw tracker input.
type MetricValueKind string

const (
	MetricValueDecimal MetricValueKind = "decimal"
	MetricValueCount   MetricValueKind = "count"
	MetricValueText    MetricValueKind = "text"
)

type MetricSpec struct {
	Metric Metric
	Unit   string
	Icon   string
	Kind   MetricValueKind
}

// MetricSpecs is the closed set of trackable vitals. The unit and parse rule
// of each metric never change at runtime.
func MetricSpecs() []MetricSpec {
	return []MetricSpec{
		{Metric: MetricWeight, Unit: "kg", Icon: "⚖️", Kind: MetricValueDecimal},
		{Metric: MetricBloodPressure, Unit: "mmHg", Icon: "❤️", Kind: MetricValueText},
		{Metric: MetricWater, Unit: "glasses", Icon: "💧", Kind: MetricValueCount},
		{Metric: MetricSleep, Unit: "hours", Icon: "🛌", Kind: MetricValueDecimal},
	}
}

func MetricSpecFor(metric Metric) (MetricSpec, bool) {
	for _, spec := range MetricSpecs() {
		if spec.Metric == metric {
			return spec, true
		}
	}
	return MetricSpec{}, false
}

type TrackingEntry struct {
	Metric      Metric    `json:"metric"`
	Value       string    `json:"value"`
	Unit        string    `json:"unit"`
	Icon        string    `json:"icon"`
	LastUpdated string    `json:"last_updated"`
	UpdatedAt   time.Time `json:"-"`
}

// SeedTrackingEntries returns the sample readings every fresh session starts
// with. Seed labels stay literal until the first write replaces them.
func SeedTrackingEntries() []TrackingEntry {
	return []TrackingEntry{
		{Metric: MetricWeight, Value: "65", Unit: "kg", Icon: "⚖️", LastUpdated: "2 days ago"},
		{Metric: MetricBloodPressure, Value: "110/70", Unit: "mmHg", Icon: "❤️", LastUpdated: "Yesterday"},
		{Metric: MetricWater, Value: "6", Unit: "glasses", Icon: "💧", LastUpdated: "Today"},
		{Metric: MetricSleep, Value: "7.5", Unit: "hours", Icon: "🛌", LastUpdated: "Today"},
	}
}
