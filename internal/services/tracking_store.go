package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pregbuddy/pregbuddy/internal/models"
)

var (
	// ErrMetricNotFound is returned for keys outside the fixed metric set.
	ErrMetricNotFound = errors.New("unknown metric")
	// ErrInvalidValue is returned when raw input does not parse under the
	// metric's rule; the prior reading is left intact.
	ErrInvalidValue = errors.New("invalid value")
)

const justNowWindow = time.Minute

// TrackingStore keeps the latest reading per vital. Writes overwrite the
// prior reading entirely; no history is retained.
type TrackingStore struct {
	mu      sync.RWMutex
	entries map[models.Metric]models.TrackingEntry
}

func NewTrackingStore() *TrackingStore {
	entries := make(map[models.Metric]models.TrackingEntry, len(models.SupportedMetrics()))
	for _, entry := range models.SeedTrackingEntries() {
		entries[entry.Metric] = entry
	}
	return &TrackingStore{entries: entries}
}

// Entries returns all readings in the fixed metric order with refreshed
// relative-time labels.
func (store *TrackingStore) Entries(now time.Time) []models.TrackingEntry {
	store.mu.RLock()
	defer store.mu.RUnlock()

	result := make([]models.TrackingEntry, 0, len(store.entries))
	for _, spec := range models.MetricSpecs() {
		entry := store.entries[spec.Metric]
		entry.LastUpdated = relativeLabel(entry, now)
		result = append(result, entry)
	}
	return result
}

func (store *TrackingStore) ReadMetric(metric models.Metric, now time.Time) (models.TrackingEntry, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	entry, ok := store.entries[metric]
	if !ok {
		return models.TrackingEntry{}, ErrMetricNotFound
	}
	entry.LastUpdated = relativeLabel(entry, now)
	return entry, nil
}

// WriteMetric parses rawValue under the metric's declared rule and replaces
// the stored reading. A failed parse mutates nothing.
func (store *TrackingStore) WriteMetric(metric models.Metric, rawValue string, now time.Time) (models.TrackingEntry, error) {
	spec, ok := models.MetricSpecFor(metric)
	if !ok {
		return models.TrackingEntry{}, ErrMetricNotFound
	}

	value, err := parseMetricValue(spec.Kind, rawValue)
	if err != nil {
		return models.TrackingEntry{}, err
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	entry := store.entries[metric]
	entry.Value = value
	entry.LastUpdated = "just now"
	entry.UpdatedAt = now
	store.entries[metric] = entry
	return entry, nil
}

func parseMetricValue(kind models.MetricValueKind, rawValue string) (string, error) {
	trimmed := strings.TrimSpace(rawValue)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidValue)
	}

	switch kind {
	case models.MetricValueDecimal:
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || parsed < 0 {
			return "", fmt.Errorf("%w: expected a number, got %q", ErrInvalidValue, rawValue)
		}
		return strconv.FormatFloat(parsed, 'f', -1, 64), nil
	case models.MetricValueCount:
		parsed, err := strconv.Atoi(trimmed)
		if err != nil || parsed < 0 {
			return "", fmt.Errorf("%w: expected a count, got %q", ErrInvalidValue, rawValue)
		}
		return strconv.Itoa(parsed), nil
	default:
		return trimmed, nil
	}
}

func relativeLabel(entry models.TrackingEntry, now time.Time) string {
	if entry.UpdatedAt.IsZero() {
		// seeded readings keep their literal label
		return entry.LastUpdated
	}
	if now.Sub(entry.UpdatedAt) < justNowWindow {
		return "just now"
	}
	return humanize.RelTime(entry.UpdatedAt, now, "ago", "from now")
}
