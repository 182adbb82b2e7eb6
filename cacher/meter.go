package cacher

import (
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// Stats reports how a cacher has been used so far.
type Stats struct {
	Hits   int
	Misses int

	// Last spans the most recent run of the computation.
	// It is the zero TimeSpan until the first miss.
	Last timespan.TimeSpan
}

// meter counts hits and misses and logs them. Every cacher embeds one.
type meter struct {
	id     string
	logger *zap.Logger
	stats  Stats
}

func newMeter(kind string, logger *zap.Logger) meter {
	id := uuid.New().String()
	logger = logger.With(zap.String("cacher_id", id), zap.String("kind", kind))
	logger.Debug("cacher created")
	return meter{id: id, logger: logger}
}

func (m *meter) hit(key any) {
	m.stats.Hits++
	m.logger.Debug("cache hit", zap.Any("key", key))
}

// miss runs compute and records how long it took.
func (m *meter) miss(key any, compute func()) {
	start := time.Now()
	compute()
	span := timespan.BetweenTimes(start, time.Now())

	m.stats.Misses++
	m.stats.Last = span
	m.logger.Debug("cache miss", zap.Any("key", key), zap.Duration("took", span.Duration()))
}

// ID identifies the cacher in log output.
func (m *meter) ID() string {
	return m.id
}

// Stats returns a snapshot of the hit and miss counters.
func (m *meter) Stats() Stats {
	return m.stats
}
