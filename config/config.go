// Package config reads cacher settings from a binding map keyed by the
// dotted names in configkeys.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/on-the-ground/cacher_go/cacher"
	"github.com/on-the-ground/cacher_go/cacher/memdbtable"
	"github.com/on-the-ground/cacher_go/configkeys"
	"github.com/on-the-ground/cacher_go/log"
	"github.com/on-the-ground/cacher_go/shared/helper"
	"go.uber.org/multierr"
)

// Backend names the Table implementation behind a GenericCacher.
type Backend string

const (
	BackendMap   Backend = "map"
	BackendMemDB Backend = "memdb"
)

var (
	ErrUnknownBackend  = errors.New("unknown table backend")
	ErrNegativeLatency = errors.New("negative latency")
)

type Config struct {
	// Latency is how long the demo computations sleep to look expensive.
	Latency  time.Duration
	Backend  Backend
	LogLevel log.LogLevel
}

// Default returns the settings used when a key is not bound.
func Default() Config {
	return Config{
		Latency:  300 * time.Millisecond,
		Backend:  BackendMap,
		LogLevel: log.LogInfo,
	}
}

// Load overlays bindings on Default. Every malformed key is reported; the
// returned Config is only meaningful when err is nil.
func Load(bindings map[string]any) (Config, error) {
	cfg := Default()
	var (
		backend string
		level   string
		errs    error
	)

	errs = multierr.Append(errs, lookup(bindings, configkeys.ConfigCacherComputationLatency, &cfg.Latency))
	if cfg.Latency < 0 {
		errs = multierr.Append(errs, fmt.Errorf("%s: %w: %s", configkeys.ConfigCacherComputationLatency, ErrNegativeLatency, cfg.Latency))
	}

	backend = string(cfg.Backend)
	errs = multierr.Append(errs, lookup(bindings, configkeys.ConfigCacherTableBackend, &backend))
	switch Backend(backend) {
	case BackendMap, BackendMemDB:
		cfg.Backend = Backend(backend)
	default:
		errs = multierr.Append(errs, fmt.Errorf("%s: %w: %q", configkeys.ConfigCacherTableBackend, ErrUnknownBackend, backend))
	}

	level = string(cfg.LogLevel)
	errs = multierr.Append(errs, lookup(bindings, configkeys.ConfigCacherLogLevel, &level))
	if l, err := log.ParseLevel(level); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("%s: %w", configkeys.ConfigCacherLogLevel, err))
	} else {
		cfg.LogLevel = l
	}

	return cfg, errs
}

// lookup copies bindings[key] into dst when it is bound and has dst's type.
func lookup[T any](bindings map[string]any, key string, dst *T) error {
	raw, ok := bindings[key]
	if !ok {
		return nil
	}
	v, err := helper.GetTypedValueOf[T](func() (any, error) {
		return raw, nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = v
	return nil
}

// TableOption returns the cacher option selecting the configured backend.
func TableOption[K comparable, V any](cfg Config) (cacher.Option, error) {
	switch cfg.Backend {
	case BackendMemDB:
		table, err := memdbtable.New[K, V]()
		if err != nil {
			return nil, err
		}
		return cacher.WithTable[K, V](table), nil
	case BackendMap, "":
		return cacher.WithTable[K, V](cacher.NewMapTable[K, V]()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
