package wrapper

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/code-payments/metadata-cpi/pkg/config"
)

// ErrUnsuportedConversion indicates the wrapper does not implement conversion from the source type
var ErrUnsuportedConversion = errors.New("config: wrapper conversion from source type not implemented")

// converter turns a raw config value into T. ok is false when the raw value
// has an unsupported type.
type converter[T any] func(raw interface{}) (value T, ok bool, err error)

type valueConfig[T any] struct {
	override     config.Config
	defaultValue T
	convert      converter[T]

	stateMu   sync.RWMutex
	lastValue T
}

func newValueConfig[T any](override config.Config, defaultValue T, convert converter[T]) config.Value[T] {
	return &valueConfig[T]{
		override:     override,
		defaultValue: defaultValue,
		convert:      convert,
		lastValue:    defaultValue,
	}
}

// GetSafe gets a config value and propagates any errors that arise. A best-effort
// attempt is made to return the last known value
func (c *valueConfig[T]) GetSafe(ctx context.Context) (T, error) {
	raw, err := c.override.Get(ctx)

	c.stateMu.Lock()
	defer c.stateMu.Unlock()

	if err == config.ErrNoValue {
		c.lastValue = c.defaultValue
		return c.defaultValue, nil
	} else if err != nil {
		return c.lastValue, err
	}

	value, ok, err := c.convert(raw)
	if !ok {
		return c.lastValue, ErrUnsuportedConversion
	} else if err != nil {
		return c.lastValue, err
	}

	c.lastValue = value
	return value, nil
}

// Get is a wrapper for GetSafe that ignores the returned error
func (c *valueConfig[T]) Get(ctx context.Context) T {
	val, _ := c.GetSafe(ctx)
	return val
}

// Shutdown signals the config to stop all underlying resources
func (c *valueConfig[T]) Shutdown() {
	c.override.Shutdown()
}

// NewStringConfig returns a new string config utility wrapper
func NewStringConfig(override config.Config, defaultValue string) config.String {
	return newValueConfig(override, defaultValue, func(raw interface{}) (string, bool, error) {
		switch typed := raw.(type) {
		case []byte:
			return string(typed), true, nil
		case string:
			return typed, true, nil
		}
		return "", false, nil
	})
}

// NewUint64Config returns a new uint64 config utility wrapper
func NewUint64Config(override config.Config, defaultValue uint64) config.Uint64 {
	return newValueConfig(override, defaultValue, func(raw interface{}) (uint64, bool, error) {
		switch typed := raw.(type) {
		case []byte:
			value, err := strconv.ParseUint(string(typed), 10, 64)
			return value, true, err
		case uint64:
			return typed, true, nil
		case uint:
			return uint64(typed), true, nil
		}
		return 0, false, nil
	})
}

// NewFloat64Config returns a new float64 config utility wrapper
func NewFloat64Config(override config.Config, defaultValue float64) config.Float64 {
	return newValueConfig(override, defaultValue, func(raw interface{}) (float64, bool, error) {
		switch typed := raw.(type) {
		case []byte:
			value, err := strconv.ParseFloat(string(typed), 64)
			return value, true, err
		case float64:
			return typed, true, nil
		}
		return 0, false, nil
	})
}

// NewDurationConfig returns a new time.Duration config utility wrapper
func NewDurationConfig(override config.Config, defaultValue time.Duration) config.Duration {
	return newValueConfig(override, defaultValue, func(raw interface{}) (time.Duration, bool, error) {
		switch typed := raw.(type) {
		case []byte:
			value, err := time.ParseDuration(string(typed))
			return value, true, err
		case time.Duration:
			return typed, true, nil
		}
		return 0, false, nil
	})
}
