package wrapper

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/metadata-cpi/pkg/config"
	"github.com/code-payments/metadata-cpi/pkg/config/memory"
)

// testValueConfig walks a wrapper through default, override, error, cleared and
// unsupported states.
func testValueConfig[T any](t *testing.T, newConfig func(config.Config, T) config.Value[T], defaultValue, overrideValue T, overrideRaw interface{}) {
	ctx := context.Background()
	mock := memory.NewConfig(nil)
	wrapper := newConfig(mock, defaultValue)

	// Return the default value when no override is set
	val, err := wrapper.GetSafe(ctx)
	require.NoError(t, err)
	assert.Equal(t, defaultValue, val)
	assert.Equal(t, defaultValue, wrapper.Get(ctx))

	// The overridden value is returned when set
	mock.SetValue(overrideRaw)
	val, err = wrapper.GetSafe(ctx)
	require.NoError(t, err)
	assert.Equal(t, overrideValue, val)
	assert.Equal(t, overrideValue, wrapper.Get(ctx))

	// The last observed value is returned on error
	mock.InduceErrors()
	val, err = wrapper.GetSafe(ctx)
	require.Error(t, err)
	assert.Equal(t, overrideValue, val)
	assert.Equal(t, overrideValue, wrapper.Get(ctx))

	// The default value is returned when the override no longer has a value
	mock.StopInducingErrors()
	mock.ClearValue()
	val, err = wrapper.GetSafe(ctx)
	require.NoError(t, err)
	assert.Equal(t, defaultValue, val)

	// Unsupported source types keep the last known value
	mock.SetValue(struct{}{})
	val, err = wrapper.GetSafe(ctx)
	assert.Equal(t, ErrUnsuportedConversion, err)
	assert.Equal(t, defaultValue, val)
}

func TestStringConfig(t *testing.T) {
	testValueConfig(t, NewStringConfig, "https://api.mainnet-beta.solana.com", "http://localhost:8899", []byte("http://localhost:8899"))
	testValueConfig(t, NewStringConfig, "confirmed", "finalized", "finalized")
}

func TestUint64Config(t *testing.T) {
	testValueConfig(t, NewUint64Config, uint64(3), uint64(10), []byte("10"))
	testValueConfig(t, NewUint64Config, uint64(3), uint64(7), uint64(7))
	testValueConfig(t, NewUint64Config, uint64(3), uint64(8), uint(8))
}

func TestFloat64Config(t *testing.T) {
	testValueConfig(t, NewFloat64Config, 5.0, 0.5, []byte("0.5"))
	testValueConfig(t, NewFloat64Config, 5.0, 12.5, 12.5)
}

func TestDurationConfig(t *testing.T) {
	testValueConfig(t, NewDurationConfig, 30*time.Second, 90*time.Second, []byte("1m30s"))
	testValueConfig(t, NewDurationConfig, 30*time.Second, time.Minute, time.Minute)
}

func TestParseErrorKeepsLastValue(t *testing.T) {
	ctx := context.Background()
	mock := memory.NewConfig([]byte("4"))
	wrapper := NewUint64Config(mock, 1)

	assert.EqualValues(t, 4, wrapper.Get(ctx))

	mock.SetValue([]byte("not a number"))
	val, err := wrapper.GetSafe(ctx)
	assert.Error(t, err)
	assert.EqualValues(t, 4, val)
}

func TestShutdown(t *testing.T) {
	mock := memory.NewConfig([]byte("value"))
	wrapper := NewStringConfig(mock, "default")
	wrapper.Shutdown()

	_, err := mock.Get(context.Background())
	assert.Equal(t, config.ErrShutdown, err)
}
