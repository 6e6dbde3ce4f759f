package env

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/code-payments/metadata-cpi/pkg/config"
)

func TestConfig(t *testing.T) {
	const env = "ENV_CONFIG_TEST_VAR"

	c := NewConfig("env_config_test_var")

	t.Setenv(env, "value")
	v, err := c.Get(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []byte("value"), v)

	t.Setenv(env, "")
	v, err = c.Get(context.Background())
	assert.Nil(t, v)
	assert.Equal(t, config.ErrNoValue, err)
}

func TestTypedConfigs(t *testing.T) {
	ctx := context.Background()

	t.Setenv("ENV_CONFIG_TEST_DURATION", "45s")
	t.Setenv("ENV_CONFIG_TEST_UINT64", "9")

	assert.Equal(t, 45*time.Second, NewDurationConfig("ENV_CONFIG_TEST_DURATION", time.Second).Get(ctx))
	assert.EqualValues(t, 9, NewUint64Config("ENV_CONFIG_TEST_UINT64", 1).Get(ctx))
	assert.Equal(t, 2.5, NewFloat64Config("ENV_CONFIG_TEST_UNSET_FLOAT", 2.5).Get(ctx))
	assert.Equal(t, "default", NewStringConfig("ENV_CONFIG_TEST_UNSET_STRING", "default").Get(ctx))
}
