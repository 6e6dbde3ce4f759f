package rpc

import (
	"time"

	"github.com/code-payments/metadata-cpi/pkg/config"
	"github.com/code-payments/metadata-cpi/pkg/config/env"
	"github.com/code-payments/metadata-cpi/pkg/config/memory"
	"github.com/code-payments/metadata-cpi/pkg/config/wrapper"
	"github.com/code-payments/metadata-cpi/pkg/solana"
)

const (
	envConfigPrefix = "CPI_RPC_INVOKER_"

	EndpointConfigEnvName = envConfigPrefix + "ENDPOINT"
	defaultEndpoint       = string(solana.EnvironmentLocal)

	CommitmentConfigEnvName = envConfigPrefix + "COMMITMENT"
	defaultCommitment       = "confirmed"

	ConfirmationTimeoutConfigEnvName = envConfigPrefix + "CONFIRMATION_TIMEOUT"
	defaultConfirmationTimeout       = 30 * time.Second

	MaxSubmitAttemptsConfigEnvName = envConfigPrefix + "MAX_SUBMIT_ATTEMPTS"
	defaultMaxSubmitAttempts       = 3

	// Submissions per second, per target program. Zero or less disables the
	// limit.
	SubmitRateConfigEnvName = envConfigPrefix + "SUBMIT_RATE"
	defaultSubmitRate       = 10.0

	// Zero omits the corresponding compute budget instruction.
	ComputeUnitLimitConfigEnvName = envConfigPrefix + "COMPUTE_UNIT_LIMIT"
	defaultComputeUnitLimit       = 0

	ComputeUnitPriceConfigEnvName = envConfigPrefix + "COMPUTE_UNIT_PRICE"
	defaultComputeUnitPrice       = 0

	// When set, each transaction carries a memo of the prefix followed by the
	// invocation ID.
	MemoPrefixConfigEnvName = envConfigPrefix + "MEMO_PREFIX"
	defaultMemoPrefix       = ""
)

type conf struct {
	endpoint            config.String
	commitment          config.String
	confirmationTimeout config.Duration
	maxSubmitAttempts   config.Uint64
	submitRate          config.Float64
	computeUnitLimit    config.Uint64
	computeUnitPrice    config.Uint64
	memoPrefix          config.String
}

// ConfigProvider defines how config values are pulled
type ConfigProvider func() *conf

// WithEnvConfigs returns configuration pulled from environment variables
func WithEnvConfigs() ConfigProvider {
	return func() *conf {
		return &conf{
			endpoint:            env.NewStringConfig(EndpointConfigEnvName, defaultEndpoint),
			commitment:          env.NewStringConfig(CommitmentConfigEnvName, defaultCommitment),
			confirmationTimeout: env.NewDurationConfig(ConfirmationTimeoutConfigEnvName, defaultConfirmationTimeout),
			maxSubmitAttempts:   env.NewUint64Config(MaxSubmitAttemptsConfigEnvName, defaultMaxSubmitAttempts),
			submitRate:          env.NewFloat64Config(SubmitRateConfigEnvName, defaultSubmitRate),
			computeUnitLimit:    env.NewUint64Config(ComputeUnitLimitConfigEnvName, defaultComputeUnitLimit),
			computeUnitPrice:    env.NewUint64Config(ComputeUnitPriceConfigEnvName, defaultComputeUnitPrice),
			memoPrefix:          env.NewStringConfig(MemoPrefixConfigEnvName, defaultMemoPrefix),
		}
	}
}

type testOverrides struct {
	endpoint            string
	commitment          string
	confirmationTimeout time.Duration
	maxSubmitAttempts   uint64
	submitRate          float64
	computeUnitLimit    uint64
	computeUnitPrice    uint64
	memoPrefix          string
}

func withManualTestOverrides(overrides *testOverrides) ConfigProvider {
	return func() *conf {
		return &conf{
			endpoint:            wrapper.NewStringConfig(memory.NewConfig(overrides.endpoint), defaultEndpoint),
			commitment:          wrapper.NewStringConfig(memory.NewConfig(overrides.commitment), defaultCommitment),
			confirmationTimeout: wrapper.NewDurationConfig(memory.NewConfig(overrides.confirmationTimeout), defaultConfirmationTimeout),
			maxSubmitAttempts:   wrapper.NewUint64Config(memory.NewConfig(overrides.maxSubmitAttempts), defaultMaxSubmitAttempts),
			submitRate:          wrapper.NewFloat64Config(memory.NewConfig(overrides.submitRate), defaultSubmitRate),
			computeUnitLimit:    wrapper.NewUint64Config(memory.NewConfig(overrides.computeUnitLimit), defaultComputeUnitLimit),
			computeUnitPrice:    wrapper.NewUint64Config(memory.NewConfig(overrides.computeUnitPrice), defaultComputeUnitPrice),
			memoPrefix:          wrapper.NewStringConfig(memory.NewConfig(overrides.memoPrefix), defaultMemoPrefix),
		}
	}
}
