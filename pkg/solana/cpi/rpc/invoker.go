// Package rpc provides a cpi.Invoker that executes each invocation as its own
// transaction submitted over Solana JSON-RPC.
//
// Off-chain there is no calling program, so the invoker can only provide
// signatures for keypairs it holds. Invocations that rely on program derived
// signers are rejected.
package rpc

import (
	"context"
	"crypto/ed25519"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/mr-tron/base58/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	xrate "golang.org/x/time/rate"

	"github.com/code-payments/metadata-cpi/pkg/metrics"
	"github.com/code-payments/metadata-cpi/pkg/rate"
	"github.com/code-payments/metadata-cpi/pkg/retry"
	"github.com/code-payments/metadata-cpi/pkg/retry/backoff"
	"github.com/code-payments/metadata-cpi/pkg/solana"
	"github.com/code-payments/metadata-cpi/pkg/solana/computebudget"
	"github.com/code-payments/metadata-cpi/pkg/solana/cpi"
	"github.com/code-payments/metadata-cpi/pkg/solana/memo"
)

const (
	metricsStructName = "solana.cpi.rpc.invoker"

	invocationEventName          = "CpiInvocation"
	submissionDurationMetricName = "CpiInvocation.submission_duration"
	submissionAttemptsMetricName = "CpiInvocation.submission_attempts"
)

var (
	ErrProgramSignerUnsupported = errors.New("program derived signers cannot sign off-chain")
	ErrMissingKeypair           = errors.New("no keypair held for required signer")
	ErrConfirmationTimeout      = errors.New("transaction not confirmed in time")

	errNotConfirmed = errors.New("transaction not confirmed")
)

type invoker struct {
	log     *logrus.Entry
	conf    *conf
	client  solana.Client
	limiter rate.Limiter

	payer   ed25519.PrivateKey
	signers map[string]ed25519.PrivateKey

	submitBackoff backoff.Strategy
	pollInterval  time.Duration
}

// NewInvoker returns a cpi.Invoker that submits invocations to the configured
// endpoint in transactions paid for by payer. signers are the keypairs
// available to sign for instruction accounts, in addition to payer.
func NewInvoker(payer ed25519.PrivateKey, signers []ed25519.PrivateKey, configProvider ConfigProvider) cpi.Invoker {
	conf := configProvider()
	client := solana.New(conf.endpoint.Get(context.Background()))
	return newInvoker(client, payer, signers, conf)
}

func newInvoker(client solana.Client, payer ed25519.PrivateKey, signers []ed25519.PrivateKey, conf *conf) *invoker {
	held := make(map[string]ed25519.PrivateKey, len(signers)+1)
	held[string(payer.Public().(ed25519.PublicKey))] = payer
	for _, signer := range signers {
		held[string(signer.Public().(ed25519.PublicKey))] = signer
	}

	var limiter rate.Limiter = &rate.NoLimiter{}
	if submitRate := conf.submitRate.Get(context.Background()); submitRate > 0 {
		limiter = rate.NewLocalRateLimiter(xrate.Limit(submitRate))
	}

	return &invoker{
		log:     logrus.StandardLogger().WithField("type", "solana/cpi/rpc"),
		conf:    conf,
		client:  client,
		limiter: limiter,

		payer:   payer,
		signers: held,

		submitBackoff: backoff.BinaryExponential(time.Second),
		pollInterval:  solana.PollRate,
	}
}

// InvokeSigned implements cpi.Invoker.InvokeSigned.
//
// Failures of the executed program, whether reported by preflight simulation
// or by the confirmed transaction, are returned as a *solana.TransactionError.
func (i *invoker) InvokeSigned(ctx context.Context, ix solana.Instruction, accounts []cpi.AccountInfo, signerSeeds [][][]byte) (err error) {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, "InvokeSigned")
	defer tracer.End()
	defer func() {
		tracer.OnError(err)
	}()

	id := uuid.New()
	program := base58.Encode(ix.Program)
	log := i.log.WithFields(logrus.Fields{
		"method":     "InvokeSigned",
		"invocation": id.String(),
		"program":    program,
	})
	tracer.AddAttributes(map[string]interface{}{
		"invocation": id.String(),
		"program":    program,
	})

	if len(signerSeeds) > 0 {
		return ErrProgramSignerUnsupported
	}

	payer := i.payer.Public().(ed25519.PublicKey)
	if err := cpi.VerifyInvocation(payer, ix, accounts, nil); err != nil {
		return err
	}

	commitment, err := solana.CommitmentFromString(i.conf.commitment.Get(ctx))
	if err != nil {
		return errors.Wrap(err, "invalid commitment config")
	}

	txn := solana.NewTransaction(payer, i.envelope(ctx, id, ix)...)
	keys, err := i.keypairsFor(txn.RequiredSigners())
	if err != nil {
		return err
	}

	if err := i.limiter.Wait(ctx, program); err != nil {
		return errors.Wrap(err, "rate limited")
	}

	start := time.Now()
	sig, attempts, err := i.submit(ctx, &txn, keys, commitment)
	metrics.RecordCount(ctx, submissionAttemptsMetricName, uint64(attempts))
	log = log.WithFields(logrus.Fields{
		"signature": base58.Encode(sig[:]),
		"attempts":  attempts,
	})
	if err != nil {
		log.WithError(err).Warn("failure submitting transaction")
		i.recordInvocationEvent(ctx, id, program, sig, attempts, err)
		return err
	}

	status, err := i.waitForConfirmation(ctx, sig, commitment)
	metrics.RecordDuration(ctx, submissionDurationMetricName, time.Since(start))
	if err == nil && status.ErrorResult != nil {
		err = status.ErrorResult
	}

	i.recordInvocationEvent(ctx, id, program, sig, attempts, err)
	if err != nil {
		log.WithError(err).Warn("invocation failed")
		return err
	}

	log.Debug("invocation confirmed")
	return nil
}

// envelope surrounds ix with the configured compute budget and memo
// instructions.
func (i *invoker) envelope(ctx context.Context, id uuid.UUID, ix solana.Instruction) []solana.Instruction {
	var instructions []solana.Instruction

	if limit := i.conf.computeUnitLimit.Get(ctx); limit > 0 {
		if limit > math.MaxUint32 {
			limit = math.MaxUint32
		}
		instructions = append(instructions, computebudget.SetComputeUnitLimit(uint32(limit)))
	}
	if price := i.conf.computeUnitPrice.Get(ctx); price > 0 {
		instructions = append(instructions, computebudget.SetComputeUnitPrice(price))
	}

	instructions = append(instructions, ix)

	if prefix := i.conf.memoPrefix.Get(ctx); len(prefix) > 0 {
		instructions = append(instructions, memo.Instruction(prefix+id.String()))
	}

	return instructions
}

func (i *invoker) keypairsFor(required []ed25519.PublicKey) ([]ed25519.PrivateKey, error) {
	keys := make([]ed25519.PrivateKey, 0, len(required))
	for _, pub := range required {
		key, ok := i.signers[string(pub)]
		if !ok {
			return nil, errors.Wrap(ErrMissingKeypair, base58.Encode(pub))
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// submit signs txn against a recent blockhash and sends it. Expired blockhashes
// and transport failures are retried; program failures are not.
//
// The transaction is only re-signed once its blockhash has expired, so a send
// that landed despite a transport failure is never duplicated. Before resending
// after such a failure, the last signature is looked up and, if found, the
// transaction is considered submitted.
func (i *invoker) submit(ctx context.Context, txn *solana.Transaction, keys []ed25519.PrivateKey, commitment solana.Commitment) (solana.Signature, uint, error) {
	var (
		sig       solana.Signature
		signed    bool
		expired   bool
		maybeSent bool
	)

	attempts, err := retry.Retry(
		func() error {
			if maybeSent {
				statuses, err := i.client.GetSignatureStatuses([]solana.Signature{sig})
				if err != nil {
					return err
				}
				if len(statuses) > 0 && statuses[0] != nil {
					return nil
				}
			}

			if !signed || expired {
				blockhash, err := i.client.GetLatestBlockhash()
				if err != nil {
					return err
				}

				if !signed || blockhash != txn.Message.RecentBlockhash {
					txn.SetBlockhash(blockhash)
					if err := txn.Sign(keys...); err != nil {
						return err
					}
					copy(sig[:], txn.Signature())
					signed = true
				}
			}

			_, err := i.client.SubmitTransaction(*txn, commitment)

			var txErr *solana.TransactionError
			switch {
			case err == nil:
				return nil
			case errors.As(err, &txErr):
				if txErr.ErrorKey() == solana.TransactionErrorAlreadyProcessed {
					return nil
				}
				expired = txErr.ErrorKey() == solana.TransactionErrorBlockhashNotFound
				maybeSent = false
			default:
				expired = false
				maybeSent = true
			}
			return err
		},
		retry.RetriableIf(isRetriableSubmitError),
		retry.Context(ctx),
		retry.Limit(uint(i.conf.maxSubmitAttempts.Get(ctx))),
		retry.BackoffWithJitter(i.submitBackoff, 5*time.Second, 0.1),
	)
	return sig, attempts, err
}

func (i *invoker) waitForConfirmation(ctx context.Context, sig solana.Signature, commitment solana.Commitment) (*solana.SignatureStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, i.conf.confirmationTimeout.Get(ctx))
	defer cancel()

	var status *solana.SignatureStatus
	_, err := retry.Retry(
		func() error {
			statuses, err := i.client.GetSignatureStatuses([]solana.Signature{sig})
			if err != nil {
				return err
			}

			status = statuses[0]
			if status == nil {
				return solana.ErrSignatureNotFound
			}
			if status.ErrorResult == nil && !status.Reached(commitment) {
				return errNotConfirmed
			}
			return nil
		},
		retry.RetriableErrors(solana.ErrSignatureNotFound, errNotConfirmed),
		retry.Context(ctx),
		retry.Backoff(backoff.Constant(i.pollInterval), i.pollInterval),
	)
	if err == nil {
		return status, nil
	}

	if ctx.Err() != nil && (errors.Is(err, solana.ErrSignatureNotFound) || errors.Is(err, errNotConfirmed)) {
		return nil, errors.Wrap(ErrConfirmationTimeout, base58.Encode(sig[:]))
	}
	return nil, err
}

func (i *invoker) recordInvocationEvent(ctx context.Context, id uuid.UUID, program string, sig solana.Signature, attempts uint, err error) {
	kvPairs := map[string]interface{}{
		"invocation": id.String(),
		"program":    program,
		"signature":  base58.Encode(sig[:]),
		"attempts":   attempts,
		"success":    err == nil,
	}
	if err != nil {
		kvPairs["error"] = err.Error()
	}

	metrics.RecordEvent(ctx, invocationEventName, kvPairs)
}

func isRetriableSubmitError(err error) bool {
	var txErr *solana.TransactionError
	if errors.As(err, &txErr) {
		return txErr.ErrorKey() == solana.TransactionErrorBlockhashNotFound
	}

	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
