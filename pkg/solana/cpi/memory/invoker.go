// Package memory provides a cpi.Invoker that verifies and records invocations
// without executing them.
package memory

import (
	"context"
	"crypto/ed25519"
	"errors"
	"sync"

	"github.com/code-payments/metadata-cpi/pkg/solana"
	"github.com/code-payments/metadata-cpi/pkg/solana/cpi"
)

var errDeveloperInduced = errors.New("memory invoker: developer induced error")

// Invocation is a recorded call to InvokeSigned.
type Invocation struct {
	Instruction solana.Instruction
	Accounts    []cpi.AccountInfo
	SignerSeeds [][][]byte
}

// Invoker is an in memory cpi.Invoker used for tests and dry runs. Every
// invocation is checked with cpi.VerifyInvocation on behalf of the caller
// program before being recorded.
type Invoker struct {
	caller ed25519.PublicKey

	mu          sync.Mutex
	invocations []Invocation
	err         error
}

// NewInvoker returns an Invoker acting on behalf of the caller program.
func NewInvoker(caller ed25519.PublicKey) *Invoker {
	return &Invoker{
		caller: caller,
	}
}

// InvokeSigned implements cpi.Invoker.InvokeSigned.
func (i *Invoker) InvokeSigned(ctx context.Context, ix solana.Instruction, accounts []cpi.AccountInfo, signerSeeds [][][]byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if i.err != nil {
		return i.err
	}

	if err := cpi.VerifyInvocation(i.caller, ix, accounts, signerSeeds); err != nil {
		return err
	}

	i.invocations = append(i.invocations, Invocation{
		Instruction: cloneInstruction(ix),
		Accounts:    append([]cpi.AccountInfo(nil), accounts...),
		SignerSeeds: cloneSeeds(signerSeeds),
	})
	return nil
}

// Invocations returns the recorded invocations in the order they were made.
func (i *Invoker) Invocations() []Invocation {
	i.mu.Lock()
	defer i.mu.Unlock()

	return append([]Invocation(nil), i.invocations...)
}

// Reset clears all recorded invocations.
func (i *Invoker) Reset() {
	i.mu.Lock()
	i.invocations = nil
	i.mu.Unlock()
}

// InduceErrors makes subsequent invocations fail with a generic error.
func (i *Invoker) InduceErrors() {
	i.InduceError(errDeveloperInduced)
}

// InduceError makes subsequent invocations fail with err, simulating an error
// surfaced by the executed program.
func (i *Invoker) InduceError(err error) {
	i.mu.Lock()
	i.err = err
	i.mu.Unlock()
}

// StopInducingErrors undoes InduceErrors and InduceError.
func (i *Invoker) StopInducingErrors() {
	i.InduceError(nil)
}

func cloneInstruction(ix solana.Instruction) solana.Instruction {
	return solana.Instruction{
		Program:  ix.Program,
		Accounts: append([]solana.AccountMeta(nil), ix.Accounts...),
		Data:     append([]byte(nil), ix.Data...),
	}
}

func cloneSeeds(signerSeeds [][][]byte) [][][]byte {
	if signerSeeds == nil {
		return nil
	}

	cloned := make([][][]byte, len(signerSeeds))
	for i, seeds := range signerSeeds {
		cloned[i] = make([][]byte, len(seeds))
		for j, seed := range seeds {
			cloned[i][j] = append([]byte(nil), seed...)
		}
	}
	return cloned
}
