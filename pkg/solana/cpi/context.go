package cpi

import (
	"bytes"
	"context"
	"crypto/ed25519"

	"github.com/mr-tron/base58/base58"
	"github.com/pkg/errors"

	"github.com/code-payments/metadata-cpi/pkg/solana"
)

// Context carries everything needed to invoke Program: the invoker, the typed
// set of accounts the instruction uses and the signer seeds of the caller.
type Context[T any] struct {
	Invoker     Invoker
	Program     ed25519.PublicKey
	Accounts    T
	SignerSeeds [][][]byte
}

// NewContext returns a Context without signer seeds.
func NewContext[T any](invoker Invoker, program ed25519.PublicKey, accounts T) *Context[T] {
	return &Context[T]{
		Invoker:  invoker,
		Program:  program,
		Accounts: accounts,
	}
}

// WithSigner returns a copy of the Context that signs with signerSeeds.
func (c *Context[T]) WithSigner(signerSeeds [][][]byte) *Context[T] {
	cloned := *c
	cloned.SignerSeeds = signerSeeds
	return &cloned
}

// Invoke executes ix through the Context's invoker with the provided accounts
// and the Context's signer seeds. ix must target the Context's program.
func (c *Context[T]) Invoke(ctx context.Context, ix solana.Instruction, accounts ...AccountInfo) error {
	if !bytes.Equal(ix.Program, c.Program) {
		return errors.Wrapf(
			ErrIncorrectProgram,
			"instruction targets %s, context targets %s",
			base58.Encode(ix.Program),
			base58.Encode(c.Program),
		)
	}

	return c.Invoker.InvokeSigned(ctx, ix, accounts, c.SignerSeeds)
}
