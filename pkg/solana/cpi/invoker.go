// Package cpi provides the primitive through which an instruction of an
// external program is executed on behalf of a calling program.
package cpi

import (
	"context"
	"crypto/ed25519"

	"github.com/code-payments/metadata-cpi/pkg/solana"
)

// AccountInfo is the calling program's view of an account it hands to an
// invocation. The flags describe the privileges the caller holds, which an
// instruction may use but never exceed.
type AccountInfo struct {
	PublicKey  ed25519.PublicKey
	IsSigner   bool
	IsWritable bool
}

// NewAccountInfo returns a writable AccountInfo.
func NewAccountInfo(pub ed25519.PublicKey, isSigner bool) AccountInfo {
	return AccountInfo{
		PublicKey:  pub,
		IsSigner:   isSigner,
		IsWritable: true,
	}
}

// NewReadonlyAccountInfo returns a readonly AccountInfo.
func NewReadonlyAccountInfo(pub ed25519.PublicKey, isSigner bool) AccountInfo {
	return AccountInfo{
		PublicKey: pub,
		IsSigner:  isSigner,
	}
}

// Invoker executes instructions of external programs.
type Invoker interface {
	// InvokeSigned executes ix using accounts, which must include every
	// account ix references. Each entry of signerSeeds is the seed set of a
	// program derived address of the caller that signs the invocation.
	//
	// Errors returned by the executed program are returned as is.
	InvokeSigned(ctx context.Context, ix solana.Instruction, accounts []AccountInfo, signerSeeds [][][]byte) error
}
