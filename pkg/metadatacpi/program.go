// Package metadatacpi exposes the token metadata program's instructions as
// calls a program can issue through a cpi.Context. Each call builds the
// instruction from the context's accounts and hands it, together with the
// accounts and signer seeds, to the context's invoker.
package metadatacpi

import (
	"crypto/ed25519"

	"github.com/code-payments/metadata-cpi/pkg/solana/cpi"
	"github.com/code-payments/metadata-cpi/pkg/solana/tokenmetadata"
)

const (
	Prefix               = tokenmetadata.Prefix
	Edition              = tokenmetadata.Edition
	EditionMarkerBitSize = tokenmetadata.EditionMarkerBitSize
)

var (
	ProgramKey = tokenmetadata.ProgramKey
)

func optionalAccount(accounts []cpi.AccountInfo, info *cpi.AccountInfo) []cpi.AccountInfo {
	if info == nil {
		return accounts
	}
	return append(accounts, *info)
}

func optionalKey(info *cpi.AccountInfo) ed25519.PublicKey {
	if info == nil {
		return nil
	}
	return info.PublicKey
}
