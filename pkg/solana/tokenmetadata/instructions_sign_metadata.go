package tokenmetadata

import (
	"crypto/ed25519"

	"github.com/code-payments/metadata-cpi/pkg/solana"
)

type SignMetadataInstructionAccounts struct {
	Metadata ed25519.PublicKey
	Creator  ed25519.PublicKey
}

// NewSignMetadataInstruction marks the signing creator as verified.
//
// Accounts expected:
//
//  0. `[writable]` Metadata
//  1. `[signer]` Creator
func NewSignMetadataInstruction(accounts *SignMetadataInstructionAccounts) solana.Instruction {
	return solana.Instruction{
		Program: ProgramKey,

		// Instruction args
		Data: marshalInstructionData(InstructionTypeSignMetadata, nil),

		// Instruction accounts
		Accounts: creatorVerificationMetas(accounts.Metadata, accounts.Creator),
	}
}

func creatorVerificationMetas(metadata, creator ed25519.PublicKey) []solana.AccountMeta {
	return []solana.AccountMeta{
		{
			PublicKey:  metadata,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  creator,
			IsWritable: false,
			IsSigner:   true,
		},
	}
}
