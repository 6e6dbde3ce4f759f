package tokenmetadata

import (
	"crypto/ed25519"

	"github.com/code-payments/metadata-cpi/pkg/solana"
)

type ConvertMasterEditionV1ToV2InstructionAccounts struct {
	MasterEdition ed25519.PublicKey
	OneTimeAuth   ed25519.PublicKey
	PrintingMint  ed25519.PublicKey
}

// NewConvertMasterEditionV1ToV2Instruction migrates a v1 master edition once
// its printing and one time auth mints have no outstanding supply.
//
// Accounts expected:
//
//  0. `[writable]` Master Record Edition V1 (pda of ['metadata', program id, master metadata mint id, 'edition'])
//  1. `[writable]` One time authorization mint
//  2. `[writable]` Printing mint
func NewConvertMasterEditionV1ToV2Instruction(accounts *ConvertMasterEditionV1ToV2InstructionAccounts) solana.Instruction {
	return solana.Instruction{
		Program: ProgramKey,

		// Instruction args
		Data: marshalInstructionData(InstructionTypeConvertMasterEditionV1ToV2, nil),

		// Instruction accounts
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.MasterEdition,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.OneTimeAuth,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.PrintingMint,
				IsWritable: true,
				IsSigner:   false,
			},
		},
	}
}
