package tokenmetadata

import (
	"crypto/ed25519"

	"github.com/code-payments/metadata-cpi/pkg/solana"
)

type RevokeCollectionAuthorityInstructionAccounts struct {
	CollectionAuthorityRecord ed25519.PublicKey
	DelegateAuthority         ed25519.PublicKey
	UpdateAuthority           ed25519.PublicKey
	Metadata                  ed25519.PublicKey
	Mint                      ed25519.PublicKey
}

// NewRevokeCollectionAuthorityInstruction closes a collection authority
// record.
//
// Accounts expected:
//
//  0. `[writable]` Collection authority record pda
//  1. `[]` Delegated collection authority
//  2. `[signer, writable]` Update authority
//  3. `[]` Metadata account
//  4. `[]` Mint of metadata
func NewRevokeCollectionAuthorityInstruction(accounts *RevokeCollectionAuthorityInstructionAccounts) solana.Instruction {
	return solana.Instruction{
		Program: ProgramKey,

		// Instruction args
		Data: marshalInstructionData(InstructionTypeRevokeCollectionAuthority, nil),

		// Instruction accounts
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.CollectionAuthorityRecord,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.DelegateAuthority,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.UpdateAuthority,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.Metadata,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Mint,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}
