package tokenmetadata

import (
	"crypto/ed25519"

	"github.com/code-payments/metadata-cpi/pkg/solana"
)

type ApproveCollectionAuthorityInstructionAccounts struct {
	CollectionAuthorityRecord ed25519.PublicKey
	NewCollectionAuthority    ed25519.PublicKey
	UpdateAuthority           ed25519.PublicKey
	Payer                     ed25519.PublicKey
	Metadata                  ed25519.PublicKey
	Mint                      ed25519.PublicKey
}

// NewApproveCollectionAuthorityInstruction delegates collection authority to
// a new key by creating its collection authority record.
//
// Accounts expected:
//
//  0. `[writable]` Collection authority record pda
//  1. `[]` A collection authority
//  2. `[signer, writable]` Update authority
//  3. `[signer, writable]` Payer
//  4. `[]` Collection metadata account
//  5. `[]` Mint of the collection metadata
//  6. `[]` System program
//  7. `[]` Rent info
func NewApproveCollectionAuthorityInstruction(accounts *ApproveCollectionAuthorityInstructionAccounts) solana.Instruction {
	return solana.Instruction{
		Program: ProgramKey,

		// Instruction args
		Data: marshalInstructionData(InstructionTypeApproveCollectionAuthority, nil),

		// Instruction accounts
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.CollectionAuthorityRecord,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.NewCollectionAuthority,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.UpdateAuthority,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.Payer,
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
			{
				PublicKey:  SYSTEM_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  SYSVAR_RENT_PUBKEY,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}
