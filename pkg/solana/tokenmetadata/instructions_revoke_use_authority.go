package tokenmetadata

import (
	"crypto/ed25519"

	"github.com/code-payments/metadata-cpi/pkg/solana"
)

type RevokeUseAuthorityInstructionAccounts struct {
	UseAuthorityRecord ed25519.PublicKey
	Owner              ed25519.PublicKey
	User               ed25519.PublicKey
	OwnerTokenAccount  ed25519.PublicKey
	Mint               ed25519.PublicKey
	Metadata           ed25519.PublicKey
}

// NewRevokeUseAuthorityInstruction closes a use authority record.
//
// Accounts expected:
//
//  0. `[writable]` Use authority record pda
//  1. `[signer, writable]` Owner
//  2. `[]` A use authority
//  3. `[writable]` Owned token account of the mint
//  4. `[]` Mint of metadata
//  5. `[]` Metadata account
//  6. `[]` Token program
//  7. `[]` System program
//  8. `[]` Rent info
func NewRevokeUseAuthorityInstruction(accounts *RevokeUseAuthorityInstructionAccounts) solana.Instruction {
	return solana.Instruction{
		Program: ProgramKey,

		// Instruction args
		Data: marshalInstructionData(InstructionTypeRevokeUseAuthority, nil),

		// Instruction accounts
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.UseAuthorityRecord,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Owner,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.User,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.OwnerTokenAccount,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Mint,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Metadata,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  SPL_TOKEN_PROGRAM_ID,
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
