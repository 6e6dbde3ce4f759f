package tokenmetadata

import (
	"crypto/ed25519"

	bin "github.com/gagliardetto/binary"

	"github.com/code-payments/metadata-cpi/pkg/solana"
)

type ApproveUseAuthorityInstructionArgs struct {
	NumberOfUses uint64
}

func (args *ApproveUseAuthorityInstructionArgs) MarshalWithEncoder(encoder *bin.Encoder) error {
	return encoder.WriteUint64(args.NumberOfUses, bin.LE)
}

func (args *ApproveUseAuthorityInstructionArgs) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	args.NumberOfUses, err = decoder.ReadUint64(bin.LE)
	return err
}

type ApproveUseAuthorityInstructionAccounts struct {
	UseAuthorityRecord ed25519.PublicKey
	Owner              ed25519.PublicKey
	Payer              ed25519.PublicKey
	User               ed25519.PublicKey
	OwnerTokenAccount  ed25519.PublicKey
	Metadata           ed25519.PublicKey
	Mint               ed25519.PublicKey
	Burner             ed25519.PublicKey
}

// NewApproveUseAuthorityInstruction delegates uses of an asset to a user by
// creating its use authority record.
//
// Accounts expected:
//
//  0. `[writable]` Use authority record pda
//  1. `[signer, writable]` Owner
//  2. `[signer, writable]` Payer
//  3. `[]` A use authority
//  4. `[writable]` Owned token account of the mint
//  5. `[]` Metadata account
//  6. `[]` Mint of metadata
//  7. `[]` Program as signer (burner)
//  8. `[]` Token program
//  9. `[]` System program
//  10. `[]` Rent info
func NewApproveUseAuthorityInstruction(
	accounts *ApproveUseAuthorityInstructionAccounts,
	args *ApproveUseAuthorityInstructionArgs,
) solana.Instruction {
	return solana.Instruction{
		Program: ProgramKey,

		// Instruction args
		Data: marshalInstructionData(InstructionTypeApproveUseAuthority, args),

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
				PublicKey:  accounts.Payer,
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
				PublicKey:  accounts.Burner,
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
