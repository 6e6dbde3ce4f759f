package tokenmetadata

import (
	"crypto/ed25519"

	bin "github.com/gagliardetto/binary"

	"github.com/code-payments/metadata-cpi/pkg/solana"
)

type UtilizeInstructionArgs struct {
	NumberOfUses uint64
}

func (args *UtilizeInstructionArgs) MarshalWithEncoder(encoder *bin.Encoder) error {
	return encoder.WriteUint64(args.NumberOfUses, bin.LE)
}

func (args *UtilizeInstructionArgs) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	args.NumberOfUses, err = decoder.ReadUint64(bin.LE)
	return err
}

type UtilizeInstructionAccounts struct {
	Metadata     ed25519.PublicKey
	TokenAccount ed25519.PublicKey
	Mint         ed25519.PublicKey
	UseAuthority ed25519.PublicKey
	Owner        ed25519.PublicKey

	// Optional. Required when the use authority is a delegate.
	UseAuthorityRecord ed25519.PublicKey

	// Optional. Required when the uses method is burn.
	Burner ed25519.PublicKey
}

// NewUtilizeInstruction consumes uses of an asset.
//
// Accounts expected:
//
//  0. `[writable]` Metadata account
//  1. `[writable]` Token account of the asset
//  2. `[writable]` Mint of the metadata
//  3. `[signer, writable]` A use authority or the token owner
//  4. `[]` Owner of the token account
//  5. `[]` Token program
//  6. `[]` Associated token program
//  7. `[]` System program
//  8. `[]` Rent info
//  9. `[writable]` Optional use authority record pda
//  10. `[]` Optional burner pda
func NewUtilizeInstruction(
	accounts *UtilizeInstructionAccounts,
	args *UtilizeInstructionArgs,
) solana.Instruction {
	instructionAccounts := []solana.AccountMeta{
		{
			PublicKey:  accounts.Metadata,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.TokenAccount,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.Mint,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.UseAuthority,
			IsWritable: true,
			IsSigner:   true,
		},
		{
			PublicKey:  accounts.Owner,
			IsWritable: false,
			IsSigner:   false,
		},
		{
			PublicKey:  SPL_TOKEN_PROGRAM_ID,
			IsWritable: false,
			IsSigner:   false,
		},
		{
			PublicKey:  ASSOCIATED_TOKEN_PROGRAM_ID,
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
	}

	if accounts.UseAuthorityRecord != nil {
		instructionAccounts = append(instructionAccounts, solana.AccountMeta{
			PublicKey:  accounts.UseAuthorityRecord,
			IsWritable: true,
			IsSigner:   false,
		})
	}

	if accounts.Burner != nil {
		instructionAccounts = append(instructionAccounts, solana.AccountMeta{
			PublicKey:  accounts.Burner,
			IsWritable: false,
			IsSigner:   false,
		})
	}

	return solana.Instruction{
		Program: ProgramKey,

		// Instruction args
		Data: marshalInstructionData(InstructionTypeUtilize, args),

		// Instruction accounts
		Accounts: instructionAccounts,
	}
}
