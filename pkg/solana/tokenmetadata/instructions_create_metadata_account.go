package tokenmetadata

import (
	"crypto/ed25519"

	bin "github.com/gagliardetto/binary"

	"github.com/code-payments/metadata-cpi/pkg/solana"
)

type CreateMetadataAccountInstructionArgs struct {
	Data      Data
	IsMutable bool
}

func (args *CreateMetadataAccountInstructionArgs) MarshalWithEncoder(encoder *bin.Encoder) error {
	if err := args.Data.MarshalWithEncoder(encoder); err != nil {
		return err
	}
	return encoder.WriteBool(args.IsMutable)
}

func (args *CreateMetadataAccountInstructionArgs) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	if err = args.Data.UnmarshalWithDecoder(decoder); err != nil {
		return err
	}
	args.IsMutable, err = decoder.ReadBool()
	return err
}

type CreateMetadataAccountInstructionAccounts struct {
	Metadata                ed25519.PublicKey
	Mint                    ed25519.PublicKey
	MintAuthority           ed25519.PublicKey
	Payer                   ed25519.PublicKey
	UpdateAuthority         ed25519.PublicKey
	UpdateAuthorityIsSigner bool
}

// NewCreateMetadataAccountInstruction creates a v1 metadata account.
//
// Accounts expected:
//
//  0. `[writable]` Metadata key (pda of ['metadata', program id, mint id])
//  1. `[]` Mint of token asset
//  2. `[signer]` Mint authority
//  3. `[signer, writable]` Payer
//  4. `[signer?]` Update authority info
//  5. `[]` System program
//  6. `[]` Rent info
func NewCreateMetadataAccountInstruction(
	accounts *CreateMetadataAccountInstructionAccounts,
	args *CreateMetadataAccountInstructionArgs,
) solana.Instruction {
	return solana.Instruction{
		Program: ProgramKey,

		// Instruction args
		Data: marshalInstructionData(InstructionTypeCreateMetadataAccount, args),

		// Instruction accounts
		Accounts: createMetadataAccountMetas(
			accounts.Metadata,
			accounts.Mint,
			accounts.MintAuthority,
			accounts.Payer,
			accounts.UpdateAuthority,
			accounts.UpdateAuthorityIsSigner,
		),
	}
}

func createMetadataAccountMetas(
	metadata, mint, mintAuthority, payer, updateAuthority ed25519.PublicKey,
	updateAuthorityIsSigner bool,
) []solana.AccountMeta {
	return []solana.AccountMeta{
		{
			PublicKey:  metadata,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  mint,
			IsWritable: false,
			IsSigner:   false,
		},
		{
			PublicKey:  mintAuthority,
			IsWritable: false,
			IsSigner:   true,
		},
		{
			PublicKey:  payer,
			IsWritable: true,
			IsSigner:   true,
		},
		{
			PublicKey:  updateAuthority,
			IsWritable: false,
			IsSigner:   updateAuthorityIsSigner,
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
}
