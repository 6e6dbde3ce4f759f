package tokenmetadata

import (
	"crypto/ed25519"

	bin "github.com/gagliardetto/binary"

	"github.com/code-payments/metadata-cpi/pkg/solana"
)

type CreateMetadataAccountV2InstructionArgs struct {
	Data      DataV2
	IsMutable bool
}

func (args *CreateMetadataAccountV2InstructionArgs) MarshalWithEncoder(encoder *bin.Encoder) error {
	if err := args.Data.MarshalWithEncoder(encoder); err != nil {
		return err
	}
	return encoder.WriteBool(args.IsMutable)
}

func (args *CreateMetadataAccountV2InstructionArgs) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	if err = args.Data.UnmarshalWithDecoder(decoder); err != nil {
		return err
	}
	args.IsMutable, err = decoder.ReadBool()
	return err
}

type CreateMetadataAccountV2InstructionAccounts struct {
	Metadata                ed25519.PublicKey
	Mint                    ed25519.PublicKey
	MintAuthority           ed25519.PublicKey
	Payer                   ed25519.PublicKey
	UpdateAuthority         ed25519.PublicKey
	UpdateAuthorityIsSigner bool
}

// NewCreateMetadataAccountV2Instruction creates a metadata account with
// collection and uses support. The account layout matches the v1 instruction.
func NewCreateMetadataAccountV2Instruction(
	accounts *CreateMetadataAccountV2InstructionAccounts,
	args *CreateMetadataAccountV2InstructionArgs,
) solana.Instruction {
	return solana.Instruction{
		Program: ProgramKey,

		// Instruction args
		Data: marshalInstructionData(InstructionTypeCreateMetadataAccountV2, args),

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
