package tokenmetadata

import (
	"crypto/ed25519"

	bin "github.com/gagliardetto/binary"

	"github.com/code-payments/metadata-cpi/pkg/solana"
)

type UpdateMetadataAccountV2InstructionArgs struct {
	Data                *DataV2
	UpdateAuthority     ed25519.PublicKey
	PrimarySaleHappened *bool
	IsMutable           *bool
}

func (args *UpdateMetadataAccountV2InstructionArgs) MarshalWithEncoder(encoder *bin.Encoder) error {
	if err := encoder.WriteOption(args.Data != nil); err != nil {
		return err
	}
	if args.Data != nil {
		if err := args.Data.MarshalWithEncoder(encoder); err != nil {
			return err
		}
	}
	if err := putOptionalKey(encoder, args.UpdateAuthority); err != nil {
		return err
	}
	if err := putOptionalBool(encoder, args.PrimarySaleHappened); err != nil {
		return err
	}
	return putOptionalBool(encoder, args.IsMutable)
}

func (args *UpdateMetadataAccountV2InstructionArgs) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	hasData, err := decoder.ReadOption()
	if err != nil {
		return err
	}
	args.Data = nil
	if hasData {
		args.Data = new(DataV2)
		if err = args.Data.UnmarshalWithDecoder(decoder); err != nil {
			return err
		}
	}
	if args.UpdateAuthority, err = getOptionalKey(decoder); err != nil {
		return err
	}
	if args.PrimarySaleHappened, err = getOptionalBool(decoder); err != nil {
		return err
	}
	args.IsMutable, err = getOptionalBool(decoder)
	return err
}

type UpdateMetadataAccountV2InstructionAccounts struct {
	Metadata        ed25519.PublicKey
	UpdateAuthority ed25519.PublicKey
}

// NewUpdateMetadataAccountV2Instruction updates a metadata account, including
// its collection, uses and mutability. The account layout matches the v1
// instruction.
func NewUpdateMetadataAccountV2Instruction(
	accounts *UpdateMetadataAccountV2InstructionAccounts,
	args *UpdateMetadataAccountV2InstructionArgs,
) solana.Instruction {
	return solana.Instruction{
		Program: ProgramKey,

		// Instruction args
		Data: marshalInstructionData(InstructionTypeUpdateMetadataAccountV2, args),

		// Instruction accounts
		Accounts: updateMetadataAccountMetas(accounts.Metadata, accounts.UpdateAuthority),
	}
}
