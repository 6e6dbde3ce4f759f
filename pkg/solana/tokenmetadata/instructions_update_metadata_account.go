package tokenmetadata

import (
	"crypto/ed25519"

	bin "github.com/gagliardetto/binary"

	"github.com/code-payments/metadata-cpi/pkg/solana"
)

type UpdateMetadataAccountInstructionArgs struct {
	Data                *Data
	UpdateAuthority     ed25519.PublicKey
	PrimarySaleHappened *bool
}

func (args *UpdateMetadataAccountInstructionArgs) MarshalWithEncoder(encoder *bin.Encoder) error {
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
	return putOptionalBool(encoder, args.PrimarySaleHappened)
}

func (args *UpdateMetadataAccountInstructionArgs) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	hasData, err := decoder.ReadOption()
	if err != nil {
		return err
	}
	args.Data = nil
	if hasData {
		args.Data = new(Data)
		if err = args.Data.UnmarshalWithDecoder(decoder); err != nil {
			return err
		}
	}
	if args.UpdateAuthority, err = getOptionalKey(decoder); err != nil {
		return err
	}
	args.PrimarySaleHappened, err = getOptionalBool(decoder)
	return err
}

type UpdateMetadataAccountInstructionAccounts struct {
	Metadata        ed25519.PublicKey
	UpdateAuthority ed25519.PublicKey
}

// NewUpdateMetadataAccountInstruction updates a metadata account.
//
// Accounts expected:
//
//  0. `[writable]` Metadata account
//  1. `[signer]` Update authority key
func NewUpdateMetadataAccountInstruction(
	accounts *UpdateMetadataAccountInstructionAccounts,
	args *UpdateMetadataAccountInstructionArgs,
) solana.Instruction {
	return solana.Instruction{
		Program: ProgramKey,

		// Instruction args
		Data: marshalInstructionData(InstructionTypeUpdateMetadataAccount, args),

		// Instruction accounts
		Accounts: updateMetadataAccountMetas(accounts.Metadata, accounts.UpdateAuthority),
	}
}

func updateMetadataAccountMetas(metadata, updateAuthority ed25519.PublicKey) []solana.AccountMeta {
	return []solana.AccountMeta{
		{
			PublicKey:  metadata,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  updateAuthority,
			IsWritable: false,
			IsSigner:   true,
		},
	}
}
