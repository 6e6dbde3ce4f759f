package tokenmetadata

import (
	"crypto/ed25519"

	bin "github.com/gagliardetto/binary"

	"github.com/code-payments/metadata-cpi/pkg/solana"
)

type CreateMasterEditionV3InstructionArgs struct {
	MaxSupply *uint64
}

func (args *CreateMasterEditionV3InstructionArgs) MarshalWithEncoder(encoder *bin.Encoder) error {
	return putOptionalUint64(encoder, args.MaxSupply)
}

func (args *CreateMasterEditionV3InstructionArgs) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	args.MaxSupply, err = getOptionalUint64(decoder)
	return err
}

type CreateMasterEditionV3InstructionAccounts struct {
	Edition         ed25519.PublicKey
	Mint            ed25519.PublicKey
	UpdateAuthority ed25519.PublicKey
	MintAuthority   ed25519.PublicKey
	Payer           ed25519.PublicKey
	Metadata        ed25519.PublicKey
}

// NewCreateMasterEditionV3Instruction creates a master edition. Unlike the
// deprecated instruction, the metadata account is writable.
func NewCreateMasterEditionV3Instruction(
	accounts *CreateMasterEditionV3InstructionAccounts,
	args *CreateMasterEditionV3InstructionArgs,
) solana.Instruction {
	return solana.Instruction{
		Program: ProgramKey,

		// Instruction args
		Data: marshalInstructionData(InstructionTypeCreateMasterEditionV3, args),

		// Instruction accounts
		Accounts: createMasterEditionMetas(
			accounts.Edition,
			accounts.Mint,
			accounts.UpdateAuthority,
			accounts.MintAuthority,
			accounts.Payer,
			accounts.Metadata,
			true,
		),
	}
}
