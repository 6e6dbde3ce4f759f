package tokenmetadata

import (
	"crypto/ed25519"

	bin "github.com/gagliardetto/binary"

	"github.com/code-payments/metadata-cpi/pkg/solana"
)

// CreateMasterEditionInstructionArgs configures the maximum number of
// editions that can be printed. A nil MaxSupply allows unlimited prints.
type CreateMasterEditionInstructionArgs struct {
	MaxSupply *uint64
}

func (args *CreateMasterEditionInstructionArgs) MarshalWithEncoder(encoder *bin.Encoder) error {
	return putOptionalUint64(encoder, args.MaxSupply)
}

func (args *CreateMasterEditionInstructionArgs) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	args.MaxSupply, err = getOptionalUint64(decoder)
	return err
}

type CreateMasterEditionInstructionAccounts struct {
	Edition         ed25519.PublicKey
	Mint            ed25519.PublicKey
	UpdateAuthority ed25519.PublicKey
	MintAuthority   ed25519.PublicKey
	Payer           ed25519.PublicKey
	Metadata        ed25519.PublicKey
}

// NewCreateMasterEditionInstruction creates a master edition using the
// deprecated instruction that leaves the metadata account untouched.
//
// Accounts expected:
//
//  0. `[writable]` Unallocated edition account with address as pda of ['metadata', program id, mint, 'edition']
//  1. `[writable]` Metadata mint
//  2. `[signer]` Update authority
//  3. `[signer]` Mint authority on the metadata's mint
//  4. `[signer, writable]` Payer
//  5. `[]` Metadata account
//  6. `[]` Token program
//  7. `[]` System program
//  8. `[]` Rent info
func NewCreateMasterEditionInstruction(
	accounts *CreateMasterEditionInstructionAccounts,
	args *CreateMasterEditionInstructionArgs,
) solana.Instruction {
	return solana.Instruction{
		Program: ProgramKey,

		// Instruction args
		Data: marshalInstructionData(InstructionTypeCreateMasterEdition, args),

		// Instruction accounts
		Accounts: createMasterEditionMetas(
			accounts.Edition,
			accounts.Mint,
			accounts.UpdateAuthority,
			accounts.MintAuthority,
			accounts.Payer,
			accounts.Metadata,
			false,
		),
	}
}

func createMasterEditionMetas(
	edition, mint, updateAuthority, mintAuthority, payer, metadata ed25519.PublicKey,
	isMetadataWritable bool,
) []solana.AccountMeta {
	return []solana.AccountMeta{
		{
			PublicKey:  edition,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  mint,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  updateAuthority,
			IsWritable: false,
			IsSigner:   true,
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
			PublicKey:  metadata,
			IsWritable: isMetadataWritable,
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
	}
}
