package tokenmetadata

import (
	"crypto/ed25519"

	bin "github.com/gagliardetto/binary"

	"github.com/code-payments/metadata-cpi/pkg/solana"
)

type MintNewEditionFromMasterEditionViaTokenInstructionArgs struct {
	Edition uint64
}

func (args *MintNewEditionFromMasterEditionViaTokenInstructionArgs) MarshalWithEncoder(encoder *bin.Encoder) error {
	return encoder.WriteUint64(args.Edition, bin.LE)
}

func (args *MintNewEditionFromMasterEditionViaTokenInstructionArgs) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	args.Edition, err = decoder.ReadUint64(bin.LE)
	return err
}

type MintNewEditionFromMasterEditionViaTokenInstructionAccounts struct {
	NewMetadata                ed25519.PublicKey
	NewEdition                 ed25519.PublicKey
	MasterEdition              ed25519.PublicKey
	NewMint                    ed25519.PublicKey
	EditionMarkPda             ed25519.PublicKey
	NewMintAuthority           ed25519.PublicKey
	Payer                      ed25519.PublicKey
	TokenAccountOwner          ed25519.PublicKey
	TokenAccount               ed25519.PublicKey
	NewMetadataUpdateAuthority ed25519.PublicKey
	Metadata                   ed25519.PublicKey
}

// NewMintNewEditionFromMasterEditionViaTokenInstruction prints a new edition
// of a master edition, authorized by a holder of the master edition token.
//
// Accounts expected:
//
//  0. `[writable]` New metadata key (pda of ['metadata', program id, mint id])
//  1. `[writable]` New edition (pda of ['metadata', program id, mint id, 'edition'])
//  2. `[writable]` Master record edition (pda of ['metadata', program id, master metadata mint id, 'edition'])
//  3. `[writable]` Mint of new token
//  4. `[writable]` Edition pda to mark creation (pda of ['metadata', program id, master metadata mint id, 'edition', edition_number])
//  5. `[signer]` Mint authority of new mint
//  6. `[signer, writable]` Payer
//  7. `[signer]` Owner of token account containing master token
//  8. `[]` Token account containing the master token
//  9. `[]` Update authority info for new metadata
//  10. `[]` Master record metadata account
//  11. `[]` Token program
//  12. `[]` System program
//  13. `[]` Rent info
func NewMintNewEditionFromMasterEditionViaTokenInstruction(
	accounts *MintNewEditionFromMasterEditionViaTokenInstructionAccounts,
	args *MintNewEditionFromMasterEditionViaTokenInstructionArgs,
) solana.Instruction {
	return solana.Instruction{
		Program: ProgramKey,

		// Instruction args
		Data: marshalInstructionData(InstructionTypeMintNewEditionFromMasterEditionViaToken, args),

		// Instruction accounts
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.NewMetadata,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.NewEdition,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.MasterEdition,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.NewMint,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.EditionMarkPda,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.NewMintAuthority,
				IsWritable: false,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.Payer,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.TokenAccountOwner,
				IsWritable: false,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.TokenAccount,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.NewMetadataUpdateAuthority,
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
