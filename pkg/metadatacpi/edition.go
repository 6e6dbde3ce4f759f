package metadatacpi

import (
	"context"

	"github.com/pkg/errors"

	"github.com/code-payments/metadata-cpi/pkg/solana/cpi"
	"github.com/code-payments/metadata-cpi/pkg/solana/tokenmetadata"
)

type CreateMasterEditionAccounts struct {
	Edition         cpi.AccountInfo
	Mint            cpi.AccountInfo
	UpdateAuthority cpi.AccountInfo
	MintAuthority   cpi.AccountInfo
	Metadata        cpi.AccountInfo
	Payer           cpi.AccountInfo
	SystemProgram   cpi.AccountInfo
	TokenProgram    cpi.AccountInfo
	Rent            cpi.AccountInfo
}

// CreateMasterEdition creates a v1 master edition allowing up to maxSupply
// prints.
func CreateMasterEdition(ctx context.Context, cpiCtx *cpi.Context[CreateMasterEditionAccounts], maxSupply uint64) error {
	accounts := cpiCtx.Accounts

	ix := tokenmetadata.NewCreateMasterEditionInstruction(
		&tokenmetadata.CreateMasterEditionInstructionAccounts{
			Edition:         accounts.Edition.PublicKey,
			Mint:            accounts.Mint.PublicKey,
			UpdateAuthority: accounts.UpdateAuthority.PublicKey,
			MintAuthority:   accounts.MintAuthority.PublicKey,
			Payer:           accounts.Payer.PublicKey,
			Metadata:        accounts.Metadata.PublicKey,
		},
		&tokenmetadata.CreateMasterEditionInstructionArgs{
			MaxSupply: &maxSupply,
		},
	)

	return cpiCtx.Invoke(ctx, ix, masterEditionAccounts(accounts)...)
}

type CreateMasterEditionV3Accounts CreateMasterEditionAccounts

// CreateMasterEditionV3 creates a master edition allowing up to maxSupply
// prints.
func CreateMasterEditionV3(ctx context.Context, cpiCtx *cpi.Context[CreateMasterEditionV3Accounts], maxSupply uint64) error {
	accounts := cpiCtx.Accounts

	ix := tokenmetadata.NewCreateMasterEditionV3Instruction(
		&tokenmetadata.CreateMasterEditionV3InstructionAccounts{
			Edition:         accounts.Edition.PublicKey,
			Mint:            accounts.Mint.PublicKey,
			UpdateAuthority: accounts.UpdateAuthority.PublicKey,
			MintAuthority:   accounts.MintAuthority.PublicKey,
			Payer:           accounts.Payer.PublicKey,
			Metadata:        accounts.Metadata.PublicKey,
		},
		&tokenmetadata.CreateMasterEditionV3InstructionArgs{
			MaxSupply: &maxSupply,
		},
	)

	return cpiCtx.Invoke(ctx, ix, masterEditionAccounts(CreateMasterEditionAccounts(accounts))...)
}

func masterEditionAccounts(accounts CreateMasterEditionAccounts) []cpi.AccountInfo {
	return []cpi.AccountInfo{
		accounts.Edition,
		accounts.Mint,
		accounts.UpdateAuthority,
		accounts.MintAuthority,
		accounts.Payer,
		accounts.Metadata,
		accounts.TokenProgram,
		accounts.SystemProgram,
		accounts.Rent,
	}
}

// MintNewEditionFromMasterEditionViaTokenAccounts describes the accounts of
// MintNewEditionFromMasterEditionViaToken. MetadataMint is the mint of the
// master edition and only seeds the edition marker address.
type MintNewEditionFromMasterEditionViaTokenAccounts struct {
	NewMetadata                cpi.AccountInfo
	NewEdition                 cpi.AccountInfo
	MasterEdition              cpi.AccountInfo
	NewMint                    cpi.AccountInfo
	NewMintAuthority           cpi.AccountInfo
	Payer                      cpi.AccountInfo
	TokenAccountOwner          cpi.AccountInfo
	TokenAccount               cpi.AccountInfo
	NewMetadataUpdateAuthority cpi.AccountInfo
	Metadata                   cpi.AccountInfo
	MetadataMint               cpi.AccountInfo
	TokenProgram               cpi.AccountInfo
	SystemProgram              cpi.AccountInfo
	Rent                       cpi.AccountInfo
}

// MintNewEditionFromMasterEditionViaToken prints edition number edition of
// a master edition, authorized by the owner of a token account holding the
// master edition's mint.
func MintNewEditionFromMasterEditionViaToken(
	ctx context.Context,
	cpiCtx *cpi.Context[MintNewEditionFromMasterEditionViaTokenAccounts],
	edition uint64,
) error {
	accounts := cpiCtx.Accounts

	editionMarker, _, err := tokenmetadata.GetEditionMarkerAddress(&tokenmetadata.GetEditionMarkerAddressArgs{
		Mint:    accounts.MetadataMint.PublicKey,
		Edition: edition,
	})
	if err != nil {
		return errors.Wrap(err, "error deriving edition marker address")
	}

	ix := tokenmetadata.NewMintNewEditionFromMasterEditionViaTokenInstruction(
		&tokenmetadata.MintNewEditionFromMasterEditionViaTokenInstructionAccounts{
			NewMetadata:                accounts.NewMetadata.PublicKey,
			NewEdition:                 accounts.NewEdition.PublicKey,
			MasterEdition:              accounts.MasterEdition.PublicKey,
			NewMint:                    accounts.NewMint.PublicKey,
			EditionMarkPda:             editionMarker,
			NewMintAuthority:           accounts.NewMintAuthority.PublicKey,
			Payer:                      accounts.Payer.PublicKey,
			TokenAccountOwner:          accounts.TokenAccountOwner.PublicKey,
			TokenAccount:               accounts.TokenAccount.PublicKey,
			NewMetadataUpdateAuthority: accounts.NewMetadataUpdateAuthority.PublicKey,
			Metadata:                   accounts.Metadata.PublicKey,
		},
		&tokenmetadata.MintNewEditionFromMasterEditionViaTokenInstructionArgs{
			Edition: edition,
		},
	)

	return cpiCtx.Invoke(
		ctx,
		ix,
		accounts.NewMetadata,
		accounts.NewEdition,
		accounts.MasterEdition,
		accounts.NewMint,
		cpi.NewAccountInfo(editionMarker, false),
		accounts.NewMintAuthority,
		accounts.Payer,
		accounts.TokenAccountOwner,
		accounts.TokenAccount,
		accounts.NewMetadataUpdateAuthority,
		accounts.Metadata,
		accounts.TokenProgram,
		accounts.SystemProgram,
		accounts.Rent,
	)
}

type ConvertMasterEditionV1ToV2Accounts struct {
	MasterEdition cpi.AccountInfo
	OneTimeAuth   cpi.AccountInfo
	PrintingMint  cpi.AccountInfo
}

func ConvertMasterEditionV1ToV2(ctx context.Context, cpiCtx *cpi.Context[ConvertMasterEditionV1ToV2Accounts]) error {
	accounts := cpiCtx.Accounts

	ix := tokenmetadata.NewConvertMasterEditionV1ToV2Instruction(
		&tokenmetadata.ConvertMasterEditionV1ToV2InstructionAccounts{
			MasterEdition: accounts.MasterEdition.PublicKey,
			OneTimeAuth:   accounts.OneTimeAuth.PublicKey,
			PrintingMint:  accounts.PrintingMint.PublicKey,
		},
	)

	return cpiCtx.Invoke(ctx, ix, accounts.MasterEdition, accounts.OneTimeAuth, accounts.PrintingMint)
}
