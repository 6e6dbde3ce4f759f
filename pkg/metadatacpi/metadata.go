package metadatacpi

import (
	"context"

	"github.com/pkg/errors"

	"github.com/code-payments/metadata-cpi/pkg/solana/cpi"
	"github.com/code-payments/metadata-cpi/pkg/solana/tokenmetadata"
)

type CreateMetadataAccountsV2Accounts struct {
	MetadataAccount cpi.AccountInfo
	Mint            cpi.AccountInfo
	MintAuthority   cpi.AccountInfo
	Payer           cpi.AccountInfo
	UpdateAuthority cpi.AccountInfo
	SystemProgram   cpi.AccountInfo
	Rent            cpi.AccountInfo
}

// CreateMetadataAccountsV2 creates the metadata account of a mint with the
// provided collection and uses. A nil creators slice is sent as an empty
// creator list.
func CreateMetadataAccountsV2(
	ctx context.Context,
	cpiCtx *cpi.Context[CreateMetadataAccountsV2Accounts],
	name, symbol, uri string,
	sellerFeeBasisPoints uint16,
	updateAuthorityIsSigner bool,
	isMutable bool,
	uses tokenmetadata.Uses,
	collection tokenmetadata.Collection,
	creators []tokenmetadata.Creator,
) error {
	accounts := cpiCtx.Accounts

	data := tokenmetadata.DataV2{
		Name:                 name,
		Symbol:               symbol,
		Uri:                  uri,
		SellerFeeBasisPoints: sellerFeeBasisPoints,
		Creators:             someCreators(creators),
		Collection:           &collection,
		Uses:                 &uses,
	}
	if err := data.Validate(); err != nil {
		return err
	}

	ix := tokenmetadata.NewCreateMetadataAccountV2Instruction(
		&tokenmetadata.CreateMetadataAccountV2InstructionAccounts{
			Metadata:                accounts.MetadataAccount.PublicKey,
			Mint:                    accounts.Mint.PublicKey,
			MintAuthority:           accounts.MintAuthority.PublicKey,
			Payer:                   accounts.Payer.PublicKey,
			UpdateAuthority:         accounts.UpdateAuthority.PublicKey,
			UpdateAuthorityIsSigner: updateAuthorityIsSigner,
		},
		&tokenmetadata.CreateMetadataAccountV2InstructionArgs{
			Data:      data,
			IsMutable: isMutable,
		},
	)

	return cpiCtx.Invoke(
		ctx,
		ix,
		accounts.MetadataAccount,
		accounts.Mint,
		accounts.MintAuthority,
		accounts.Payer,
		accounts.UpdateAuthority,
		accounts.SystemProgram,
		accounts.Rent,
	)
}

type CreateMetadataAccountsAccounts struct {
	MetadataAccount cpi.AccountInfo
	Mint            cpi.AccountInfo
	MintAuthority   cpi.AccountInfo
	Payer           cpi.AccountInfo
	UpdateAuthority cpi.AccountInfo
	SystemProgram   cpi.AccountInfo
	Rent            cpi.AccountInfo
}

// CreateMetadataAccounts creates a v1 metadata account. A nil creators slice
// is sent as an empty creator list.
func CreateMetadataAccounts(
	ctx context.Context,
	cpiCtx *cpi.Context[CreateMetadataAccountsAccounts],
	name, symbol, uri string,
	sellerFeeBasisPoints uint16,
	updateAuthorityIsSigner bool,
	isMutable bool,
	creators []tokenmetadata.Creator,
) error {
	accounts := cpiCtx.Accounts

	data := tokenmetadata.Data{
		Name:                 name,
		Symbol:               symbol,
		Uri:                  uri,
		SellerFeeBasisPoints: sellerFeeBasisPoints,
		Creators:             someCreators(creators),
	}
	if err := data.Validate(); err != nil {
		return err
	}

	ix := tokenmetadata.NewCreateMetadataAccountInstruction(
		&tokenmetadata.CreateMetadataAccountInstructionAccounts{
			Metadata:                accounts.MetadataAccount.PublicKey,
			Mint:                    accounts.Mint.PublicKey,
			MintAuthority:           accounts.MintAuthority.PublicKey,
			Payer:                   accounts.Payer.PublicKey,
			UpdateAuthority:         accounts.UpdateAuthority.PublicKey,
			UpdateAuthorityIsSigner: updateAuthorityIsSigner,
		},
		&tokenmetadata.CreateMetadataAccountInstructionArgs{
			Data:      data,
			IsMutable: isMutable,
		},
	)

	return cpiCtx.Invoke(
		ctx,
		ix,
		accounts.MetadataAccount,
		accounts.Mint,
		accounts.MintAuthority,
		accounts.Payer,
		accounts.UpdateAuthority,
		accounts.SystemProgram,
		accounts.Rent,
	)
}

// UpdateMetadataAccountsAccounts describes the accounts of
// UpdateMetadataAccounts. NewUpdateAuthority is not passed to the program as
// an account, its key becomes the metadata's update authority.
type UpdateMetadataAccountsAccounts struct {
	MetadataAccount    cpi.AccountInfo
	UpdateAuthority    cpi.AccountInfo
	NewUpdateAuthority cpi.AccountInfo
	SystemProgram      cpi.AccountInfo
	Rent               cpi.AccountInfo
}

func UpdateMetadataAccounts(
	ctx context.Context,
	cpiCtx *cpi.Context[UpdateMetadataAccountsAccounts],
	primarySaleHappened bool,
	data tokenmetadata.Data,
) error {
	accounts := cpiCtx.Accounts

	if err := validateUpdate(data, accounts.NewUpdateAuthority); err != nil {
		return err
	}

	ix := tokenmetadata.NewUpdateMetadataAccountInstruction(
		&tokenmetadata.UpdateMetadataAccountInstructionAccounts{
			Metadata:        accounts.MetadataAccount.PublicKey,
			UpdateAuthority: accounts.UpdateAuthority.PublicKey,
		},
		&tokenmetadata.UpdateMetadataAccountInstructionArgs{
			Data:                &data,
			UpdateAuthority:     accounts.NewUpdateAuthority.PublicKey,
			PrimarySaleHappened: &primarySaleHappened,
		},
	)

	return cpiCtx.Invoke(ctx, ix, accounts.MetadataAccount, accounts.UpdateAuthority)
}

type UpdateMetadataAccountsV2Accounts struct {
	MetadataAccount    cpi.AccountInfo
	UpdateAuthority    cpi.AccountInfo
	NewUpdateAuthority cpi.AccountInfo
}

func UpdateMetadataAccountsV2(
	ctx context.Context,
	cpiCtx *cpi.Context[UpdateMetadataAccountsV2Accounts],
	data tokenmetadata.DataV2,
	primarySaleHappened bool,
	isMutable bool,
) error {
	accounts := cpiCtx.Accounts

	if err := validateUpdate(data, accounts.NewUpdateAuthority); err != nil {
		return err
	}

	ix := tokenmetadata.NewUpdateMetadataAccountV2Instruction(
		&tokenmetadata.UpdateMetadataAccountV2InstructionAccounts{
			Metadata:        accounts.MetadataAccount.PublicKey,
			UpdateAuthority: accounts.UpdateAuthority.PublicKey,
		},
		&tokenmetadata.UpdateMetadataAccountV2InstructionArgs{
			Data:                &data,
			UpdateAuthority:     accounts.NewUpdateAuthority.PublicKey,
			PrimarySaleHappened: &primarySaleHappened,
			IsMutable:           &isMutable,
		},
	)

	return cpiCtx.Invoke(ctx, ix, accounts.MetadataAccount, accounts.UpdateAuthority)
}

type UpdatePrimarySaleHappenedViaTokenAccounts struct {
	MetadataAccount cpi.AccountInfo
	Owner           cpi.AccountInfo
	Token           cpi.AccountInfo
}

// UpdatePrimarySaleHappenedViaToken marks the primary sale of a mint as
// completed, authorized by the owner of a token account holding it.
func UpdatePrimarySaleHappenedViaToken(ctx context.Context, cpiCtx *cpi.Context[UpdatePrimarySaleHappenedViaTokenAccounts]) error {
	accounts := cpiCtx.Accounts

	ix := tokenmetadata.NewUpdatePrimarySaleHappenedViaTokenInstruction(
		&tokenmetadata.UpdatePrimarySaleHappenedViaTokenInstructionAccounts{
			Metadata: accounts.MetadataAccount.PublicKey,
			Owner:    accounts.Owner.PublicKey,
			Token:    accounts.Token.PublicKey,
		},
	)

	return cpiCtx.Invoke(ctx, ix, accounts.MetadataAccount, accounts.Owner, accounts.Token)
}

type validator interface {
	Validate() error
}

// validateUpdate rejects malformed keys before they reach the instruction
// encoder. A nil new update authority leaves the current one unchanged.
func validateUpdate(data validator, newUpdateAuthority cpi.AccountInfo) error {
	if err := data.Validate(); err != nil {
		return err
	}
	if newUpdateAuthority.PublicKey == nil {
		return nil
	}
	return errors.Wrap(tokenmetadata.ValidatePublicKey(newUpdateAuthority.PublicKey), "invalid new update authority")
}

func someCreators(creators []tokenmetadata.Creator) []tokenmetadata.Creator {
	if creators == nil {
		return []tokenmetadata.Creator{}
	}
	return creators
}
