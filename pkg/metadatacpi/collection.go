package metadatacpi

import (
	"context"

	"github.com/code-payments/metadata-cpi/pkg/solana/cpi"
	"github.com/code-payments/metadata-cpi/pkg/solana/tokenmetadata"
)

// VerifyCollectionAccounts describes the accounts of VerifyCollection.
// CollectionAuthorityRecord is only required when CollectionAuthority is a
// delegate of the collection's update authority.
type VerifyCollectionAccounts struct {
	Metadata                       cpi.AccountInfo
	CollectionAuthority            cpi.AccountInfo
	Payer                          cpi.AccountInfo
	CollectionMint                 cpi.AccountInfo
	Collection                     cpi.AccountInfo
	CollectionMasterEditionAccount cpi.AccountInfo
	CollectionAuthorityRecord      *cpi.AccountInfo
}

// VerifyCollection marks the metadata's collection as verified.
func VerifyCollection(ctx context.Context, cpiCtx *cpi.Context[VerifyCollectionAccounts]) error {
	accounts := cpiCtx.Accounts

	ix := tokenmetadata.NewVerifyCollectionInstruction(&tokenmetadata.VerifyCollectionInstructionAccounts{
		Metadata:                       accounts.Metadata.PublicKey,
		CollectionAuthority:            accounts.CollectionAuthority.PublicKey,
		Payer:                          accounts.Payer.PublicKey,
		CollectionMint:                 accounts.CollectionMint.PublicKey,
		Collection:                     accounts.Collection.PublicKey,
		CollectionMasterEditionAccount: accounts.CollectionMasterEditionAccount.PublicKey,
		CollectionAuthorityRecord:      optionalKey(accounts.CollectionAuthorityRecord),
	})

	return cpiCtx.Invoke(ctx, ix, optionalAccount(
		[]cpi.AccountInfo{
			accounts.Metadata,
			accounts.CollectionAuthority,
			accounts.Payer,
			accounts.CollectionMint,
			accounts.Collection,
			accounts.CollectionMasterEditionAccount,
		},
		accounts.CollectionAuthorityRecord,
	)...)
}

type UnverifyCollectionAccounts struct {
	Metadata                       cpi.AccountInfo
	CollectionAuthority            cpi.AccountInfo
	CollectionMint                 cpi.AccountInfo
	Collection                     cpi.AccountInfo
	CollectionMasterEditionAccount cpi.AccountInfo
	CollectionAuthorityRecord      *cpi.AccountInfo
}

// UnverifyCollection clears the verified flag of the metadata's collection.
func UnverifyCollection(ctx context.Context, cpiCtx *cpi.Context[UnverifyCollectionAccounts]) error {
	accounts := cpiCtx.Accounts

	ix := tokenmetadata.NewUnverifyCollectionInstruction(&tokenmetadata.UnverifyCollectionInstructionAccounts{
		Metadata:                       accounts.Metadata.PublicKey,
		CollectionAuthority:            accounts.CollectionAuthority.PublicKey,
		CollectionMint:                 accounts.CollectionMint.PublicKey,
		Collection:                     accounts.Collection.PublicKey,
		CollectionMasterEditionAccount: accounts.CollectionMasterEditionAccount.PublicKey,
		CollectionAuthorityRecord:      optionalKey(accounts.CollectionAuthorityRecord),
	})

	return cpiCtx.Invoke(ctx, ix, optionalAccount(
		[]cpi.AccountInfo{
			accounts.Metadata,
			accounts.CollectionAuthority,
			accounts.CollectionMint,
			accounts.Collection,
			accounts.CollectionMasterEditionAccount,
		},
		accounts.CollectionAuthorityRecord,
	)...)
}

type SetAndVerifyCollectionAccounts struct {
	Metadata                       cpi.AccountInfo
	CollectionAuthority            cpi.AccountInfo
	Payer                          cpi.AccountInfo
	UpdateAuthority                cpi.AccountInfo
	CollectionMint                 cpi.AccountInfo
	Collection                     cpi.AccountInfo
	CollectionMasterEditionAccount cpi.AccountInfo
	CollectionAuthorityRecord      *cpi.AccountInfo
}

// SetAndVerifyCollection sets the metadata's collection to CollectionMint
// and marks it verified in a single instruction.
//
// CollectionAuthority is sent as the instruction's collection authority
// account. Some bindings place the collection account's key there instead,
// which the program rejects unless the two coincide.
func SetAndVerifyCollection(ctx context.Context, cpiCtx *cpi.Context[SetAndVerifyCollectionAccounts]) error {
	accounts := cpiCtx.Accounts

	ix := tokenmetadata.NewSetAndVerifyCollectionInstruction(&tokenmetadata.SetAndVerifyCollectionInstructionAccounts{
		Metadata:                       accounts.Metadata.PublicKey,
		CollectionAuthority:            accounts.CollectionAuthority.PublicKey,
		Payer:                          accounts.Payer.PublicKey,
		UpdateAuthority:                accounts.UpdateAuthority.PublicKey,
		CollectionMint:                 accounts.CollectionMint.PublicKey,
		Collection:                     accounts.Collection.PublicKey,
		CollectionMasterEditionAccount: accounts.CollectionMasterEditionAccount.PublicKey,
		CollectionAuthorityRecord:      optionalKey(accounts.CollectionAuthorityRecord),
	})

	return cpiCtx.Invoke(ctx, ix, optionalAccount(
		[]cpi.AccountInfo{
			accounts.Metadata,
			accounts.CollectionAuthority,
			accounts.Payer,
			accounts.UpdateAuthority,
			accounts.CollectionMint,
			accounts.Collection,
			accounts.CollectionMasterEditionAccount,
		},
		accounts.CollectionAuthorityRecord,
	)...)
}

type ApproveCollectionAuthorityAccounts struct {
	CollectionAuthorityRecord cpi.AccountInfo
	NewCollectionAuthority    cpi.AccountInfo
	UpdateAuthority           cpi.AccountInfo
	Payer                     cpi.AccountInfo
	Metadata                  cpi.AccountInfo
	Mint                      cpi.AccountInfo
	SystemProgram             cpi.AccountInfo
	Rent                      cpi.AccountInfo
}

// ApproveCollectionAuthority delegates collection verification of Mint to
// NewCollectionAuthority.
func ApproveCollectionAuthority(ctx context.Context, cpiCtx *cpi.Context[ApproveCollectionAuthorityAccounts]) error {
	accounts := cpiCtx.Accounts

	ix := tokenmetadata.NewApproveCollectionAuthorityInstruction(&tokenmetadata.ApproveCollectionAuthorityInstructionAccounts{
		CollectionAuthorityRecord: accounts.CollectionAuthorityRecord.PublicKey,
		NewCollectionAuthority:    accounts.NewCollectionAuthority.PublicKey,
		UpdateAuthority:           accounts.UpdateAuthority.PublicKey,
		Payer:                     accounts.Payer.PublicKey,
		Metadata:                  accounts.Metadata.PublicKey,
		Mint:                      accounts.Mint.PublicKey,
	})

	return cpiCtx.Invoke(
		ctx,
		ix,
		accounts.CollectionAuthorityRecord,
		accounts.NewCollectionAuthority,
		accounts.UpdateAuthority,
		accounts.Payer,
		accounts.Metadata,
		accounts.Mint,
		accounts.SystemProgram,
		accounts.Rent,
	)
}

type RevokeCollectionAuthorityAccounts struct {
	CollectionAuthorityRecord cpi.AccountInfo
	DelegateAuthority         cpi.AccountInfo
	UpdateAuthority           cpi.AccountInfo
	Metadata                  cpi.AccountInfo
	Mint                      cpi.AccountInfo
}

func RevokeCollectionAuthority(ctx context.Context, cpiCtx *cpi.Context[RevokeCollectionAuthorityAccounts]) error {
	accounts := cpiCtx.Accounts

	ix := tokenmetadata.NewRevokeCollectionAuthorityInstruction(&tokenmetadata.RevokeCollectionAuthorityInstructionAccounts{
		CollectionAuthorityRecord: accounts.CollectionAuthorityRecord.PublicKey,
		DelegateAuthority:         accounts.DelegateAuthority.PublicKey,
		UpdateAuthority:           accounts.UpdateAuthority.PublicKey,
		Metadata:                  accounts.Metadata.PublicKey,
		Mint:                      accounts.Mint.PublicKey,
	})

	return cpiCtx.Invoke(
		ctx,
		ix,
		accounts.CollectionAuthorityRecord,
		accounts.DelegateAuthority,
		accounts.UpdateAuthority,
		accounts.Metadata,
		accounts.Mint,
	)
}
