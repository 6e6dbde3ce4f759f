package metadatacpi

import (
	"context"

	"github.com/code-payments/metadata-cpi/pkg/solana/cpi"
	"github.com/code-payments/metadata-cpi/pkg/solana/tokenmetadata"
)

// UtilizeAccounts describes the accounts of Utilize. UseAuthorityRecord is
// required when UseAuthority is a delegate, and Burner when the uses method
// burns the token.
type UtilizeAccounts struct {
	Metadata           cpi.AccountInfo
	TokenAccount       cpi.AccountInfo
	Mint               cpi.AccountInfo
	UseAuthorityRecord *cpi.AccountInfo
	UseAuthority       cpi.AccountInfo
	Owner              cpi.AccountInfo
	Burner             *cpi.AccountInfo
	AssociatedToken    cpi.AccountInfo
	SystemProgram      cpi.AccountInfo
	TokenProgram       cpi.AccountInfo
	Rent               cpi.AccountInfo
}

// Utilize consumes numberOfUses uses of the token.
func Utilize(ctx context.Context, cpiCtx *cpi.Context[UtilizeAccounts], numberOfUses uint64) error {
	accounts := cpiCtx.Accounts

	ix := tokenmetadata.NewUtilizeInstruction(
		&tokenmetadata.UtilizeInstructionAccounts{
			Metadata:           accounts.Metadata.PublicKey,
			TokenAccount:       accounts.TokenAccount.PublicKey,
			Mint:               accounts.Mint.PublicKey,
			UseAuthority:       accounts.UseAuthority.PublicKey,
			Owner:              accounts.Owner.PublicKey,
			UseAuthorityRecord: optionalKey(accounts.UseAuthorityRecord),
			Burner:             optionalKey(accounts.Burner),
		},
		&tokenmetadata.UtilizeInstructionArgs{
			NumberOfUses: numberOfUses,
		},
	)

	infos := []cpi.AccountInfo{
		accounts.Metadata,
		accounts.TokenAccount,
		accounts.Mint,
		accounts.UseAuthority,
		accounts.Owner,
		accounts.TokenProgram,
		accounts.AssociatedToken,
		accounts.SystemProgram,
		accounts.Rent,
	}
	infos = optionalAccount(infos, accounts.UseAuthorityRecord)
	infos = optionalAccount(infos, accounts.Burner)

	return cpiCtx.Invoke(ctx, ix, infos...)
}

type ApproveUseAuthorityAccounts struct {
	UseAuthorityRecord cpi.AccountInfo
	User               cpi.AccountInfo
	Owner              cpi.AccountInfo
	Payer              cpi.AccountInfo
	OwnerTokenAccount  cpi.AccountInfo
	Metadata           cpi.AccountInfo
	Mint               cpi.AccountInfo
	Burner             cpi.AccountInfo
	SystemProgram      cpi.AccountInfo
	TokenProgram       cpi.AccountInfo
	Rent               cpi.AccountInfo
}

// ApproveUseAuthority delegates numberOfUses uses of the token to User.
func ApproveUseAuthority(ctx context.Context, cpiCtx *cpi.Context[ApproveUseAuthorityAccounts], numberOfUses uint64) error {
	accounts := cpiCtx.Accounts

	ix := tokenmetadata.NewApproveUseAuthorityInstruction(
		&tokenmetadata.ApproveUseAuthorityInstructionAccounts{
			UseAuthorityRecord: accounts.UseAuthorityRecord.PublicKey,
			User:               accounts.User.PublicKey,
			Owner:              accounts.Owner.PublicKey,
			Payer:              accounts.Payer.PublicKey,
			OwnerTokenAccount:  accounts.OwnerTokenAccount.PublicKey,
			Metadata:           accounts.Metadata.PublicKey,
			Mint:               accounts.Mint.PublicKey,
			Burner:             accounts.Burner.PublicKey,
		},
		&tokenmetadata.ApproveUseAuthorityInstructionArgs{
			NumberOfUses: numberOfUses,
		},
	)

	return cpiCtx.Invoke(
		ctx,
		ix,
		accounts.UseAuthorityRecord,
		accounts.Owner,
		accounts.Payer,
		accounts.User,
		accounts.OwnerTokenAccount,
		accounts.Metadata,
		accounts.Mint,
		accounts.Burner,
		accounts.TokenProgram,
		accounts.SystemProgram,
		accounts.Rent,
	)
}

type RevokeUseAuthorityAccounts struct {
	UseAuthorityRecord cpi.AccountInfo
	User               cpi.AccountInfo
	Owner              cpi.AccountInfo
	OwnerTokenAccount  cpi.AccountInfo
	Metadata           cpi.AccountInfo
	Mint               cpi.AccountInfo
	SystemProgram      cpi.AccountInfo
	TokenProgram       cpi.AccountInfo
	Rent               cpi.AccountInfo
}

func RevokeUseAuthority(ctx context.Context, cpiCtx *cpi.Context[RevokeUseAuthorityAccounts]) error {
	accounts := cpiCtx.Accounts

	ix := tokenmetadata.NewRevokeUseAuthorityInstruction(&tokenmetadata.RevokeUseAuthorityInstructionAccounts{
		UseAuthorityRecord: accounts.UseAuthorityRecord.PublicKey,
		Owner:              accounts.Owner.PublicKey,
		User:               accounts.User.PublicKey,
		OwnerTokenAccount:  accounts.OwnerTokenAccount.PublicKey,
		Mint:               accounts.Mint.PublicKey,
		Metadata:           accounts.Metadata.PublicKey,
	})

	return cpiCtx.Invoke(
		ctx,
		ix,
		accounts.UseAuthorityRecord,
		accounts.Owner,
		accounts.User,
		accounts.OwnerTokenAccount,
		accounts.Mint,
		accounts.Metadata,
		accounts.TokenProgram,
		accounts.SystemProgram,
		accounts.Rent,
	)
}
