package metadatacpi

import (
	"context"

	"github.com/code-payments/metadata-cpi/pkg/solana/cpi"
	"github.com/code-payments/metadata-cpi/pkg/solana/tokenmetadata"
)

type SignMetadataAccounts struct {
	Metadata cpi.AccountInfo
	Creator  cpi.AccountInfo
}

// SignMetadata marks Creator as verified on the metadata account. Creator
// must sign.
func SignMetadata(ctx context.Context, cpiCtx *cpi.Context[SignMetadataAccounts]) error {
	accounts := cpiCtx.Accounts

	ix := tokenmetadata.NewSignMetadataInstruction(&tokenmetadata.SignMetadataInstructionAccounts{
		Metadata: accounts.Metadata.PublicKey,
		Creator:  accounts.Creator.PublicKey,
	})

	return cpiCtx.Invoke(ctx, ix, accounts.Metadata, accounts.Creator)
}

type RemoveCreatorVerificationAccounts struct {
	Metadata cpi.AccountInfo
	Creator  cpi.AccountInfo
}

func RemoveCreatorVerification(ctx context.Context, cpiCtx *cpi.Context[RemoveCreatorVerificationAccounts]) error {
	accounts := cpiCtx.Accounts

	ix := tokenmetadata.NewRemoveCreatorVerificationInstruction(&tokenmetadata.RemoveCreatorVerificationInstructionAccounts{
		Metadata: accounts.Metadata.PublicKey,
		Creator:  accounts.Creator.PublicKey,
	})

	return cpiCtx.Invoke(ctx, ix, accounts.Metadata, accounts.Creator)
}
