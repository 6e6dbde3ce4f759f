package tokenmetadata

import (
	"crypto/ed25519"

	"github.com/code-payments/metadata-cpi/pkg/solana"
)

type UpdatePrimarySaleHappenedViaTokenInstructionAccounts struct {
	Metadata ed25519.PublicKey
	Owner    ed25519.PublicKey
	Token    ed25519.PublicKey
}

// NewUpdatePrimarySaleHappenedViaTokenInstruction flags the primary sale of
// an asset as having happened, authorized by a holder of the token.
//
// Accounts expected:
//
//  0. `[writable]` Metadata key
//  1. `[signer]` Owner on the token account
//  2. `[]` Account containing the token from the metadata's mint
func NewUpdatePrimarySaleHappenedViaTokenInstruction(
	accounts *UpdatePrimarySaleHappenedViaTokenInstructionAccounts,
) solana.Instruction {
	return solana.Instruction{
		Program: ProgramKey,

		// Instruction args
		Data: marshalInstructionData(InstructionTypeUpdatePrimarySaleHappenedViaToken, nil),

		// Instruction accounts
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.Metadata,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Owner,
				IsWritable: false,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.Token,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}
