package tokenmetadata

import (
	"crypto/ed25519"

	"github.com/code-payments/metadata-cpi/pkg/solana"
)

type RemoveCreatorVerificationInstructionAccounts struct {
	Metadata ed25519.PublicKey
	Creator  ed25519.PublicKey
}

// NewRemoveCreatorVerificationInstruction clears the signing creator's
// verified flag. The account layout matches SignMetadata.
func NewRemoveCreatorVerificationInstruction(accounts *RemoveCreatorVerificationInstructionAccounts) solana.Instruction {
	return solana.Instruction{
		Program: ProgramKey,

		// Instruction args
		Data: marshalInstructionData(InstructionTypeRemoveCreatorVerification, nil),

		// Instruction accounts
		Accounts: creatorVerificationMetas(accounts.Metadata, accounts.Creator),
	}
}
