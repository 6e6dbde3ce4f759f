package tokenmetadata

import (
	"crypto/ed25519"

	"github.com/code-payments/metadata-cpi/pkg/solana"
)

type UnverifyCollectionInstructionAccounts struct {
	Metadata                       ed25519.PublicKey
	CollectionAuthority            ed25519.PublicKey
	CollectionMint                 ed25519.PublicKey
	Collection                     ed25519.PublicKey
	CollectionMasterEditionAccount ed25519.PublicKey

	// Optional. Required when the collection authority is a delegate.
	CollectionAuthorityRecord ed25519.PublicKey
}

// NewUnverifyCollectionInstruction removes the verified flag from the
// collection of an item.
//
// Accounts expected:
//
//  0. `[writable]` Metadata account
//  1. `[signer, writable]` Collection authority
//  2. `[]` Mint of the collection
//  3. `[]` Metadata account of the collection
//  4. `[]` Master edition v2 account of the collection token
//  5. `[]` Optional collection authority record
func NewUnverifyCollectionInstruction(accounts *UnverifyCollectionInstructionAccounts) solana.Instruction {
	instructionAccounts := []solana.AccountMeta{
		{
			PublicKey:  accounts.Metadata,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.CollectionAuthority,
			IsWritable: true,
			IsSigner:   true,
		},
		{
			PublicKey:  accounts.CollectionMint,
			IsWritable: false,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.Collection,
			IsWritable: false,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.CollectionMasterEditionAccount,
			IsWritable: false,
			IsSigner:   false,
		},
	}

	if accounts.CollectionAuthorityRecord != nil {
		instructionAccounts = append(instructionAccounts, solana.AccountMeta{
			PublicKey:  accounts.CollectionAuthorityRecord,
			IsWritable: false,
			IsSigner:   false,
		})
	}

	return solana.Instruction{
		Program: ProgramKey,

		// Instruction args
		Data: marshalInstructionData(InstructionTypeUnverifyCollection, nil),

		// Instruction accounts
		Accounts: instructionAccounts,
	}
}
