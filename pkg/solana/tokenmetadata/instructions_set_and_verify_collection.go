package tokenmetadata

import (
	"crypto/ed25519"

	"github.com/code-payments/metadata-cpi/pkg/solana"
)

type SetAndVerifyCollectionInstructionAccounts struct {
	Metadata                       ed25519.PublicKey
	CollectionAuthority            ed25519.PublicKey
	Payer                          ed25519.PublicKey
	UpdateAuthority                ed25519.PublicKey
	CollectionMint                 ed25519.PublicKey
	Collection                     ed25519.PublicKey
	CollectionMasterEditionAccount ed25519.PublicKey

	// Optional. Required when the collection authority is a delegate.
	CollectionAuthorityRecord ed25519.PublicKey
}

// NewSetAndVerifyCollectionInstruction sets the collection of an item and
// verifies it in a single instruction.
//
// Accounts expected:
//
//  0. `[writable]` Metadata account
//  1. `[signer, writable]` Collection update authority
//  2. `[signer, writable]` Payer
//  3. `[]` Update authority of the item's metadata
//  4. `[]` Mint of the collection
//  5. `[]` Metadata account of the collection
//  6. `[]` Master edition v2 account of the collection token
//  7. `[]` Optional collection authority record
func NewSetAndVerifyCollectionInstruction(accounts *SetAndVerifyCollectionInstructionAccounts) solana.Instruction {
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
			PublicKey:  accounts.Payer,
			IsWritable: true,
			IsSigner:   true,
		},
		{
			PublicKey:  accounts.UpdateAuthority,
			IsWritable: false,
			IsSigner:   false,
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
		Data: marshalInstructionData(InstructionTypeSetAndVerifyCollection, nil),

		// Instruction accounts
		Accounts: instructionAccounts,
	}
}
