package metadatacpi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/metadata-cpi/pkg/solana"
	"github.com/code-payments/metadata-cpi/pkg/solana/cpi"
	"github.com/code-payments/metadata-cpi/pkg/solana/tokenmetadata"
)

func TestCreateMasterEdition(t *testing.T) {
	for _, v3 := range []bool{false, true} {
		env := setup(t)
		infos := signers(t, 6)

		accounts := CreateMasterEditionAccounts{
			Edition:         infos[0],
			Mint:            infos[1],
			UpdateAuthority: infos[2],
			MintAuthority:   infos[3],
			Metadata:        infos[4],
			Payer:           infos[5],
			SystemProgram:   systemProgram,
			TokenProgram:    tokenProgram,
			Rent:            rent,
		}
		maxSupply := uint64(10)

		var expected solana.Instruction
		if v3 {
			require.NoError(t, CreateMasterEditionV3(context.Background(), newContext(env, CreateMasterEditionV3Accounts(accounts)), maxSupply))
			expected = tokenmetadata.NewCreateMasterEditionV3Instruction(
				&tokenmetadata.CreateMasterEditionV3InstructionAccounts{
					Edition:         infos[0].PublicKey,
					Mint:            infos[1].PublicKey,
					UpdateAuthority: infos[2].PublicKey,
					MintAuthority:   infos[3].PublicKey,
					Metadata:        infos[4].PublicKey,
					Payer:           infos[5].PublicKey,
				},
				&tokenmetadata.CreateMasterEditionV3InstructionArgs{MaxSupply: &maxSupply},
			)
		} else {
			require.NoError(t, CreateMasterEdition(context.Background(), newContext(env, accounts), maxSupply))
			expected = tokenmetadata.NewCreateMasterEditionInstruction(
				&tokenmetadata.CreateMasterEditionInstructionAccounts{
					Edition:         infos[0].PublicKey,
					Mint:            infos[1].PublicKey,
					UpdateAuthority: infos[2].PublicKey,
					MintAuthority:   infos[3].PublicKey,
					Metadata:        infos[4].PublicKey,
					Payer:           infos[5].PublicKey,
				},
				&tokenmetadata.CreateMasterEditionInstructionArgs{MaxSupply: &maxSupply},
			)
		}

		// Payer precedes metadata in the account list handed to the invoker
		env.assertInvocation(
			t,
			expected,
			infos[0], infos[1], infos[2], infos[3], infos[5], infos[4],
			tokenProgram, systemProgram, rent,
		)
	}
}

func TestCreateMasterEditionV3_MissingMintAuthoritySignature(t *testing.T) {
	env := setup(t)
	infos := signers(t, 6)

	accounts := CreateMasterEditionV3Accounts{
		Edition:         infos[0],
		Mint:            infos[1],
		UpdateAuthority: infos[2],
		MintAuthority:   cpi.NewReadonlyAccountInfo(infos[3].PublicKey, false),
		Metadata:        infos[4],
		Payer:           infos[5],
		SystemProgram:   systemProgram,
		TokenProgram:    tokenProgram,
		Rent:            rent,
	}

	err := CreateMasterEditionV3(context.Background(), newContext(env, accounts), 0)
	assert.ErrorIs(t, err, cpi.ErrPrivilegeEscalation)
}

func TestMintNewEditionFromMasterEditionViaToken(t *testing.T) {
	env := setup(t)
	infos := signers(t, 11)

	accounts := MintNewEditionFromMasterEditionViaTokenAccounts{
		NewMetadata:                infos[0],
		NewEdition:                 infos[1],
		MasterEdition:              infos[2],
		NewMint:                    infos[3],
		NewMintAuthority:           infos[4],
		Payer:                      infos[5],
		TokenAccountOwner:          infos[6],
		TokenAccount:               infos[7],
		NewMetadataUpdateAuthority: infos[8],
		Metadata:                   infos[9],
		MetadataMint:               infos[10],
		TokenProgram:               tokenProgram,
		SystemProgram:              systemProgram,
		Rent:                       rent,
	}

	edition := uint64(2*EditionMarkerBitSize + 7)
	require.NoError(t, MintNewEditionFromMasterEditionViaToken(context.Background(), newContext(env, accounts), edition))

	marker, _, err := tokenmetadata.GetEditionMarkerAddress(&tokenmetadata.GetEditionMarkerAddressArgs{
		Mint:    infos[10].PublicKey,
		Edition: edition,
	})
	require.NoError(t, err)

	expected := tokenmetadata.NewMintNewEditionFromMasterEditionViaTokenInstruction(
		&tokenmetadata.MintNewEditionFromMasterEditionViaTokenInstructionAccounts{
			NewMetadata:                infos[0].PublicKey,
			NewEdition:                 infos[1].PublicKey,
			MasterEdition:              infos[2].PublicKey,
			NewMint:                    infos[3].PublicKey,
			EditionMarkPda:             marker,
			NewMintAuthority:           infos[4].PublicKey,
			Payer:                      infos[5].PublicKey,
			TokenAccountOwner:          infos[6].PublicKey,
			TokenAccount:               infos[7].PublicKey,
			NewMetadataUpdateAuthority: infos[8].PublicKey,
			Metadata:                   infos[9].PublicKey,
		},
		&tokenmetadata.MintNewEditionFromMasterEditionViaTokenInstructionArgs{Edition: edition},
	)

	invocation := env.assertInvocation(
		t,
		expected,
		infos[0], infos[1], infos[2], infos[3],
		cpi.NewAccountInfo(marker, false),
		infos[4], infos[5], infos[6], infos[7], infos[8], infos[9],
		tokenProgram, systemProgram, rent,
	)
	assert.Equal(t, marker, invocation.Instruction.Accounts[4].PublicKey)

	// Editions sharing a marker resolve to the same account
	env.invoker.Reset()
	require.NoError(t, MintNewEditionFromMasterEditionViaToken(context.Background(), newContext(env, accounts), 2*EditionMarkerBitSize))
	invocations := env.invoker.Invocations()
	require.Len(t, invocations, 1)
	assert.Equal(t, marker, invocations[0].Accounts[4].PublicKey)
}

func TestConvertMasterEditionV1ToV2(t *testing.T) {
	env := setup(t)
	infos := signers(t, 3)

	accounts := ConvertMasterEditionV1ToV2Accounts{
		MasterEdition: infos[0],
		OneTimeAuth:   infos[1],
		PrintingMint:  infos[2],
	}

	require.NoError(t, ConvertMasterEditionV1ToV2(context.Background(), newContext(env, accounts)))

	env.assertInvocation(t, tokenmetadata.NewConvertMasterEditionV1ToV2Instruction(
		&tokenmetadata.ConvertMasterEditionV1ToV2InstructionAccounts{
			MasterEdition: infos[0].PublicKey,
			OneTimeAuth:   infos[1].PublicKey,
			PrintingMint:  infos[2].PublicKey,
		},
	), infos[0], infos[1], infos[2])
}
