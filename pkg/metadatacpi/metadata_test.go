package metadatacpi

import (
	"context"
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/metadata-cpi/pkg/solana"
	"github.com/code-payments/metadata-cpi/pkg/solana/cpi"
	"github.com/code-payments/metadata-cpi/pkg/solana/tokenmetadata"
)

func TestCreateMetadataAccountsV2(t *testing.T) {
	env := setup(t)
	infos := signers(t, 5)
	creator := generateKeys(t, 1)[0]

	accounts := CreateMetadataAccountsV2Accounts{
		MetadataAccount: infos[0],
		Mint:            infos[1],
		MintAuthority:   infos[2],
		Payer:           infos[3],
		UpdateAuthority: infos[4],
		SystemProgram:   systemProgram,
		Rent:            rent,
	}
	uses := tokenmetadata.Uses{UseMethod: tokenmetadata.UseMethodMultiple, Remaining: 5, Total: 10}
	collection := tokenmetadata.Collection{Key: infos[1].PublicKey}
	creators := []tokenmetadata.Creator{{Address: creator, Share: 100}}

	err := CreateMetadataAccountsV2(
		context.Background(),
		newContext(env, accounts),
		"name", "SYM", "https://example.com/meta.json",
		500,
		true,
		false,
		uses,
		collection,
		creators,
	)
	require.NoError(t, err)

	expected := tokenmetadata.NewCreateMetadataAccountV2Instruction(
		&tokenmetadata.CreateMetadataAccountV2InstructionAccounts{
			Metadata:                infos[0].PublicKey,
			Mint:                    infos[1].PublicKey,
			MintAuthority:           infos[2].PublicKey,
			Payer:                   infos[3].PublicKey,
			UpdateAuthority:         infos[4].PublicKey,
			UpdateAuthorityIsSigner: true,
		},
		&tokenmetadata.CreateMetadataAccountV2InstructionArgs{
			Data: tokenmetadata.DataV2{
				Name:                 "name",
				Symbol:               "SYM",
				Uri:                  "https://example.com/meta.json",
				SellerFeeBasisPoints: 500,
				Creators:             creators,
				Collection:           &collection,
				Uses:                 &uses,
			},
		},
	)
	env.assertInvocation(t, expected, infos[0], infos[1], infos[2], infos[3], infos[4], systemProgram, rent)

	var args tokenmetadata.CreateMetadataAccountV2InstructionArgs
	require.NoError(t, tokenmetadata.UnmarshalInstructionArgs(expected.Data, tokenmetadata.InstructionTypeCreateMetadataAccountV2, &args))
	require.NotNil(t, args.Data.Collection)
	require.NotNil(t, args.Data.Uses)
	assert.Equal(t, uses, *args.Data.Uses)
}

func TestCreateMetadataAccounts_NilCreators(t *testing.T) {
	env := setup(t)
	infos := signers(t, 5)

	accounts := CreateMetadataAccountsAccounts{
		MetadataAccount: infos[0],
		Mint:            infos[1],
		MintAuthority:   infos[2],
		Payer:           infos[3],
		UpdateAuthority: infos[4],
		SystemProgram:   systemProgram,
		Rent:            rent,
	}

	err := CreateMetadataAccounts(context.Background(), newContext(env, accounts), "name", "SYM", "uri", 0, false, true, nil)
	require.NoError(t, err)

	invocation := env.assertInvocation(
		t,
		tokenmetadata.NewCreateMetadataAccountInstruction(
			&tokenmetadata.CreateMetadataAccountInstructionAccounts{
				Metadata:        infos[0].PublicKey,
				Mint:            infos[1].PublicKey,
				MintAuthority:   infos[2].PublicKey,
				Payer:           infos[3].PublicKey,
				UpdateAuthority: infos[4].PublicKey,
			},
			&tokenmetadata.CreateMetadataAccountInstructionArgs{
				Data: tokenmetadata.Data{
					Name:     "name",
					Symbol:   "SYM",
					Uri:      "uri",
					Creators: []tokenmetadata.Creator{},
				},
				IsMutable: true,
			},
		),
		infos[0], infos[1], infos[2], infos[3], infos[4], systemProgram, rent,
	)

	var args tokenmetadata.CreateMetadataAccountInstructionArgs
	require.NoError(t, tokenmetadata.UnmarshalInstructionArgs(invocation.Instruction.Data, tokenmetadata.InstructionTypeCreateMetadataAccount, &args))
	assert.NotNil(t, args.Data.Creators)
	assert.Empty(t, args.Data.Creators)
}

func TestUpdateMetadataAccounts(t *testing.T) {
	env := setup(t)
	infos := signers(t, 3)

	accounts := UpdateMetadataAccountsAccounts{
		MetadataAccount:    infos[0],
		UpdateAuthority:    infos[1],
		NewUpdateAuthority: infos[2],
		SystemProgram:      systemProgram,
		Rent:               rent,
	}
	data := tokenmetadata.Data{Name: "renamed", Symbol: "SYM", Uri: "uri"}

	require.NoError(t, UpdateMetadataAccounts(context.Background(), newContext(env, accounts), true, data))

	invocation := env.assertInvocation(t, tokenmetadata.NewUpdateMetadataAccountInstruction(
		&tokenmetadata.UpdateMetadataAccountInstructionAccounts{
			Metadata:        infos[0].PublicKey,
			UpdateAuthority: infos[1].PublicKey,
		},
		&tokenmetadata.UpdateMetadataAccountInstructionArgs{
			Data:                &data,
			UpdateAuthority:     infos[2].PublicKey,
			PrimarySaleHappened: boolPointer(true),
		},
	), infos[0], infos[1])

	var args tokenmetadata.UpdateMetadataAccountInstructionArgs
	require.NoError(t, tokenmetadata.UnmarshalInstructionArgs(invocation.Instruction.Data, tokenmetadata.InstructionTypeUpdateMetadataAccount, &args))
	assert.Equal(t, infos[2].PublicKey, args.UpdateAuthority)
}

func TestUpdateMetadataAccountsV2(t *testing.T) {
	env := setup(t)
	infos := signers(t, 3)

	accounts := UpdateMetadataAccountsV2Accounts{
		MetadataAccount:    infos[0],
		UpdateAuthority:    infos[1],
		NewUpdateAuthority: infos[2],
	}
	data := tokenmetadata.DataV2{Name: "renamed", Symbol: "SYM", Uri: "uri"}

	require.NoError(t, UpdateMetadataAccountsV2(context.Background(), newContext(env, accounts), data, false, true))

	env.assertInvocation(t, tokenmetadata.NewUpdateMetadataAccountV2Instruction(
		&tokenmetadata.UpdateMetadataAccountV2InstructionAccounts{
			Metadata:        infos[0].PublicKey,
			UpdateAuthority: infos[1].PublicKey,
		},
		&tokenmetadata.UpdateMetadataAccountV2InstructionArgs{
			Data:                &data,
			UpdateAuthority:     infos[2].PublicKey,
			PrimarySaleHappened: boolPointer(false),
			IsMutable:           boolPointer(true),
		},
	), infos[0], infos[1])
}

func TestUpdateMetadataAccountsV2_ProgramUpdateAuthority(t *testing.T) {
	env := setup(t)
	infos := signers(t, 2)

	authority, bump, err := solana.FindProgramAddressAndBump(env.caller, []byte("authority"))
	require.NoError(t, err)

	accounts := UpdateMetadataAccountsV2Accounts{
		MetadataAccount:    infos[0],
		UpdateAuthority:    cpi.NewReadonlyAccountInfo(authority, false),
		NewUpdateAuthority: infos[1],
	}

	cpiCtx := newContext(env, accounts)
	err = UpdateMetadataAccountsV2(context.Background(), cpiCtx, tokenmetadata.DataV2{}, false, false)
	assert.ErrorIs(t, err, cpi.ErrPrivilegeEscalation)
	assert.Empty(t, env.invoker.Invocations())

	seeds := [][][]byte{{[]byte("authority"), {bump}}}
	require.NoError(t, UpdateMetadataAccountsV2(context.Background(), cpiCtx.WithSigner(seeds), tokenmetadata.DataV2{}, false, false))

	invocations := env.invoker.Invocations()
	require.Len(t, invocations, 1)
	assert.Equal(t, seeds, invocations[0].SignerSeeds)
}

func TestUpdatePrimarySaleHappenedViaToken(t *testing.T) {
	env := setup(t)
	infos := signers(t, 3)

	accounts := UpdatePrimarySaleHappenedViaTokenAccounts{
		MetadataAccount: infos[0],
		Owner:           infos[1],
		Token:           infos[2],
	}

	require.NoError(t, UpdatePrimarySaleHappenedViaToken(context.Background(), newContext(env, accounts)))

	env.assertInvocation(t, tokenmetadata.NewUpdatePrimarySaleHappenedViaTokenInstruction(
		&tokenmetadata.UpdatePrimarySaleHappenedViaTokenInstructionAccounts{
			Metadata: infos[0].PublicKey,
			Owner:    infos[1].PublicKey,
			Token:    infos[2].PublicKey,
		},
	), infos[0], infos[1], infos[2])
}

func TestUpdatePrimarySaleHappenedViaToken_ReadonlyMetadata(t *testing.T) {
	env := setup(t)
	infos := signers(t, 3)

	accounts := UpdatePrimarySaleHappenedViaTokenAccounts{
		MetadataAccount: cpi.NewReadonlyAccountInfo(infos[0].PublicKey, false),
		Owner:           infos[1],
		Token:           infos[2],
	}

	err := UpdatePrimarySaleHappenedViaToken(context.Background(), newContext(env, accounts))
	assert.ErrorIs(t, err, cpi.ErrPrivilegeEscalation)
	assert.Empty(t, env.invoker.Invocations())
}

func boolPointer(v bool) *bool {
	return &v
}

func TestMalformedKeysRejected(t *testing.T) {
	env := setup(t)
	infos := signers(t, 5)
	short := infos[0].PublicKey[:ed25519.PublicKeySize-1]

	createV2 := CreateMetadataAccountsV2Accounts{
		MetadataAccount: infos[0],
		Mint:            infos[1],
		MintAuthority:   infos[2],
		Payer:           infos[3],
		UpdateAuthority: infos[4],
		SystemProgram:   systemProgram,
		Rent:            rent,
	}
	goodCreators := []tokenmetadata.Creator{{Address: infos[0].PublicKey, Share: 100}}
	badCreators := []tokenmetadata.Creator{{Address: short, Share: 100}}

	err := CreateMetadataAccountsV2(context.Background(), newContext(env, createV2), "name", "SYM", "uri", 0, true, true,
		tokenmetadata.Uses{}, tokenmetadata.Collection{Key: short}, goodCreators)
	assert.ErrorIs(t, err, tokenmetadata.ErrInvalidPublicKey)

	err = CreateMetadataAccountsV2(context.Background(), newContext(env, createV2), "name", "SYM", "uri", 0, true, true,
		tokenmetadata.Uses{}, tokenmetadata.Collection{}, goodCreators)
	assert.ErrorIs(t, err, tokenmetadata.ErrInvalidPublicKey)

	err = CreateMetadataAccountsV2(context.Background(), newContext(env, createV2), "name", "SYM", "uri", 0, true, true,
		tokenmetadata.Uses{}, tokenmetadata.Collection{Key: infos[1].PublicKey}, badCreators)
	assert.ErrorIs(t, err, tokenmetadata.ErrInvalidPublicKey)

	err = CreateMetadataAccounts(context.Background(), newContext(env, CreateMetadataAccountsAccounts(createV2)), "name", "SYM", "uri", 0, true, true, badCreators)
	assert.ErrorIs(t, err, tokenmetadata.ErrInvalidPublicKey)

	err = UpdateMetadataAccounts(context.Background(), newContext(env, UpdateMetadataAccountsAccounts{
		MetadataAccount:    infos[0],
		UpdateAuthority:    infos[1],
		NewUpdateAuthority: cpi.NewReadonlyAccountInfo(short, false),
	}), false, tokenmetadata.Data{})
	assert.ErrorIs(t, err, tokenmetadata.ErrInvalidPublicKey)

	err = UpdateMetadataAccountsV2(context.Background(), newContext(env, UpdateMetadataAccountsV2Accounts{
		MetadataAccount: infos[0],
		UpdateAuthority: infos[1],
	}), tokenmetadata.DataV2{Creators: badCreators}, false, true)
	assert.ErrorIs(t, err, tokenmetadata.ErrInvalidPublicKey)

	assert.Empty(t, env.invoker.Invocations())
}
