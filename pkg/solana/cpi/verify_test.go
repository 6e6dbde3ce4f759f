package cpi

import (
	"crypto/ed25519"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/metadata-cpi/pkg/solana"
)

func TestVerifyInvocation_HappyPath(t *testing.T) {
	keys := generateKeys(t, 4)
	caller := keys[3]

	ix := solana.NewInstruction(
		keys[0],
		[]byte{1},
		solana.NewAccountMeta(keys[1], true),
		solana.NewReadonlyAccountMeta(keys[2], false),
	)

	accounts := []AccountInfo{
		NewReadonlyAccountInfo(keys[2], false),
		NewAccountInfo(keys[1], true),
	}
	assert.NoError(t, VerifyInvocation(caller, ix, accounts, nil))

	// Holding more privileges than the instruction needs is fine
	accounts = []AccountInfo{
		NewAccountInfo(keys[1], true),
		NewAccountInfo(keys[2], true),
	}
	assert.NoError(t, VerifyInvocation(caller, ix, accounts, nil))
}

func TestVerifyInvocation_MissingAccount(t *testing.T) {
	keys := generateKeys(t, 4)

	ix := solana.NewInstruction(
		keys[0],
		nil,
		solana.NewAccountMeta(keys[1], false),
		solana.NewReadonlyAccountMeta(keys[2], false),
	)

	err := VerifyInvocation(keys[3], ix, []AccountInfo{NewAccountInfo(keys[1], false)}, nil)
	assert.ErrorIs(t, err, ErrMissingAccount)
}

func TestVerifyInvocation_PrivilegeEscalation(t *testing.T) {
	keys := generateKeys(t, 3)

	writable := solana.NewInstruction(keys[0], nil, solana.NewAccountMeta(keys[1], false))
	err := VerifyInvocation(keys[2], writable, []AccountInfo{NewReadonlyAccountInfo(keys[1], false)}, nil)
	assert.ErrorIs(t, err, ErrPrivilegeEscalation)

	signer := solana.NewInstruction(keys[0], nil, solana.NewReadonlyAccountMeta(keys[1], true))
	err = VerifyInvocation(keys[2], signer, []AccountInfo{NewReadonlyAccountInfo(keys[1], false)}, nil)
	assert.ErrorIs(t, err, ErrPrivilegeEscalation)
}

func TestVerifyInvocation_DuplicateAccountsMergePrivileges(t *testing.T) {
	keys := generateKeys(t, 3)

	ix := solana.NewInstruction(keys[0], nil, solana.NewAccountMeta(keys[1], true))
	accounts := []AccountInfo{
		NewReadonlyAccountInfo(keys[1], true),
		NewAccountInfo(keys[1], false),
	}
	assert.NoError(t, VerifyInvocation(keys[2], ix, accounts, nil))
}

func TestVerifyInvocation_ProgramSigner(t *testing.T) {
	keys := generateKeys(t, 3)
	caller := keys[2]

	authority, bump, err := solana.FindProgramAddressAndBump(caller, []byte("authority"))
	require.NoError(t, err)
	seeds := [][][]byte{{[]byte("authority"), {bump}}}

	ix := solana.NewInstruction(
		keys[0],
		nil,
		solana.NewAccountMeta(keys[1], false),
		solana.NewReadonlyAccountMeta(authority, true),
	)
	accounts := []AccountInfo{
		NewAccountInfo(keys[1], false),
		NewReadonlyAccountInfo(authority, false),
	}

	assert.NoError(t, VerifyInvocation(caller, ix, accounts, seeds))

	// Without the seeds, the derived address cannot sign
	assert.ErrorIs(t, VerifyInvocation(caller, ix, accounts, nil), ErrPrivilegeEscalation)

	// The same seeds under another caller never produce the signer
	err = VerifyInvocation(keys[1], ix, accounts, seeds)
	assert.True(t, errors.Is(err, ErrPrivilegeEscalation) || errors.Is(err, ErrInvalidSeeds))

	// The derived address must still be provided
	assert.ErrorIs(t, VerifyInvocation(caller, ix, accounts[:1], seeds), ErrMissingAccount)
}

func TestVerifyInvocation_InvalidSeeds(t *testing.T) {
	keys := generateKeys(t, 2)
	ix := solana.NewInstruction(keys[0], nil)

	tooLong := make([]byte, solana.MaxSeedLength+1)
	err := VerifyInvocation(keys[1], ix, nil, [][][]byte{{tooLong}})
	assert.ErrorIs(t, err, ErrInvalidSeeds)

	tooMany := make([][]byte, solana.MaxSeeds+1)
	err = VerifyInvocation(keys[1], ix, nil, [][][]byte{tooMany})
	assert.ErrorIs(t, err, ErrInvalidSeeds)
}

func TestProgramSigners(t *testing.T) {
	keys := generateKeys(t, 1)

	first, firstBump, err := solana.FindProgramAddressAndBump(keys[0], []byte("first"))
	require.NoError(t, err)
	second, secondBump, err := solana.FindProgramAddressAndBump(keys[0], []byte("second"))
	require.NoError(t, err)

	signers, err := ProgramSigners(keys[0], [][][]byte{
		{[]byte("first"), {firstBump}},
		{[]byte("second"), {secondBump}},
	})
	require.NoError(t, err)
	assert.Equal(t, []ed25519.PublicKey{first, second}, signers)

	signers, err = ProgramSigners(keys[0], nil)
	require.NoError(t, err)
	assert.Empty(t, signers)
}

func generateKeys(t *testing.T, amount int) []ed25519.PublicKey {
	keys := make([]ed25519.PublicKey, amount)

	for i := 0; i < amount; i++ {
		pub, _, err := ed25519.GenerateKey(nil)
		require.NoError(t, err)

		keys[i] = pub
	}

	return keys
}
