package tokenmetadata

import (
	"crypto/ed25519"
	"testing"

	"github.com/mr-tron/base58/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/metadata-cpi/pkg/solana"
)

var (
	usdcMint      = ed25519.PublicKey(mustBase58Decode("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"))
	testAuthority = ed25519.PublicKey(mustBase58Decode("SeedPubey1111111111111111111111111111111111"))
)

func TestProgramKey(t *testing.T) {
	assert.Equal(t, "metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s", base58.Encode(ProgramKey))
	assert.Equal(t, "11111111111111111111111111111111", base58.Encode(SYSTEM_PROGRAM_ID))
	assert.Equal(t, "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA", base58.Encode(SPL_TOKEN_PROGRAM_ID))
	assert.Equal(t, "ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL", base58.Encode(ASSOCIATED_TOKEN_PROGRAM_ID))
	assert.Equal(t, "SysvarRent111111111111111111111111111111111", base58.Encode(SYSVAR_RENT_PUBKEY))
}

func TestGetMetadataAddress(t *testing.T) {
	address, bump, err := GetMetadataAddress(&GetMetadataAddressArgs{
		Mint: usdcMint,
	})
	require.NoError(t, err)
	assert.Equal(t, "5x38Kp4hvdomTCnCrAny4UtMUt5rQBdB6px2K1Ui45Wq", base58.Encode(address))
	assert.EqualValues(t, 255, bump)

	recreated, err := solana.CreateProgramAddress(ProgramKey, []byte(Prefix), ProgramKey, usdcMint, []byte{bump})
	require.NoError(t, err)
	assert.Equal(t, address, recreated)
}

func TestGetMasterEditionAddress(t *testing.T) {
	address, bump, err := GetMasterEditionAddress(&GetMasterEditionAddressArgs{
		Mint: usdcMint,
	})
	require.NoError(t, err)
	assert.Equal(t, "A7FGB2kzjpDPRLMeqRLgW9XZ3JQ2RYRL4w5kUZv64ZB", base58.Encode(address))
	assert.EqualValues(t, 252, bump)
}

func TestGetEditionMarkerAddress(t *testing.T) {
	for _, tc := range []struct {
		edition  uint64
		expected string
	}{
		{0, "D6qU7Y8AJHZuQqZLvKW75ZkSjHatVpDUVrrHxMbGeKoC"},
		{EditionMarkerBitSize - 1, "D6qU7Y8AJHZuQqZLvKW75ZkSjHatVpDUVrrHxMbGeKoC"},
		{500, "5WDrstw1S121yZJbJTMfkzAzRtViywVdpeYfaknvF5Lx"},
		{2*EditionMarkerBitSize + 1, "5WDrstw1S121yZJbJTMfkzAzRtViywVdpeYfaknvF5Lx"},
	} {
		address, _, err := GetEditionMarkerAddress(&GetEditionMarkerAddressArgs{
			Mint:    usdcMint,
			Edition: tc.edition,
		})
		require.NoError(t, err)
		assert.Equal(t, tc.expected, base58.Encode(address), tc.edition)
	}

	first, _, err := GetEditionMarkerAddress(&GetEditionMarkerAddressArgs{Mint: usdcMint, Edition: EditionMarkerBitSize - 1})
	require.NoError(t, err)
	second, _, err := GetEditionMarkerAddress(&GetEditionMarkerAddressArgs{Mint: usdcMint, Edition: EditionMarkerBitSize})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestGetAuthorityRecordAddresses(t *testing.T) {
	address, _, err := GetUseAuthorityRecordAddress(&GetUseAuthorityRecordAddressArgs{
		Mint:         usdcMint,
		UseAuthority: testAuthority,
	})
	require.NoError(t, err)
	assert.Equal(t, "EoSgAjEstqXvS6voQHPr8wkq7ofFFeSnghCsQ3CWz9q", base58.Encode(address))

	address, _, err = GetCollectionAuthorityRecordAddress(&GetCollectionAuthorityRecordAddressArgs{
		Mint:                usdcMint,
		CollectionAuthority: testAuthority,
	})
	require.NoError(t, err)
	assert.Equal(t, "AaSkM3dvRqsj158MAeeK1EP1Jie52q36zQZauWrjgcxf", base58.Encode(address))
}

func TestGetBurnerAddress(t *testing.T) {
	address, bump, err := GetBurnerAddress()
	require.NoError(t, err)
	assert.Equal(t, "GKv5PeCxKBCDezo4FMVjjRbkUfoou9PRvPKdzaFEwjXi", base58.Encode(address))
	assert.EqualValues(t, 255, bump)
}
