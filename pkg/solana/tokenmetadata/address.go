package tokenmetadata

import (
	"crypto/ed25519"
	"strconv"

	"github.com/code-payments/metadata-cpi/pkg/solana"
)

const (
	Prefix              = "metadata"
	Edition             = "edition"
	User                = "user"
	Burn                = "burn"
	CollectionAuthority = "collection_authority"

	// EditionMarkerBitSize is the number of editions tracked by a single
	// edition marker account.
	EditionMarkerBitSize = 248
)

var (
	metadataPrefix            = []byte(Prefix)
	editionPrefix             = []byte(Edition)
	userPrefix                = []byte(User)
	burnPrefix                = []byte(Burn)
	collectionAuthorityPrefix = []byte(CollectionAuthority)
)

type GetMetadataAddressArgs struct {
	Mint ed25519.PublicKey
}

func GetMetadataAddress(args *GetMetadataAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		ProgramKey,
		metadataPrefix,
		ProgramKey,
		args.Mint,
	)
}

type GetMasterEditionAddressArgs struct {
	Mint ed25519.PublicKey
}

// GetMasterEditionAddress returns the master edition address of a mint. Print
// editions live at the same derived address of their own mint.
func GetMasterEditionAddress(args *GetMasterEditionAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		ProgramKey,
		metadataPrefix,
		ProgramKey,
		args.Mint,
		editionPrefix,
	)
}

type GetEditionMarkerAddressArgs struct {
	Mint    ed25519.PublicKey
	Edition uint64
}

// GetEditionMarkerAddress returns the marker account tracking the provided
// edition number of a master edition mint.
func GetEditionMarkerAddress(args *GetEditionMarkerAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		ProgramKey,
		metadataPrefix,
		ProgramKey,
		args.Mint,
		editionPrefix,
		[]byte(strconv.FormatUint(args.Edition/EditionMarkerBitSize, 10)),
	)
}

type GetUseAuthorityRecordAddressArgs struct {
	Mint         ed25519.PublicKey
	UseAuthority ed25519.PublicKey
}

func GetUseAuthorityRecordAddress(args *GetUseAuthorityRecordAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		ProgramKey,
		metadataPrefix,
		ProgramKey,
		args.Mint,
		userPrefix,
		args.UseAuthority,
	)
}

type GetCollectionAuthorityRecordAddressArgs struct {
	Mint                ed25519.PublicKey
	CollectionAuthority ed25519.PublicKey
}

func GetCollectionAuthorityRecordAddress(args *GetCollectionAuthorityRecordAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		ProgramKey,
		metadataPrefix,
		ProgramKey,
		args.Mint,
		collectionAuthorityPrefix,
		args.CollectionAuthority,
	)
}

// GetBurnerAddress returns the program's burn authority, which is delegated
// on token accounts with burnable uses.
func GetBurnerAddress() (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		ProgramKey,
		metadataPrefix,
		ProgramKey,
		burnPrefix,
	)
}
