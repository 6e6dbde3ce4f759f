package tokenmetadata

import (
	"crypto/ed25519"
	"errors"

	"github.com/code-payments/metadata-cpi/pkg/solana/system"
	"github.com/code-payments/metadata-cpi/pkg/solana/token"
)

var (
	ErrInvalidInstructionData = errors.New("unexpected instruction data")
	ErrInvalidPublicKey       = errors.New("invalid public key")
)

// ProgramKey is the address of the token metadata program.
//
// Current key: metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s
var ProgramKey = ed25519.PublicKey(mustBase58Decode("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s"))

var (
	SYSTEM_PROGRAM_ID           = system.ProgramKey
	SPL_TOKEN_PROGRAM_ID        = token.ProgramKey
	ASSOCIATED_TOKEN_PROGRAM_ID = token.AssociatedTokenAccountProgramKey

	SYSVAR_RENT_PUBKEY = system.RentSysVar
)
