package cpi

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58/base58"
	"github.com/pkg/errors"

	"github.com/code-payments/metadata-cpi/pkg/solana"
)

var (
	ErrIncorrectProgram    = solana.ErrIncorrectProgram
	ErrMissingAccount      = errors.New("instruction account not provided")
	ErrPrivilegeEscalation = errors.New("privilege escalation")
	ErrInvalidSeeds        = errors.New("invalid signer seeds")
)

// VerifyInvocation applies the checks the runtime performs before executing
// an invocation issued by caller:
//
//   - every account referenced by ix is present in accounts
//   - every signer seed set derives a program address of caller
//   - every signer of ix is a signer in accounts, or one of those addresses
//   - every writable account of ix is writable in accounts
//
// An account listed more than once in accounts holds the union of its
// privileges.
func VerifyInvocation(caller ed25519.PublicKey, ix solana.Instruction, accounts []AccountInfo, signerSeeds [][][]byte) error {
	derived, err := ProgramSigners(caller, signerSeeds)
	if err != nil {
		return err
	}

	programSigners := make(map[string]struct{}, len(derived))
	for _, address := range derived {
		programSigners[string(address)] = struct{}{}
	}

	provided := make(map[string]AccountInfo, len(accounts))
	for _, info := range accounts {
		key := string(info.PublicKey)
		existing := provided[key]
		provided[key] = AccountInfo{
			PublicKey:  info.PublicKey,
			IsSigner:   existing.IsSigner || info.IsSigner,
			IsWritable: existing.IsWritable || info.IsWritable,
		}
	}

	for i, meta := range ix.Accounts {
		info, ok := provided[string(meta.PublicKey)]
		if !ok {
			return errors.Wrapf(ErrMissingAccount, "account %d (%s)", i, base58.Encode(meta.PublicKey))
		}

		if meta.IsWritable && !info.IsWritable {
			return errors.Wrapf(ErrPrivilegeEscalation, "account %d (%s) is not writable", i, base58.Encode(meta.PublicKey))
		}

		if meta.IsSigner && !info.IsSigner {
			if _, ok := programSigners[string(meta.PublicKey)]; !ok {
				return errors.Wrapf(ErrPrivilegeEscalation, "account %d (%s) did not sign", i, base58.Encode(meta.PublicKey))
			}
		}
	}

	return nil
}

// ProgramSigners returns the program derived addresses of caller produced by
// signerSeeds.
func ProgramSigners(caller ed25519.PublicKey, signerSeeds [][][]byte) ([]ed25519.PublicKey, error) {
	signers := make([]ed25519.PublicKey, 0, len(signerSeeds))
	for i, seeds := range signerSeeds {
		address, err := solana.CreateProgramAddress(caller, seeds...)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidSeeds, "signer seeds %d: %v", i, err)
		}
		signers = append(signers, address)
	}
	return signers, nil
}
