// Package memo builds instructions of the SPL memo program.
package memo

import (
	"bytes"
	"crypto/ed25519"

	"github.com/mr-tron/base58/base58"

	"github.com/code-payments/metadata-cpi/pkg/solana"
)

// ProgramKey is the address of the v1 memo program, which accepts memos
// without requiring signers.
var ProgramKey ed25519.PublicKey

func init() {
	decoded, err := base58.Decode("Memo1UhkJRfHyvLMcVucJwxXeuD728EqVDDwQDxFMNo")
	if err != nil {
		panic(err)
	}
	ProgramKey = decoded
}

// Instruction returns an instruction recording text in the transaction logs.
func Instruction(text string) solana.Instruction {
	return solana.NewInstruction(ProgramKey, []byte(text))
}

// Parse returns the text of a memo instruction.
func Parse(ix solana.Instruction) (string, error) {
	if !bytes.Equal(ix.Program, ProgramKey) {
		return "", solana.ErrIncorrectProgram
	}
	return string(ix.Data), nil
}
