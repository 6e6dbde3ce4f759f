// Package computebudget builds instructions of the compute budget program,
// which set the compute unit limit and priority fee of a transaction.
package computebudget

import (
	"bytes"
	"crypto/ed25519"
	"encoding/binary"

	"github.com/mr-tron/base58/base58"
	"github.com/pkg/errors"

	"github.com/code-payments/metadata-cpi/pkg/solana"
)

// ProgramKey is the address of the compute budget program.
var ProgramKey = mustDecode("ComputeBudget111111111111111111111111111111")

var ErrInvalidInstructionData = errors.New("invalid compute budget instruction data")

type instructionType uint8

const (
	instructionTypeRequestUnits instructionType = iota
	instructionTypeRequestHeapFrame
	instructionTypeSetComputeUnitLimit
	instructionTypeSetComputeUnitPrice
)

// SetComputeUnitLimit caps the compute units the transaction may consume.
func SetComputeUnitLimit(limit uint32) solana.Instruction {
	data := make([]byte, 5)
	data[0] = byte(instructionTypeSetComputeUnitLimit)
	binary.LittleEndian.PutUint32(data[1:], limit)

	return solana.NewInstruction(ProgramKey, data)
}

// SetComputeUnitPrice sets the priority fee, in micro-lamports per compute
// unit.
func SetComputeUnitPrice(microLamports uint64) solana.Instruction {
	data := make([]byte, 9)
	data[0] = byte(instructionTypeSetComputeUnitPrice)
	binary.LittleEndian.PutUint64(data[1:], microLamports)

	return solana.NewInstruction(ProgramKey, data)
}

func ParseSetComputeUnitLimit(ix solana.Instruction) (uint32, error) {
	if err := checkInstruction(ix, instructionTypeSetComputeUnitLimit, 5); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(ix.Data[1:]), nil
}

func ParseSetComputeUnitPrice(ix solana.Instruction) (uint64, error) {
	if err := checkInstruction(ix, instructionTypeSetComputeUnitPrice, 9); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(ix.Data[1:]), nil
}

func checkInstruction(ix solana.Instruction, expected instructionType, size int) error {
	if !bytes.Equal(ix.Program, ProgramKey) {
		return solana.ErrIncorrectProgram
	}
	if len(ix.Data) != size {
		return errors.Wrapf(ErrInvalidInstructionData, "expected %d bytes, got %d", size, len(ix.Data))
	}
	if instructionType(ix.Data[0]) != expected {
		return errors.Wrapf(ErrInvalidInstructionData, "unexpected instruction type %d", ix.Data[0])
	}
	return nil
}

func mustDecode(value string) ed25519.PublicKey {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
