package tokenmetadata

import (
	"bytes"
	"crypto/ed25519"

	bin "github.com/gagliardetto/binary"
	"github.com/mr-tron/base58/base58"
	"github.com/pkg/errors"
)

// marshalInstructionData encodes the instruction type followed by the Borsh
// encoded args. args may be nil for instructions without arguments.
//
// Args holding malformed keys panic here; callers validate them first.
func marshalInstructionData(instructionType InstructionType, args bin.BinaryMarshaler) []byte {
	var buf bytes.Buffer
	encoder := bin.NewBorshEncoder(&buf)

	// Writes into a bytes.Buffer never fail.
	if err := encoder.WriteUint8(uint8(instructionType)); err != nil {
		panic(err)
	}
	if args != nil {
		if err := args.MarshalWithEncoder(encoder); err != nil {
			panic(err)
		}
	}

	return buf.Bytes()
}

// UnmarshalInstructionArgs validates the instruction type and decodes the
// remaining instruction data into args.
func UnmarshalInstructionArgs(data []byte, instructionType InstructionType, args bin.BinaryUnmarshaler) error {
	actual, err := GetInstructionType(data)
	if err != nil {
		return err
	}
	if actual != instructionType {
		return errors.Wrapf(ErrInvalidInstructionData, "expected instruction type %d, got %d", instructionType, actual)
	}

	decoder := bin.NewBorshDecoder(data[1:])
	if err := args.UnmarshalWithDecoder(decoder); err != nil {
		return errors.Wrap(ErrInvalidInstructionData, err.Error())
	}
	if decoder.HasRemaining() {
		return errors.Wrap(ErrInvalidInstructionData, "trailing bytes")
	}
	return nil
}

// ValidatePublicKey returns ErrInvalidPublicKey unless v is ed25519.PublicKeySize bytes.
func ValidatePublicKey(v ed25519.PublicKey) error {
	if len(v) != ed25519.PublicKeySize {
		return errors.Wrapf(ErrInvalidPublicKey, "expected %d bytes, got %d", ed25519.PublicKeySize, len(v))
	}
	return nil
}

func putKey(encoder *bin.Encoder, v ed25519.PublicKey) error {
	if err := ValidatePublicKey(v); err != nil {
		return err
	}
	return encoder.WriteBytes(v, false)
}

func getKey(decoder *bin.Decoder) (ed25519.PublicKey, error) {
	raw, err := decoder.ReadNBytes(ed25519.PublicKeySize)
	if err != nil {
		return nil, err
	}
	key := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(key, raw)
	return key, nil
}

func putOptionalKey(encoder *bin.Encoder, v ed25519.PublicKey) error {
	if err := encoder.WriteOption(v != nil); err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	return putKey(encoder, v)
}

func getOptionalKey(decoder *bin.Decoder) (ed25519.PublicKey, error) {
	ok, err := decoder.ReadOption()
	if err != nil || !ok {
		return nil, err
	}
	return getKey(decoder)
}

func putOptionalBool(encoder *bin.Encoder, v *bool) error {
	if err := encoder.WriteOption(v != nil); err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	return encoder.WriteBool(*v)
}

func getOptionalBool(decoder *bin.Decoder) (*bool, error) {
	ok, err := decoder.ReadOption()
	if err != nil || !ok {
		return nil, err
	}
	v, err := decoder.ReadBool()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func putOptionalUint64(encoder *bin.Encoder, v *uint64) error {
	if err := encoder.WriteOption(v != nil); err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	return encoder.WriteUint64(*v, bin.LE)
}

func getOptionalUint64(decoder *bin.Decoder) (*uint64, error) {
	ok, err := decoder.ReadOption()
	if err != nil || !ok {
		return nil, err
	}
	v, err := decoder.ReadUint64(bin.LE)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func mustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
