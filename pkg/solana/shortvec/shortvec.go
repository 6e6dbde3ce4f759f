// Package shortvec implements the compact-u16 length encoding used by the
// Solana wire format.
package shortvec

import (
	"fmt"
	"io"
	"math"
)

// maxEncodedLen is the number of bytes needed to encode math.MaxUint16.
const maxEncodedLen = 3

// EncodeLen encodes the specified len into the writer.
//
// If len > math.MaxUint16, an error is returned.
func EncodeLen(w io.Writer, len int) (n int, err error) {
	if len < 0 || len > math.MaxUint16 {
		return 0, fmt.Errorf("len must be within [0, %d]", math.MaxUint16)
	}

	var encoded [maxEncodedLen]byte
	size := 0
	for {
		encoded[size] = byte(len & 0x7f)
		len >>= 7
		if len == 0 {
			size++
			break
		}

		encoded[size] |= 0x80
		size++
	}

	return w.Write(encoded[:size])
}

// DecodeLen decodes a shortvec encoded len from the reader.
func DecodeLen(r io.Reader) (val int, err error) {
	var b [1]byte
	for offset := 0; offset < maxEncodedLen; offset++ {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, err
		}

		val |= int(b[0]&0x7f) << (offset * 7)
		if b[0]&0x80 == 0 {
			return val, nil
		}
	}

	return 0, fmt.Errorf("invalid size: exceeds %d bytes", maxEncodedLen)
}
