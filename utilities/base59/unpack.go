package base59

import (
	"errors"
	"fmt"
)

// ErrInvalidSymbol is returned by [Unpack] for a character outside [Alphabet].
var ErrInvalidSymbol = errors.New("character not in alphabet")

// ErrGroupOverflow is returned by [Unpack] when 8 digits add up to a value
// that doesn't fit in 47 bits, which [Pack] can never produce.
var ErrGroupOverflow = errors.New("digit group exceeds 47 bits")

// Unpack reverses [Pack]. It expects the string as the host sees it, that is,
// with the single newline after the opening bracket already discarded.
//
// Missing digits at the end are treated as zero. The result is rounded up to a
// whole number of bytes, so it can be longer than the data that was packed; the
// extra bytes are all zero.
func Unpack(value string) ([]byte, error) {
	groups := (len(value) + GroupDigits - 1) / GroupDigits
	output := make([]byte, (groups*GroupBits+7)/8)

	for g := 0; g < groups; g++ {
		start := g * GroupDigits
		end := start + GroupDigits
		if end > len(value) {
			end = len(value)
		}

		group, err := readDigits(value[start:end])
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", g, err)
		}
		writeGroup(output, g*GroupBits, group)
	}
	return output, nil
}

func readDigits(digits string) (uint64, error) {
	value := uint64(0)
	for i := len(digits) - 1; i >= 0; i-- {
		digit, ok := Digit(digits[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, digits[i])
		}
		value = value*Radix + uint64(digit)
	}
	if value > groupMask {
		return 0, fmt.Errorf("%w: %d", ErrGroupOverflow, value)
	}
	return value, nil
}

// writeGroup ORs the 47 bits of value into output starting at bitCursor,
// dropping any that land past the end.
func writeGroup(output []byte, bitCursor int, value uint64) {
	shifted := value << (bitCursor % 8)
	for i := bitCursor / 8; i < len(output) && shifted != 0; i++ {
		output[i] |= byte(shifted)
		shifted >>= 8
	}
}
