package base59

import (
	"strings"
)

const groupMask = uint64(1)<<GroupBits - 1

// Pack encodes data as base-59 text.
//
// Trailing newline symbols are removed, since they only ever come from zero
// bits. If the result then starts with a newline symbol, another one is put in
// front of it to make up for the host discarding the first newline after a
// long string's opening bracket.
func Pack(data []byte) string {
	totalBits := len(data) * 8
	var builder strings.Builder
	builder.Grow((totalBits + GroupBits - 1) / GroupBits * GroupDigits)

	for bitCursor := 0; bitCursor < totalBits; bitCursor += GroupBits {
		value := readGroup(data, bitCursor)
		for i := 0; i < GroupDigits; i++ {
			builder.WriteByte(Alphabet[value%Radix])
			value /= Radix
		}
	}

	text := strings.TrimRight(builder.String(), string(NewlineSymbol))
	if len(text) > 0 && text[0] == NewlineSymbol {
		text = string(NewlineSymbol) + text
	}
	return text
}

// readGroup returns the 47 bits of data starting at bitCursor. Bits past the
// end of data are zero.
func readGroup(data []byte, bitCursor int) uint64 {
	firstByte := bitCursor / 8
	lastByte := (bitCursor + GroupBits - 1) / 8

	// At most 7 bytes are touched: a 7-bit offset plus 47 bits is 54 bits.
	value := uint64(0)
	for i := firstByte; i <= lastByte && i < len(data); i++ {
		value |= uint64(data[i]) << ((i - firstByte) * 8)
	}
	return (value >> (bitCursor % 8)) & groupMask
}
