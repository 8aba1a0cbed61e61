package base59

import (
	"fmt"

	"github.com/boljen/go-bitmap"
)

// Alphabet maps digit values to characters; digit i is written as Alphabet[i].
// The order is fixed by the runtime-side decoder and must never change.
const Alphabet = "\ny={9,570123468functio[lshrabdegjkmpqvwxz!#%()]}<>+/*:;.~_ "

const (
	// Radix is the number of symbols in [Alphabet].
	Radix = 59
	// GroupBits is the number of input bits encoded by one group of digits.
	GroupBits = 47
	// GroupDigits is the number of characters each group is written as.
	GroupDigits = 8
	// NewlineSymbol is the character for digit 0. Zero-extended groups end in
	// runs of it, and the host drops it when it directly follows "[[".
	NewlineSymbol byte = '\n'
)

var digitValues [256]int8

func init() {
	if err := ValidateAlphabet(Alphabet); err != nil {
		panic(err)
	}

	for i := range digitValues {
		digitValues[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		digitValues[Alphabet[i]] = int8(i)
	}
}

// ValidateAlphabet checks that alphabet has exactly [Radix] characters and
// that none of them repeats.
func ValidateAlphabet(alphabet string) error {
	if len(alphabet) != Radix {
		return fmt.Errorf(
			"alphabet must have %d characters, got %d", Radix, len(alphabet))
	}

	seen := bitmap.New(256)
	for i := 0; i < len(alphabet); i++ {
		c := int(alphabet[i])
		if seen.Get(c) {
			return fmt.Errorf("character %q at index %d is a duplicate", alphabet[i], i)
		}
		seen.Set(c, true)
	}
	return nil
}

// Contains reports whether c is a character of [Alphabet].
func Contains(c byte) bool {
	return digitValues[c] >= 0
}

// Digit returns the digit value of c, or false if c isn't in [Alphabet].
func Digit(c byte) (int, bool) {
	value := digitValues[c]
	return int(value), value >= 0
}
