package p8z

import (
	"strings"

	"github.com/dargueta/p8z/utilities/base59"
	"github.com/dargueta/p8z/utilities/compression"
	"github.com/dargueta/p8z/utilities/longstring"
)

// trailingSlack is added to the unpacked payload before inflating. Packing
// drops trailing zero digits, so whole groups of zero bits at the end of the
// payload never make it into the literal; the inflater still needs them.
const trailingSlack = 64

// Decode recovers the original bytes from a literal produced by [Encoder.Encode]
// with no bytes skipped. Surrounding whitespace is ignored.
//
// This plays the part of the runtime-side reader, so it's mainly useful for
// checking output.
func Decode(literal string) ([]byte, error) {
	value, err := longstring.Evaluate(strings.TrimSpace(literal))
	if err != nil {
		return nil, ErrMalformedLiteral.Wrap(err)
	}

	payload, err := base59.Unpack(value)
	if err != nil {
		return nil, ErrMalformedLiteral.Wrap(err)
	}
	payload = append(payload, make([]byte, trailingSlack)...)

	data, err := compression.Inflate(payload)
	if err != nil {
		return nil, ErrCorruptPayload.Wrap(err)
	}
	return data, nil
}
