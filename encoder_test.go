package p8z_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/dargueta/p8z"
	ptesting "github.com/dargueta/p8z/testing"
	"github.com/dargueta/p8z/utilities/compression"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingCompressor stands in for a backend that reports an error.
type failingCompressor struct {
	err error
}

func (c failingCompressor) Compress(data []byte, level int) ([]byte, error) {
	return nil, c.err
}

// identityCompressor returns its input untouched, so payloads can be chosen
// directly by the test.
type identityCompressor struct {
	levels []int
}

func (c *identityCompressor) Compress(data []byte, level int) ([]byte, error) {
	c.levels = append(c.levels, level)
	return data, nil
}

func TestEncoder__RoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"empty":      {},
		"one_byte":   {0x42},
		"text":       []byte("function _draw()\n  cls()\n  spr(1, 64, 64)\nend\n"),
		"repetitive": bytes.Repeat([]byte("]]\n[[["), 300),
		"random":     ptesting.RandomBytes(t, 5000),
	}

	encoder := p8z.NewDefaultEncoder(nil)
	for name, input := range inputs {
		t.Run(
			name,
			func(t *testing.T) {
				literal, err := encoder.Encode(input, 0)
				require.NoError(t, err)

				decoded, err := p8z.Decode(literal)
				require.NoError(t, err)
				assert.Equal(t, len(input), len(decoded), "decoded data has wrong size")
				assert.True(t, bytes.Equal(input, decoded), "decoded data is wrong")
			},
		)
	}
}

func TestEncoder__EmptyInputIsWellFormed(t *testing.T) {
	literal, err := p8z.NewDefaultEncoder(nil).Encode(nil, 0)
	require.NoError(t, err)
	assert.Regexp(t, `(?s)^\[\[.*(\]\]|\]\.\.'\]')$`, literal)
}

func TestEncoder__CompressionFailure(t *testing.T) {
	backendErr := errors.New("out of memory")
	encoder := p8z.NewEncoder(failingCompressor{err: backendErr}, nil)

	_, err := encoder.Encode([]byte("abc"), 0)
	assert.ErrorIs(t, err, p8z.ErrCompressionFailed)
	assert.ErrorIs(t, err, backendErr)

	_, err = encoder.Compress([]byte("abc"))
	assert.ErrorIs(t, err, p8z.ErrCompressionFailed)
}

func TestEncoder__AlwaysBestCompression(t *testing.T) {
	compressor := &identityCompressor{}
	encoder := p8z.NewEncoder(compressor, nil)

	_, err := encoder.Encode([]byte("abc"), 0)
	require.NoError(t, err)
	_, err = encoder.Compress([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, []int{compression.BestCompression, compression.BestCompression}, compressor.levels)
}

func TestEncoder__EncodePayloadGolden(t *testing.T) {
	encoder := p8z.NewEncoder(&identityCompressor{}, nil)
	for _, test := range ptesting.LoadPackingCases(t) {
		t.Run(
			test.Name,
			func(t *testing.T) {
				assert.Equal(t, test.Literal, encoder.EncodePayload(test.Input))

				literal, err := encoder.Encode(test.Input, 0)
				require.NoError(t, err)
				assert.Equal(t, test.Literal, literal)
			},
		)
	}
}

func TestEncoder__Skip(t *testing.T) {
	encoder := p8z.NewEncoder(&identityCompressor{}, nil)

	literal, err := encoder.Encode([]byte{0xaa, 0xbb, 0xff}, 2)
	require.NoError(t, err)
	assert.Equal(t, "[[t9]]", literal, "should be the same as packing 0xff")

	literal, err = encoder.Encode([]byte{1, 2, 3}, 100)
	require.NoError(t, err)
	assert.Equal(t, "[[]]", literal, "skipping everything leaves an empty payload")
}

func TestEncoder__Logs(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	encoder := p8z.NewEncoder(&identityCompressor{}, logger)
	_, err := encoder.Encode([]byte("hello"), 1)
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.Len(t, entries, 3)
	assert.Equal(t, "Compressed input", entries[0].Message)
	assert.Equal(t, 5, entries[0].Data["input_size"])
	assert.Equal(t, 1, entries[1].Data["skip"])
	assert.Equal(t, 4, entries[2].Data["payload_size"])
}

func TestTruncate(t *testing.T) {
	payload := []byte{1, 2, 3, 4}
	assert.Empty(t, p8z.Truncate(payload, 0))
	assert.Empty(t, p8z.Truncate(payload, -3))
	assert.Equal(t, []byte{1, 2}, p8z.Truncate(payload, 2))
	assert.Equal(t, payload, p8z.Truncate(payload, 4))
	assert.Equal(t, payload, p8z.Truncate(payload, 1000))
}

func TestSkip(t *testing.T) {
	payload := []byte{1, 2, 3, 4}
	assert.Equal(t, payload, p8z.Skip(payload, 0))
	assert.Equal(t, payload, p8z.Skip(payload, -1))
	assert.Equal(t, []byte{3, 4}, p8z.Skip(payload, 2))
	assert.Empty(t, p8z.Skip(payload, 4))
	assert.Empty(t, p8z.Skip(payload, 1000))
}
