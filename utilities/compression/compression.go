package compression

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zlib"
	"github.com/noxer/bytewriter"
)

// BestCompression is the effort level the pipeline always uses.
const BestCompression = zlib.BestCompression

const (
	zlibHeaderSize  = 2
	zlibTrailerSize = 4

	// minimumCapacity keeps tiny inputs from starting with a buffer that can't
	// even hold the zlib framing.
	minimumCapacity = 64

	// maxGrowAttempts bounds the number of times the output buffer is doubled.
	// One doubling past 2x the input size is already far beyond the worst case
	// expansion of DEFLATE's stored blocks.
	maxGrowAttempts = 8
)

var errOutOfHeadroom = errors.New("compressed output exceeded buffer")

// Compressor is a single-shot compression backend. Implementations return the
// compressed form of data using the given effort level.
type Compressor interface {
	Compress(data []byte, level int) ([]byte, error)
}

// RawDeflate is a [Compressor] that returns bare DEFLATE blocks, without zlib
// framing.
type RawDeflate struct {
	// HeadroomFactor is the multiple of the input size allocated for the first
	// compression attempt.
	HeadroomFactor int
}

// NewRawDeflate returns a RawDeflate that first allocates twice the input size
// for output.
func NewRawDeflate() *RawDeflate {
	return &RawDeflate{HeadroomFactor: 2}
}

// Compress compresses data and strips the 2-byte zlib header and 4-byte
// checksum trailer from the result.
//
// If the compressed stream doesn't fit in the output buffer, the buffer is
// doubled and compression starts over. Any other failure is returned as-is.
func (d *RawDeflate) Compress(data []byte, level int) ([]byte, error) {
	capacity := d.HeadroomFactor * len(data)
	if capacity < minimumCapacity {
		capacity = minimumCapacity
	}

	for attempt := 0; attempt < maxGrowAttempts; attempt++ {
		payload, err := deflateInto(data, level, make([]byte, capacity))
		if err == nil {
			return payload, nil
		}
		if !errors.Is(err, errOutOfHeadroom) {
			return nil, err
		}
		capacity *= 2
	}
	return nil, fmt.Errorf(
		"%w: gave up after %d attempts (last buffer was %d bytes)",
		errOutOfHeadroom,
		maxGrowAttempts,
		capacity/2,
	)
}

// deflateInto compresses data into buffer and returns the raw payload, which
// aliases buffer.
func deflateInto(data []byte, level int, buffer []byte) ([]byte, error) {
	sink := &boundedSink{writer: bytewriter.New(buffer), capacity: len(buffer)}

	zWriter, err := zlib.NewWriterLevel(sink, level)
	if err != nil {
		return nil, fmt.Errorf("can't create compressor: %w", err)
	}

	_, err = zWriter.Write(data)
	if err != nil {
		return nil, sink.classify(err)
	}
	err = zWriter.Close()
	if err != nil {
		return nil, sink.classify(err)
	}

	if sink.written < zlibHeaderSize+zlibTrailerSize {
		return nil, fmt.Errorf(
			"compressor produced %d bytes, too short for zlib framing", sink.written)
	}
	return buffer[zlibHeaderSize : sink.written-zlibTrailerSize], nil
}

// Inflate decompresses a raw DEFLATE payload. Anything following the final
// block is ignored, so zero padding left over from unpacking is harmless.
func Inflate(payload []byte) ([]byte, error) {
	reader := flate.NewReader(bytes.NewReader(payload))
	defer reader.Close()

	output, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("error inflating payload: %w", err)
	}
	return output, nil
}

// boundedSink counts bytes written to a fixed-size buffer so that a write
// failure caused by running out of space can be told apart from any other.
type boundedSink struct {
	writer    io.Writer
	capacity  int
	written   int
	exhausted bool
}

func (s *boundedSink) Write(p []byte) (int, error) {
	n, err := s.writer.Write(p)
	s.written += n
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil && s.written >= s.capacity {
		s.exhausted = true
	}
	return n, err
}

func (s *boundedSink) classify(err error) error {
	if s.exhausted {
		return errOutOfHeadroom
	}
	return err
}
