package p8z

import (
	"github.com/dargueta/p8z/utilities/base59"
	"github.com/dargueta/p8z/utilities/compression"
	"github.com/dargueta/p8z/utilities/longstring"
	"github.com/sirupsen/logrus"
)

// Encoder turns arbitrary bytes into a PICO-8 string literal.
//
// Encoders hold no per-call state and may be reused.
type Encoder struct {
	compressor compression.Compressor
	logger     logrus.FieldLogger
}

// NewEncoder creates an Encoder that compresses with compressor. If logger is
// nil, nothing is logged.
func NewEncoder(compressor compression.Compressor, logger logrus.FieldLogger) *Encoder {
	if logger == nil {
		discard := logrus.New()
		discard.SetLevel(logrus.PanicLevel)
		logger = discard
	}
	return &Encoder{compressor: compressor, logger: logger}
}

// NewDefaultEncoder creates an Encoder backed by [compression.RawDeflate].
func NewDefaultEncoder(logger logrus.FieldLogger) *Encoder {
	return NewEncoder(compression.NewRawDeflate(), logger)
}

// Compress runs only the compression stage, at the highest effort level. The
// returned error, if any, is an [ErrCompressionFailed].
func (e *Encoder) Compress(input []byte) ([]byte, error) {
	payload, err := e.compressor.Compress(input, compression.BestCompression)
	if err != nil {
		return nil, ErrCompressionFailed.Wrap(err)
	}

	e.logger.WithFields(logrus.Fields{
		"input_size":   len(input),
		"payload_size": len(payload),
	}).Debug("Compressed input")
	return payload, nil
}

// EncodePayload packs an already compressed payload and wraps it in a string
// literal. It cannot fail.
func (e *Encoder) EncodePayload(payload []byte) string {
	packed := base59.Pack(payload)
	literal := longstring.Escape(packed)

	e.logger.WithFields(logrus.Fields{
		"payload_size": len(payload),
		"packed_size":  len(packed),
		"literal_size": len(literal),
	}).Debug("Encoded payload")
	return literal
}

// Encode runs the whole pipeline. The first skip bytes of the compressed
// payload are thrown away before packing.
func (e *Encoder) Encode(input []byte, skip int) (string, error) {
	payload, err := e.Compress(input)
	if err != nil {
		return "", err
	}

	if skip > 0 {
		e.logger.WithField("skip", skip).Debug("Skipping start of payload")
	}
	return e.EncodePayload(Skip(payload, skip)), nil
}

// Truncate returns at most the first count bytes of payload.
func Truncate(payload []byte, count int) []byte {
	if count < 0 {
		count = 0
	}
	if count > len(payload) {
		count = len(payload)
	}
	return payload[:count]
}

// Skip returns payload without its first skip bytes. Skipping more than the
// whole payload leaves nothing.
func Skip(payload []byte, skip int) []byte {
	if skip < 0 {
		skip = 0
	}
	if skip > len(payload) {
		skip = len(payload)
	}
	return payload[skip:]
}
