package stream

import (
	"bufio"
	"io"
	"strings"

	"github.com/variantkit/feen/feen"
)

// MaxLineSize is the default limit on a single record line.
const MaxLineSize = 1 << 20

// Reader reads FEEN records from an io.Reader, one per line.
type Reader struct {
	sc   *bufio.Scanner
	opts feen.PositionOptions
	line int
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithStrict makes the reader reject non-canonical reserve fields.
func WithStrict() ReaderOption {
	return func(r *Reader) {
		r.opts.Strict = true
	}
}

// WithCodec sets the piece codec used for every record.
func WithCodec(codec feen.PieceCodec) ReaderOption {
	return func(r *Reader) {
		r.opts.Codec = codec
	}
}

// WithMaxLineSize sets the maximum record line length in bytes.
func WithMaxLineSize(n int) ReaderOption {
	return func(r *Reader) {
		r.sc.Buffer(make([]byte, 0, 64*1024), n)
	}
}

// NewReader creates a record reader.
func NewReader(src io.Reader, opts ...ReaderOption) *Reader {
	r := &Reader{
		sc:   bufio.NewScanner(src),
		opts: feen.DefaultPositionOptions(),
	}
	r.sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Next returns the next record, skipping blank and comment lines. Returns
// io.EOF when the input is exhausted. A codec failure is returned as a
// *RecordError and does not stop the reader; callers may keep calling Next
// to collect every invalid line.
func (r *Reader) Next() (*Record, error) {
	for r.sc.Scan() {
		r.line++
		text := strings.TrimSpace(r.sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		pos, err := feen.ParsePositionWithOptions(text, r.opts)
		if err != nil {
			return nil, &RecordError{Line: r.line, Err: err}
		}
		return &Record{Line: r.line, Text: text, Position: pos}, nil
	}
	if err := r.sc.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}
