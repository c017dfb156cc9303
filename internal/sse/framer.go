// Package sse decodes the line-oriented event stream produced by
// OpenAI-compatible chat-completion gateways.
package sse

import (
	"bytes"
	"errors"
)

// DefaultMaxLineSize bounds the bytes buffered while waiting for a newline.
const DefaultMaxLineSize = 1 << 20

// ErrLineTooLong is returned when more than the framer's limit is buffered
// without seeing a line delimiter.
var ErrLineTooLong = errors.New("sse: line exceeds buffer limit")

// LineFramer splits an incoming byte stream into '\n'-delimited lines.
//
// Bytes are framed before any text decoding. '\n' never occurs inside a
// multi-byte UTF-8 sequence, so a character split across two reads is
// reassembled in the buffer before the line holding it is handed out.
type LineFramer struct {
	buf []byte
	// scanned is the prefix of buf already known to contain no '\n'.
	scanned int
	max     int
}

// NewLineFramer returns a framer buffering at most max bytes of an
// unterminated line. A non-positive max selects DefaultMaxLineSize.
func NewLineFramer(max int) *LineFramer {
	if max <= 0 {
		max = DefaultMaxLineSize
	}
	return &LineFramer{max: max}
}

// Write appends p to the pending buffer.
func (f *LineFramer) Write(p []byte) (int, error) {
	f.buf = append(f.buf, p...)
	if bytes.IndexByte(f.buf[f.scanned:], '\n') < 0 && len(f.buf) > f.max {
		return len(p), ErrLineTooLong
	}
	return len(p), nil
}

// Next returns the next complete line without its terminator and without a
// trailing '\r'. ok is false when no delimiter is buffered yet; the caller
// must Write more bytes before asking again.
func (f *LineFramer) Next() (line []byte, ok bool) {
	i := bytes.IndexByte(f.buf[f.scanned:], '\n')
	if i < 0 {
		f.scanned = len(f.buf)
		return nil, false
	}
	end := f.scanned + i
	line = bytes.TrimSuffix(f.buf[:end], []byte{'\r'})
	line = append([]byte(nil), line...)

	f.buf = f.buf[end+1:]
	f.scanned = 0
	if len(f.buf) == 0 {
		f.buf = nil
	}
	return line, true
}

// Flush returns whatever is left in the buffer as a final, unterminated line
// and resets the framer. It returns nil when nothing is buffered.
func (f *LineFramer) Flush() []byte {
	if len(f.buf) == 0 {
		return nil
	}
	line := bytes.TrimSuffix(f.buf, []byte{'\r'})
	f.buf = nil
	f.scanned = 0
	return line
}

