package sse

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

const readChunkSize = 4096

// Decoder reads content deltas from an event stream body.
//
// A data payload that fails to parse is held as a pending fragment. Following
// lines that carry no marker of their own are appended to it until it parses,
// so a frame broken by a stray newline is merged instead of dropped. A pending
// fragment is discarded when a new data line or the end of the stream arrives.
type Decoder struct {
	r       io.Reader
	framer  *LineFramer
	readBuf []byte
	pending string
	maxLine int
	eof     bool
	done    bool
}

// NewDecoder returns a Decoder reading from r with DefaultMaxLineSize.
func NewDecoder(r io.Reader) *Decoder {
	return NewDecoderSize(r, DefaultMaxLineSize)
}

// NewDecoderSize returns a Decoder whose line buffer is bounded by maxLine.
func NewDecoderSize(r io.Reader, maxLine int) *Decoder {
	if maxLine <= 0 {
		maxLine = DefaultMaxLineSize
	}
	return &Decoder{
		r:       r,
		framer:  NewLineFramer(maxLine),
		readBuf: make([]byte, readChunkSize),
		maxLine: maxLine,
	}
}

// Next returns the next non-empty content delta. It returns io.EOF once the
// terminator line has been seen or the body is exhausted. Any other error
// comes from the underlying reader, from an oversized line, or is an
// ErrStreamEvent carrying the message of an error frame sent by the server.
func (d *Decoder) Next() (string, error) {
	for {
		if d.done {
			return "", io.EOF
		}

		line, ok := d.framer.Next()
		if !ok {
			if !d.eof {
				if err := d.fill(); err != nil {
					return "", err
				}
				continue
			}
			line = d.framer.Flush()
			if line == nil {
				d.finish()
				continue
			}
		}

		content, err := d.handleLine(string(line))
		if err != nil {
			return "", err
		}
		if content != "" {
			return content, nil
		}
	}
}

func (d *Decoder) fill() error {
	n, err := d.r.Read(d.readBuf)
	if n > 0 {
		if _, werr := d.framer.Write(d.readBuf[:n]); werr != nil {
			return werr
		}
	}
	if errors.Is(err, io.EOF) {
		d.eof = true
		return nil
	}
	return err
}

func (d *Decoder) handleLine(line string) (string, error) {
	kind, payload := classifyLine(line)
	switch {
	case kind == lineData:
		d.dropPending("superseded by a new event")
		return d.handlePayload(payload)
	case kind == lineOther && d.pending != "":
		joined := d.pending + line
		d.pending = ""
		return d.handlePayload(joined)
	default:
		return "", nil
	}
}

func (d *Decoder) handlePayload(payload string) (string, error) {
	ev, err := parsePayload(payload)
	if err != nil {
		if len(payload) > d.maxLine {
			return "", ErrLineTooLong
		}
		d.pending = payload
		return "", nil
	}
	switch ev.kind {
	case eventDone:
		d.finish()
	case eventError:
		d.finish()
		return "", fmt.Errorf("%w: %s", ErrStreamEvent, ev.content)
	}
	return ev.content, nil
}

func (d *Decoder) finish() {
	d.dropPending("stream ended")
	d.done = true
}

func (d *Decoder) dropPending(reason string) {
	if d.pending == "" {
		return
	}
	slog.Warn("Discarding unparseable stream frame", "reason", reason, "bytes", len(d.pending))
	d.pending = ""
}
