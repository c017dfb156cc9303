// Package audio decodes recorded audio uploaded as base64 text.
package audio

import (
	"encoding/base64"
	"fmt"
	"strings"

	app_errors "study-buddy/backend/internal/errors"
)

// ChunkSize is the number of base64 characters decoded per step. It is a
// multiple of 4 so every chunk but the last decodes without padding.
const ChunkSize = 32768

// DecodeBase64 decodes s in ChunkSize pieces into a single buffer sized up
// front, so no intermediate copy of the whole payload is held.
func DecodeBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: no audio data provided", app_errors.ErrValidation)
	}

	out := make([]byte, base64.StdEncoding.DecodedLen(len(s)))
	n := 0
	for start := 0; start < len(s); start += ChunkSize {
		end := min(start+ChunkSize, len(s))
		written, err := base64.StdEncoding.Decode(out[n:], []byte(s[start:end]))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid base64 audio at offset %d: %v", app_errors.ErrValidation, start, err)
		}
		n += written
	}
	return out[:n], nil
}
