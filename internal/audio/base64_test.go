package audio

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "study-buddy/backend/internal/errors"
)

func TestDecodeBase64(t *testing.T) {
	sizes := []int{1, 2, 3, 100, ChunkSize/4*3 - 1, ChunkSize / 4 * 3, ChunkSize/4*3 + 1, 3*ChunkSize + 17}

	for _, size := range sizes {
		payload := bytes.Repeat([]byte{0x1a, 0x45, 0xdf, 0xa3, 0x00, 0xff, 0x7e}, size/7+1)[:size]
		encoded := base64.StdEncoding.EncodeToString(payload)

		got, err := DecodeBase64(encoded)
		require.NoError(t, err, "size %d", size)
		assert.Equal(t, payload, got, "size %d", size)
	}
}

func TestDecodeBase64_Invalid(t *testing.T) {
	_, err := DecodeBase64("")
	assert.ErrorIs(t, err, app_errors.ErrValidation)

	_, err = DecodeBase64("not*base64!")
	assert.ErrorIs(t, err, app_errors.ErrValidation)

	// Corruption in a later chunk is still reported.
	good := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte("a"), ChunkSize))
	_, err = DecodeBase64(good + "@@@@")
	assert.ErrorIs(t, err, app_errors.ErrValidation)
}
