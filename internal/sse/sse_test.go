package sse

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunkReader hands out the given chunks one Read at a time, simulating how a
// network body is split into arbitrary reads.
type chunkReader struct {
	chunks []string
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.chunks[0])
	if n < len(r.chunks[0]) {
		r.chunks[0] = r.chunks[0][n:]
	} else {
		r.chunks = r.chunks[1:]
	}
	return n, nil
}

func deltaLine(content string) string {
	return fmt.Sprintf(`data: {"choices":[{"delta":{"content":%q}}]}`, content)
}

func collect(t *testing.T, d *Decoder) (string, error) {
	t.Helper()
	var sb strings.Builder
	for {
		delta, err := d.Next()
		if errors.Is(err, io.EOF) {
			return sb.String(), nil
		}
		if err != nil {
			return sb.String(), err
		}
		sb.WriteString(delta)
	}
}

func TestLineFramer(t *testing.T) {
	t.Run("Lines across writes", func(t *testing.T) {
		f := NewLineFramer(0)
		_, err := f.Write([]byte("first\r\nsec"))
		require.NoError(t, err)

		line, ok := f.Next()
		require.True(t, ok)
		assert.Equal(t, "first", string(line))

		_, ok = f.Next()
		assert.False(t, ok, "partial line must wait for more bytes")

		_, err = f.Write([]byte("ond\n\n"))
		require.NoError(t, err)

		line, ok = f.Next()
		require.True(t, ok)
		assert.Equal(t, "second", string(line))

		line, ok = f.Next()
		require.True(t, ok)
		assert.Empty(t, line)
		assert.Nil(t, f.Flush(), "nothing may stay buffered")
	})

	t.Run("Flush returns the unterminated tail", func(t *testing.T) {
		f := NewLineFramer(0)
		_, _ = f.Write([]byte("a\ntail\r"))
		_, _ = f.Next()
		assert.Equal(t, "tail", string(f.Flush()))
		assert.Nil(t, f.Flush())
	})

	t.Run("Bounded buffer", func(t *testing.T) {
		f := NewLineFramer(8)
		_, err := f.Write([]byte("0123456789"))
		assert.ErrorIs(t, err, ErrLineTooLong)
	})

	t.Run("Returned lines do not alias the buffer", func(t *testing.T) {
		f := NewLineFramer(0)
		_, _ = f.Write([]byte("abc\n"))
		line, _ := f.Next()
		_, _ = f.Write([]byte("xyz\n"))
		assert.Equal(t, "abc", string(line))
	})
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    event
		wantErr error
	}{
		{name: "blank", line: "", want: event{kind: eventSkip}},
		{name: "whitespace", line: "   ", want: event{kind: eventSkip}},
		{name: "comment", line: ":keep-alive", want: event{kind: eventSkip}},
		{name: "other field", line: "event: message", want: event{kind: eventSkip}},
		{name: "done", line: "data: [DONE]", want: event{kind: eventDone}},
		{name: "done with padding", line: "data:  [DONE] ", want: event{kind: eventDone}},
		{name: "delta", line: deltaLine("Hel"), want: event{kind: eventDelta, content: "Hel"}},
		{name: "role only", line: `data: {"choices":[{"delta":{"role":"assistant"}}]}`, want: event{kind: eventDelta}},
		{name: "no choices", line: `data: {"choices":[]}`, want: event{kind: eventDelta}},
		{name: "null error", line: `data: {"choices":[],"error":null}`, want: event{kind: eventDelta}},
		{name: "error string", line: `data: {"error":"AI gateway error"}`, want: event{kind: eventError, content: "AI gateway error"}},
		{name: "error object", line: `data: {"error":{"message":"Provider returned error","code":502}}`, want: event{kind: eventError, content: "Provider returned error"}},
		{name: "error without message", line: `data: {"error":{"code":502}}`, want: event{kind: eventError, content: `{"code":502}`}},
		{name: "truncated json", line: `data: {"choices":[{"delta":`, wantErr: ErrIncompleteFrame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLine(tt.line)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecoder_HelloExample(t *testing.T) {
	body := strings.Join([]string{
		`data: {"choices":[{"delta":{"content":"Hel"}}]}`,
		`data: {"choices":[{"delta":{"content":"lo"}}]}`,
		`data: [DONE]`,
	}, "\n") + "\n"

	got, err := collect(t, NewDecoder(strings.NewReader(body)))
	require.NoError(t, err)
	assert.Equal(t, "Hello", got)
}

func TestDecoder_ByteSplitInvariance(t *testing.T) {
	deltas := []string{"Neural ", "networks ", "learn — ", "naïvely? ", "日本語", " 👋", "!"}
	var sb strings.Builder
	sb.WriteString(": ping\n\n")
	for _, d := range deltas {
		sb.WriteString(deltaLine(d))
		sb.WriteString("\r\n\r\n")
	}
	sb.WriteString("data: [DONE]\n")
	body := sb.String()
	want := strings.Join(deltas, "")

	t.Run("One byte per read", func(t *testing.T) {
		got, err := collect(t, NewDecoder(iotest.OneByteReader(strings.NewReader(body))))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	for _, size := range []int{2, 3, 5, 7, 13, 64} {
		t.Run(fmt.Sprintf("Chunks of %d", size), func(t *testing.T) {
			var chunks []string
			for i := 0; i < len(body); i += size {
				chunks = append(chunks, body[i:min(i+size, len(body))])
			}
			got, err := collect(t, NewDecoder(&chunkReader{chunks: chunks}))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	t.Run("Every two-way split", func(t *testing.T) {
		for i := 1; i < len(body); i++ {
			got, err := collect(t, NewDecoder(&chunkReader{chunks: []string{body[:i], body[i:]}}))
			require.NoError(t, err)
			require.Equal(t, want, got, "split at byte %d", i)
		}
	})
}

func TestDecoder_IgnoresNonDataLines(t *testing.T) {
	body := ":keep-alive\n\nevent: ping\nid: 4\n" + deltaLine("only") + "\n"

	got, err := collect(t, NewDecoder(strings.NewReader(body)))
	require.NoError(t, err)
	assert.Equal(t, "only", got)
}

func TestDecoder_SplitMalformedFrame(t *testing.T) {
	t.Run("Frame split across reads", func(t *testing.T) {
		r := &chunkReader{chunks: []string{
			`data: {"choices":[{"delta":{"content":"Hel`,
			`lo"}}]}` + "\n",
			"data: [DONE]\n",
		}}
		got, err := collect(t, NewDecoder(r))
		require.NoError(t, err)
		assert.Equal(t, "Hello", got)
	})

	t.Run("Frame broken by a newline is merged", func(t *testing.T) {
		body := `data: {"choices":[{"delta":{"content":"Hel` + "\n" +
			":keep-alive\n" +
			`lo"}}]}` + "\n" +
			deltaLine(" world") + "\n"
		got, err := collect(t, NewDecoder(strings.NewReader(body)))
		require.NoError(t, err)
		assert.Equal(t, "Hello world", got)
	})

	t.Run("Unrecoverable fragment is dropped on the next event", func(t *testing.T) {
		body := `data: {"choices":` + "\n" + deltaLine("ok") + "\n"
		got, err := collect(t, NewDecoder(strings.NewReader(body)))
		require.NoError(t, err)
		assert.Equal(t, "ok", got)
	})
}

func TestDecoder_StopsAtDone(t *testing.T) {
	body := deltaLine("a") + "\ndata: [DONE]\n" + deltaLine("ignored") + "\n"
	d := NewDecoder(strings.NewReader(body))

	got, err := collect(t, d)
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	_, err = d.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecoder_FlushesTailWithoutNewline(t *testing.T) {
	got, err := collect(t, NewDecoder(strings.NewReader(deltaLine("tail"))))
	require.NoError(t, err)
	assert.Equal(t, "tail", got)
}

func TestDecoder_Errors(t *testing.T) {
	t.Run("Reader failure", func(t *testing.T) {
		boom := errors.New("connection reset")
		r := io.MultiReader(strings.NewReader(deltaLine("part")+"\n"), iotest.ErrReader(boom))

		got, err := collect(t, NewDecoder(r))
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, "part", got)
	})

	t.Run("Oversized line", func(t *testing.T) {
		body := "data: " + strings.Repeat("x", 64)
		_, err := collect(t, NewDecoderSize(strings.NewReader(body), 16))
		assert.ErrorIs(t, err, ErrLineTooLong)
	})

	t.Run("Error event after partial reply", func(t *testing.T) {
		body := deltaLine("Par") + "\n\n" +
			"event: error\n" +
			`data: {"error":"AI gateway error"}` + "\n\n"
		d := NewDecoder(strings.NewReader(body))

		got, err := collect(t, d)
		assert.ErrorIs(t, err, ErrStreamEvent)
		assert.ErrorContains(t, err, "AI gateway error")
		assert.Equal(t, "Par", got)

		_, err = d.Next()
		assert.ErrorIs(t, err, io.EOF)
	})
}
