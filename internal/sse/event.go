package sse

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	// DataPrefix marks a line carrying an event payload.
	DataPrefix = "data: "
	// DoneToken is the payload of the line that terminates a stream.
	DoneToken = "[DONE]"
)

var (
	// ErrIncompleteFrame is returned when a data payload is not valid JSON yet.
	ErrIncompleteFrame = errors.New("sse: incomplete frame")
	// ErrStreamEvent is returned when the server reports a failure inside an
	// already open stream.
	ErrStreamEvent = errors.New("sse: error event")
)

// lineKind is what a raw line is before its payload is looked at.
type lineKind int

const (
	lineSkip lineKind = iota // blank or comment
	lineData
	lineOther // no marker; may continue a pending fragment
)

// classifyLine sorts a line stripped of its terminator. For data lines it
// also returns the trimmed payload.
func classifyLine(line string) (lineKind, string) {
	switch {
	case strings.TrimSpace(line) == "" || strings.HasPrefix(line, ":"):
		return lineSkip, ""
	case strings.HasPrefix(line, DataPrefix):
		return lineData, strings.TrimSpace(line[len(DataPrefix):])
	default:
		return lineOther, ""
	}
}

type eventKind int

const (
	eventSkip eventKind = iota
	eventDelta
	eventDone
	eventError
)

type event struct {
	kind    eventKind
	content string // delta text, or the message of an error event
}

// completionChunk is the subset of a streamed chat-completion chunk we read.
// Error is set on the frames the router and upstream gateways use to report
// a failure after the stream has started.
type completionChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
	Error json.RawMessage `json:"error"`
}

// parseLine decodes one line the way the Decoder does when no fragment is
// pending.
func parseLine(line string) (event, error) {
	kind, payload := classifyLine(line)
	if kind != lineData {
		return event{kind: eventSkip}, nil
	}
	return parsePayload(payload)
}

func parsePayload(payload string) (event, error) {
	if payload == DoneToken {
		return event{kind: eventDone}, nil
	}
	var chunk completionChunk
	if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
		return event{}, fmt.Errorf("%w: %v", ErrIncompleteFrame, err)
	}
	if len(chunk.Error) > 0 && string(chunk.Error) != "null" {
		return event{kind: eventError, content: errorMessage(chunk.Error)}, nil
	}
	if len(chunk.Choices) == 0 {
		return event{kind: eventDelta}, nil
	}
	return event{kind: eventDelta, content: chunk.Choices[0].Delta.Content}, nil
}

// errorMessage accepts both {"error":"text"} and {"error":{"message":"text"}}.
func errorMessage(raw json.RawMessage) string {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}
	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Message != "" {
		return obj.Message
	}
	return string(raw)
}
