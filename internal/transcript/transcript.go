// Package transcript writes a JSONL record of an interactive session.
//
// The first line is a header, every following line one event. Transcripts
// are never read back into a cube; Load exists for inspection.
package transcript

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Version is the transcript format version.
const Version = "1.0"

// EventType identifies the type of a transcript event.
type EventType string

const (
	EventAlgorithm EventType = "algorithm"
	EventUndo      EventType = "undo"
	EventReset     EventType = "reset"
	EventScramble  EventType = "scramble"
	EventCommand   EventType = "command"
	EventError     EventType = "error"
)

// Header is the first line of a transcript.
type Header struct {
	Type      string    `json:"type"`
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	SessionID string    `json:"session_id"`
	Size      int       `json:"size"`
}

// Event is a single transcript line.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	ElapsedMs int64     `json:"elapsed_ms"`
	EventType EventType `json:"event_type"`
	Moves     string    `json:"moves,omitempty"`
	Input     string    `json:"input,omitempty"`
	Size      int       `json:"size,omitempty"`
	Solved    bool      `json:"solved,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// Transcript is a loaded transcript file.
type Transcript struct {
	Header Header
	Events []Event
}

// Writer appends events to a transcript. A nil *Writer discards everything,
// so callers need no checks when transcripts are disabled.
type Writer struct {
	out       io.WriteCloser
	path      string
	sessionID string
	startTime time.Time
	now       func() time.Time
}

// Create starts a transcript file named session_<timestamp>.jsonl in dir.
func Create(dir string, size int) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create transcript directory: %w", err)
	}

	filename := fmt.Sprintf("session_%s.jsonl", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create transcript file: %w", err)
	}

	w, err := NewWriter(file, size)
	if err != nil {
		file.Close()
		return nil, err
	}
	w.path = path
	return w, nil
}

// NewWriter writes the header to out and returns a Writer for the events.
func NewWriter(out io.WriteCloser, size int) (*Writer, error) {
	w := &Writer{
		out:       out,
		sessionID: uuid.NewString(),
		now:       time.Now,
	}
	w.startTime = w.now()

	header := Header{
		Type:      "header",
		Version:   Version,
		CreatedAt: w.startTime,
		SessionID: w.sessionID,
		Size:      size,
	}
	if err := w.writeJSON(header); err != nil {
		return nil, fmt.Errorf("write transcript header: %w", err)
	}
	return w, nil
}

// SessionID returns the random id written in the header.
func (w *Writer) SessionID() string {
	if w == nil {
		return ""
	}
	return w.sessionID
}

// Path returns the file path, or "" when not writing to a file.
func (w *Writer) Path() string {
	if w == nil {
		return ""
	}
	return w.path
}

// Record appends an event, filling in its timestamps.
func (w *Writer) Record(event Event) error {
	if w == nil {
		return nil
	}
	event.Timestamp = w.now()
	event.ElapsedMs = event.Timestamp.Sub(w.startTime).Milliseconds()
	return w.writeJSON(event)
}

// Algorithm records an applied algorithm.
func (w *Writer) Algorithm(moves string, solved bool) error {
	return w.Record(Event{EventType: EventAlgorithm, Moves: moves, Solved: solved})
}

// Undo records an undone algorithm.
func (w *Writer) Undo(moves string) error {
	return w.Record(Event{EventType: EventUndo, Moves: moves})
}

// Reset records a reset to a solved cube of the given size.
func (w *Writer) Reset(size int) error {
	return w.Record(Event{EventType: EventReset, Size: size})
}

// Scramble records a scramble.
func (w *Writer) Scramble(moves string) error {
	return w.Record(Event{EventType: EventScramble, Moves: moves})
}

// Command records a session command line.
func (w *Writer) Command(input string) error {
	return w.Record(Event{EventType: EventCommand, Input: input})
}

// Error records rejected input.
func (w *Writer) Error(input string, err error) error {
	return w.Record(Event{EventType: EventError, Input: input, Error: err.Error()})
}

func (w *Writer) writeJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.out.Write(append(data, '\n'))
	return err
}

// Close closes the underlying file.
func (w *Writer) Close() error {
	if w == nil {
		return nil
	}
	return w.out.Close()
}

// ErrNoHeader is returned by Load for an empty transcript.
var ErrNoHeader = errors.New("transcript: missing header")

// Load reads a transcript written by Writer.
func Load(path string) (*Transcript, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer file.Close()

	return Read(file)
}

// Read parses a transcript from r.
func Read(r io.Reader) (*Transcript, error) {
	t := &Transcript{Events: make([]Event, 0)}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		if lineNum == 1 {
			if err := json.Unmarshal(line, &t.Header); err != nil {
				return nil, fmt.Errorf("parse transcript header: %w", err)
			}
			continue
		}

		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			return nil, fmt.Errorf("parse event at line %d: %w", lineNum, err)
		}
		t.Events = append(t.Events, event)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	if lineNum == 0 || t.Header.Type != "header" {
		return nil, ErrNoHeader
	}

	return t, nil
}
