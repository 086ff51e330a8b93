package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// HumanReadable is implemented by results that know how to print themselves
type HumanReadable interface {
	Human() string
}

// OutputFormatter writes command results in one of three modes: JSON for
// agents, quiet (ids only) for shell capture, or human-readable text
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to os.Stdout and os.Stderr
	Out io.Writer
	Err io.Writer
}

// envelope is the JSON shape of every response
type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

func (f *OutputFormatter) stdout() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) stderr() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

func (f *OutputFormatter) writeJSON(e envelope) error {
	return json.NewEncoder(f.stdout()).Encode(e)
}

// Success writes a result. In quiet mode a result exposing GetID or GetIDs
// is reduced to its ids, one per line; anything else falls through to the
// JSON or human format.
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		switch v := data.(type) {
		case interface{ GetID() int }:
			_, err := fmt.Fprintf(f.stdout(), "%d\n", v.GetID())
			return err
		case interface{ GetIDs() []int }:
			for _, id := range v.GetIDs() {
				if _, err := fmt.Fprintf(f.stdout(), "%d\n", id); err != nil {
					return err
				}
			}
			return nil
		}
	}

	if f.JSON {
		return f.writeJSON(envelope{Success: true, Data: data})
	}

	if h, ok := data.(HumanReadable); ok {
		_, err := fmt.Fprintln(f.stdout(), h.Human())
		return err
	}
	_, err := fmt.Fprintf(f.stdout(), "%+v\n", data)
	return err
}

// Error writes a failure
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion writes a failure with an optional hint for the user.
// JSON mode writes to stdout so agents read one stream.
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		return f.writeJSON(envelope{Error: &errorBody{Code: code, Message: message, Suggestion: suggestion}})
	}

	if _, err := fmt.Fprintf(f.stderr(), "❌ Error: %s\n", message); err != nil {
		return err
	}
	if suggestion != "" {
		_, err := fmt.Fprintf(f.stderr(), "💡 Suggestion: %s\n", suggestion)
		return err
	}
	return nil
}
