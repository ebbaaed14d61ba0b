// Package cli holds helpers shared by the command-line tools.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// NewLogger returns a text logger writing to w at the named level
// (debug, info, warn or error).
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// WriteJSON renders fields as an indented JSON object followed by a newline.
// Values must be representable by structpb: nil, bools, numbers, strings,
// []any and map[string]any.
func WriteJSON(w io.Writer, fields map[string]any) error {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}

	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}

	if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
