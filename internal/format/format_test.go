package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/adl-lang/adl/internal/parser"
)

func TestJSONEncoderProducesValidJSON(t *testing.T) {
	result := parser.Parse("w.adl", `model Widget { name: string; }`)

	var buf bytes.Buffer
	enc := NewJSONEncoder(false)
	if err := enc.Encode(&buf, result.Script); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Encode produced invalid JSON: %v", err)
	}
	if decoded["kind"] != "Script" {
		t.Fatalf("expected root kind Script, got %v", decoded["kind"])
	}
}

func TestJSONEncoderOmitsSpanUnlessRequested(t *testing.T) {
	result := parser.Parse("w.adl", `model Widget { name: string; }`)

	without, err := NewJSONEncoder(false).MarshalText(result.Script)
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if strings.Contains(string(without), `"span"`) {
		t.Fatalf("expected no span field when Positions is false")
	}

	with, err := NewJSONEncoder(true).MarshalText(result.Script)
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if !strings.Contains(string(with), `"span"`) {
		t.Fatalf("expected a span field when Positions is true")
	}
}

func TestTextEncoderMatchesNodeString(t *testing.T) {
	result := parser.Parse("w.adl", `model Widget { name: string; }`)

	var buf bytes.Buffer
	if err := NewTextEncoder(false).Encode(&buf, result.Script); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if buf.String() != result.Script.String() {
		t.Fatalf("text encoder output diverged from Node.String()")
	}
}
