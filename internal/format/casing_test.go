package format

import "testing"

func TestSuggestCasingProducesDistinctVariants(t *testing.T) {
	s := SuggestCasing("import")
	if s.Camel != "importValue" {
		t.Fatalf("expected camel importValue, got %q", s.Camel)
	}
	if s.Pascal != "ImportValue" {
		t.Fatalf("expected pascal ImportValue, got %q", s.Pascal)
	}
	if s.Snake != "import_value" {
		t.Fatalf("expected snake import_value, got %q", s.Snake)
	}
}
