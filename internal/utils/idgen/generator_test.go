package idgen

import (
	"strings"
	"testing"
)

func TestGenerateSecureID(t *testing.T) {
	id, err := GenerateSecureID("req", 16)
	if err != nil {
		t.Fatalf("GenerateSecureID failed: %v", err)
	}

	if !strings.HasPrefix(id, "req_") {
		t.Errorf("expected prefix req_, got %s", id)
	}
	if len(id) != len("req_")+16 {
		t.Errorf("expected length %d, got %d", len("req_")+16, len(id))
	}

	const charset = "0123456789abcdefghijklmnopqrstuvwxyz"
	for _, c := range id[len("req_"):] {
		if !strings.ContainsRune(charset, c) {
			t.Errorf("unexpected character %q in id %s", c, id)
		}
	}
}

func TestGenerateSecureIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id, err := GenerateSecureID("x", 12)
		if err != nil {
			t.Fatalf("GenerateSecureID failed: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestGenerateSuffix(t *testing.T) {
	suffix, err := GenerateSuffix(12)
	if err != nil {
		t.Fatalf("GenerateSuffix failed: %v", err)
	}
	if len(suffix) != 12 {
		t.Errorf("expected length 12, got %d", len(suffix))
	}
	if strings.Contains(suffix, "_") {
		t.Errorf("suffix must not contain separator: %s", suffix)
	}
}
