package identifier

import (
	"testing"

	"github.com/google/uuid"
)

func TestGenerate_Defaults(t *testing.T) {
	result, err := Generate(0, 0)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if result.Version != 4 || result.Count != 1 || len(result.UUIDs) != 1 {
		t.Errorf("got %+v, want one v4 UUID", result)
	}
}

func TestGenerate_V4(t *testing.T) {
	result, err := Generate(4, 5)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(result.UUIDs) != 5 {
		t.Fatalf("got %d UUIDs, want 5", len(result.UUIDs))
	}
	seen := make(map[string]bool)
	for _, s := range result.UUIDs {
		id, err := uuid.Parse(s)
		if err != nil {
			t.Fatalf("generated invalid UUID %q: %v", s, err)
		}
		if id.Version() != 4 {
			t.Errorf("UUID %q version = %d, want 4", s, id.Version())
		}
		if seen[s] {
			t.Errorf("duplicate UUID %q", s)
		}
		seen[s] = true
	}
}

func TestGenerate_V1(t *testing.T) {
	result, err := Generate(1, 2)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	for _, s := range result.UUIDs {
		id, err := uuid.Parse(s)
		if err != nil {
			t.Fatalf("generated invalid UUID %q: %v", s, err)
		}
		if id.Version() != 1 {
			t.Errorf("UUID %q version = %d, want 1", s, id.Version())
		}
	}
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		version int
		count   int
	}{
		{"version 2", 2, 1},
		{"version 5", 5, 1},
		{"negative count", 4, -1},
		{"count above limit", 4, MaxCount + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Generate(tt.version, tt.count); err == nil {
				t.Errorf("Generate(%d, %d) succeeded, want error", tt.version, tt.count)
			}
		})
	}
}

func TestGenerate_MaxCount(t *testing.T) {
	result, err := Generate(4, MaxCount)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(result.UUIDs) != MaxCount {
		t.Errorf("got %d UUIDs, want %d", len(result.UUIDs), MaxCount)
	}
}
