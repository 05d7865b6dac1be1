package shared

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateKey(t *testing.T) {
	t.Run("Format", func(t *testing.T) {
		pattern := regexp.MustCompile(`^[0-9a-f]{32}$`)

		key := GenerateKey()
		if !pattern.MatchString(key) {
			t.Errorf("expected 32 lowercase hex characters, got %q", key)
		}
	})

	t.Run("Unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			key := GenerateKey()
			if seen[key] {
				t.Fatalf("duplicate key generated: %s", key)
			}
			seen[key] = true
		}
	})
}

func TestGenerateID(t *testing.T) {
	id := GenerateID()
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("expected a valid UUID, got %q: %v", id, err)
	}

	if GenerateID() == id {
		t.Error("expected distinct ids across calls")
	}
}
