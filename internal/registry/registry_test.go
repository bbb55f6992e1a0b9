package registry

import (
	"testing"

	"github.com/vovakirdan/dimensions/internal/core"
	"github.com/vovakirdan/dimensions/internal/objects"
)

func testFactory(env objects.Env) objects.Entity {
	return objects.NewClickRipple(env, core.V(0, 0))
}

func TestRegisterAndGet(t *testing.T) {
	Register(Level{ID: "test-b", Title: "B", Order: 2, Spawn: testFactory})
	Register(Level{ID: "test-a", Title: "A", Order: 1, Spawn: testFactory})
	defer unregister("test-a")
	defer unregister("test-b")

	l, err := Get("test-a")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if l.Title != "A" {
		t.Errorf("Get().Title = %q, expected %q", l.Title, "A")
	}
	if !Exists("test-b") {
		t.Error("Exists(test-b) = false, expected true")
	}

	ids := IDs()
	ai, bi := -1, -1
	for i, id := range ids {
		switch id {
		case "test-a":
			ai = i
		case "test-b":
			bi = i
		}
	}
	if ai < 0 || bi < 0 || ai > bi {
		t.Errorf("IDs() = %v, expected test-a before test-b", ids)
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("no-such-level"); err == nil {
		t.Error("Get() of an unknown level should fail")
	}
	if Exists("no-such-level") {
		t.Error("Exists() of an unknown level should be false")
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name   string
		levels []Level
	}{
		{"duplicate", []Level{{ID: "test-dup", Spawn: testFactory}, {ID: "test-dup", Spawn: testFactory}}},
		{"no factory", []Level{{ID: "test-nil"}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				for _, l := range tc.levels {
					unregister(l.ID)
				}
				if recover() == nil {
					t.Error("Register() expected panic")
				}
			}()
			for _, l := range tc.levels {
				Register(l)
			}
		})
	}
}
