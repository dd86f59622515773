package cli

import (
	"testing"
)

func TestNewDealsCmd(t *testing.T) {
	cmd := NewDealsCmd()

	if cmd == nil {
		t.Fatal("NewDealsCmd() returned nil")
	}

	if cmd.Name() != "deals" {
		t.Errorf("Expected name 'deals', got %q", cmd.Name())
	}

	if cmd.Flags().Lookup("json") == nil {
		t.Error("Flag 'json' not registered")
	}
}

func TestNewRecommendCmd(t *testing.T) {
	cmd := NewRecommendCmd()

	if cmd == nil {
		t.Fatal("NewRecommendCmd() returned nil")
	}

	if cmd.Name() != "recommend" {
		t.Errorf("Expected name 'recommend', got %q", cmd.Name())
	}
}

func TestNewSaveCmd(t *testing.T) {
	cmd := NewSaveCmd()

	if cmd == nil {
		t.Fatal("NewSaveCmd() returned nil")
	}

	if cmd.Name() != "save" {
		t.Errorf("Expected name 'save', got %q", cmd.Name())
	}

	for _, name := range []string{"store", "tag", "note"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("Flag %q not registered", name)
		}
	}

	if err := cmd.Args(cmd, []string{}); err == nil {
		t.Error("Expected error for missing dealID argument")
	}
}
