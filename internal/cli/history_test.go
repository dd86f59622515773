package cli

import (
	"testing"
)

func TestNewHistoryCmd(t *testing.T) {
	cmd := NewHistoryCmd()

	if cmd == nil {
		t.Fatal("NewHistoryCmd() returned nil")
	}

	if cmd.Use != "history" {
		t.Errorf("Expected Use='history', got %q", cmd.Use)
	}

	if cmd.Flags().Lookup("limit") == nil {
		t.Error("Flag 'limit' not registered")
	}
	if cmd.Flags().Lookup("json") == nil {
		t.Error("Flag 'json' not registered")
	}
}

func TestHistoryCommandLimitDefault(t *testing.T) {
	cmd := NewHistoryCmd()

	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatalf("ParseFlags() failed: %v", err)
	}

	limit, _ := cmd.Flags().GetInt("limit")
	if limit != 20 {
		t.Errorf("limit default = %d, want 20", limit)
	}
}

func TestNewStatsCmd(t *testing.T) {
	cmd := NewStatsCmd()

	if cmd == nil {
		t.Fatal("NewStatsCmd() returned nil")
	}

	if cmd.Use != "stats" {
		t.Errorf("Expected Use='stats', got %q", cmd.Use)
	}

	if cmd.Flags().Lookup("json") == nil {
		t.Error("Flag 'json' not registered")
	}
}

func TestNewResetCmd(t *testing.T) {
	cmd := NewResetCmd()

	if cmd == nil {
		t.Fatal("NewResetCmd() returned nil")
	}

	if cmd.Use != "reset" {
		t.Errorf("Expected Use='reset', got %q", cmd.Use)
	}

	if cmd.Flags().Lookup("force") == nil {
		t.Error("Flag 'force' not registered")
	}
}
