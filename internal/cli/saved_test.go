package cli

import (
	"testing"
)

func TestNewSavedCmd(t *testing.T) {
	cmd := NewSavedCmd()

	if cmd == nil {
		t.Fatal("NewSavedCmd() returned nil")
	}

	if cmd.Use != "saved" {
		t.Errorf("Expected Use='saved', got %q", cmd.Use)
	}

	// Verify aliases
	aliases := cmd.Aliases
	if len(aliases) == 0 || aliases[0] != "ls" {
		t.Errorf("Expected alias 'ls', got %v", aliases)
	}

	// Verify filter flags are registered
	for _, name := range []string{"json", "store", "category", "min", "max", "expires-within", "sort", "order"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("Flag %q not registered", name)
		}
	}
}

func TestSavedCommandHasRemoveSubcommand(t *testing.T) {
	cmd := NewSavedCmd()

	var found bool
	for _, sub := range cmd.Commands() {
		if sub.Name() == "remove" {
			found = true
			if len(sub.Aliases) == 0 || sub.Aliases[0] != "rm" {
				t.Errorf("Expected 'rm' alias on remove subcommand, got %v", sub.Aliases)
			}
		}
	}
	if !found {
		t.Error("'remove' subcommand not registered")
	}
}

func TestSavedCommandFlagParsing(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantSort string
		wantMin  float64
	}{
		{
			name:     "defaults",
			args:     []string{},
			wantSort: "",
			wantMin:  0,
		},
		{
			name:     "sort and min",
			args:     []string{"--sort", "savings", "--min", "5.5"},
			wantSort: "savings",
			wantMin:  5.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewSavedCmd()

			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("ParseFlags() failed: %v", err)
			}

			sortBy, _ := cmd.Flags().GetString("sort")
			if sortBy != tt.wantSort {
				t.Errorf("sort flag = %q, want %q", sortBy, tt.wantSort)
			}

			minVal, _ := cmd.Flags().GetFloat64("min")
			if minVal != tt.wantMin {
				t.Errorf("min flag = %v, want %v", minVal, tt.wantMin)
			}
		})
	}
}
