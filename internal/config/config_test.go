package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Settings == nil {
		t.Fatal("NewConfig().Settings should not be nil")
	}
	if cfg.Settings.TimeoutSeconds != 15 {
		t.Errorf("Default TimeoutSeconds should be 15, got %d", cfg.Settings.TimeoutSeconds)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "deal-hub-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, ".deal-hub.json")

	cfg := NewConfig()
	cfg.DefaultStoreID = "4332"
	cfg.APIBaseURL = "https://order.example.com/power"
	cfg.Email = &EmailConfig{
		Host: "smtp.example.com",
		Port: 587,
		From: "deals@example.com",
		To:   "me@example.com",
	}

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if loaded.DefaultStoreID != "4332" {
		t.Errorf("DefaultStoreID = %q, want \"4332\"", loaded.DefaultStoreID)
	}
	if loaded.Email == nil || loaded.Email.Host != "smtp.example.com" {
		t.Errorf("Email settings not round-tripped: %+v", loaded.Email)
	}
	if loaded.TimeoutSeconds() != 15 {
		t.Errorf("TimeoutSeconds = %d, want 15", loaded.TimeoutSeconds())
	}
}

func TestLoadFrom_Missing(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "absent.json"))

	var notFound *ConfigNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("LoadFrom on missing file = %v, want ConfigNotFoundError", err)
	}
}

func TestLoadFrom_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".deal-hub.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	var invalid *InvalidConfigError
	if !errors.As(err, &invalid) {
		t.Errorf("LoadFrom on malformed file = %v, want InvalidConfigError", err)
	}
}

func TestSave_CreatesBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".deal-hub.json")

	cfg := NewConfig()
	if err := Save(cfg, path); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}

	cfg.DefaultStoreID = "4332"
	if err := Save(cfg, path); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	if _, err := os.Stat(path + ".bak"); err != nil {
		t.Errorf("expected backup file after overwrite: %v", err)
	}
}

func TestSave_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".deal-hub.json")

	cfg := NewConfig()
	cfg.DefaultStoreID = "not-a-number"

	var invalid *InvalidConfigError
	if err := Save(cfg, path); !errors.As(err, &invalid) {
		t.Errorf("Save with bad store id = %v, want InvalidConfigError", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty", Config{}, false},
		{"numeric store", Config{DefaultStoreID: "4332"}, false},
		{"alpha store", Config{DefaultStoreID: "abc"}, true},
		{"good url", Config{APIBaseURL: "https://order.example.com/power"}, false},
		{"bad url", Config{APIBaseURL: "not a url"}, true},
		{"ftp url", Config{APIBaseURL: "ftp://order.example.com"}, true},
		{"email missing host", Config{Email: &EmailConfig{Port: 587, From: "a@b"}}, true},
		{"email bad port", Config{Email: &EmailConfig{Host: "h", Port: 0, From: "a@b"}}, true},
		{"email bad from", Config{Email: &EmailConfig{Host: "h", Port: 25, From: "nope"}}, true},
		{"email ok", Config{Email: &EmailConfig{Host: "h", Port: 25, From: "a@b"}}, false},
	}

	for _, tc := range cases {
		err := Validate(&tc.cfg)
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: Validate = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
	}
}
