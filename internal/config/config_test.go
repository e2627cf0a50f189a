package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupHome(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "home")
	t.Setenv("PEOPLE_HOME", dir)
	t.Setenv("PEOPLE_LANG", "")
	t.Setenv("PEOPLE_FORMAT", "")
	t.Setenv("PEOPLE_LOG_LEVEL", "")
	return dir
}

func TestDir_EnvOverride(t *testing.T) {
	dir := setupHome(t)
	if got := Dir(); got != dir {
		t.Errorf("Dir() = %q, want %q", got, dir)
	}
	if got := FilePath(); got != filepath.Join(dir, "config.yaml") {
		t.Errorf("FilePath() = %q", got)
	}
}

func TestDefaults(t *testing.T) {
	setupHome(t)
	Load()

	if got := Lang(); got != DefaultLang {
		t.Errorf("Lang() = %q, want %q", got, DefaultLang)
	}
	if got := Format(); got != DefaultFormat {
		t.Errorf("Format() = %q, want %q", got, DefaultFormat)
	}
	if got := LogLevel(); got != DefaultLogLevel {
		t.Errorf("LogLevel() = %q, want %q", got, DefaultLogLevel)
	}
}

func TestSetPersists(t *testing.T) {
	dir := setupHome(t)
	Load()

	if err := Set(KeyLang, "RU"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if !strings.Contains(string(data), "lang: ru") {
		t.Errorf("config file missing lang entry:\n%s", data)
	}

	// A fresh load must pick the value up from disk.
	Load()
	if got := Lang(); got != "ru" {
		t.Errorf("Lang() after reload = %q, want ru", got)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	setupHome(t)
	Load()
	if err := Set(KeyFormat, "yaml"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	t.Setenv("PEOPLE_FORMAT", "json")
	Load()
	if got := Format(); got != "json" {
		t.Errorf("Format() = %q, want json", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
	}{
		{"known lang", KeyLang, "en", false},
		{"lang case insensitive", KeyLang, "RU", false},
		{"unknown lang", KeyLang, "de", true},
		{"format yaml", KeyFormat, "yaml", false},
		{"format csv", KeyFormat, "csv", true},
		{"log level debug", KeyLogLevel, "debug", false},
		{"log level bogus", KeyLogLevel, "loud", true},
		{"unknown key", "color", "red", true},
		{"empty value", KeyLang, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.key, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q, %q) error = %v, wantErr %v", tt.key, tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestSetRejectsInvalid(t *testing.T) {
	dir := setupHome(t)
	Load()

	if err := Set(KeyFormat, "xml"); err == nil {
		t.Fatal("expected error for invalid format")
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); !os.IsNotExist(err) {
		t.Error("config file should not be created for a rejected value")
	}
}

func TestValidateKey(t *testing.T) {
	for _, key := range Keys() {
		if err := ValidateKey(key); err != nil {
			t.Errorf("ValidateKey(%q) = %v", key, err)
		}
	}
	if err := ValidateKey("colour"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestKeys_Sorted(t *testing.T) {
	want := []string{KeyFormat, KeyLang, KeyLogLevel}
	got := Keys()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}
