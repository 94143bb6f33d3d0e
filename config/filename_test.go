package config

import (
	"strings"
	"testing"
)

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"layers", "layers"},
		{"a/b", "ab"},
		{"..hidden", "hidden"},
		{"name  ", "name"},
		{"", badFileName},
		{"/", badFileName},
		{"...", badFileName},
	}
	for _, tt := range tests {
		if got := CleanFileName(tt.in); got != tt.want {
			t.Errorf("CleanFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := CleanFileName("a\x00b"); strings.ContainsRune(got, 0) {
		t.Errorf("CleanFileName() kept NUL: %q", got)
	}
}

func TestSettingsFileName(t *testing.T) {
	tests := []struct {
		name, ext, want string
	}{
		{"Base Layer", ".json", "base-layer.json"},
		{"Sunset / Dawn", ".yaml", "sunset-dawn.yaml"},
		{"", ".json", badFileName + ".json"},
	}
	for _, tt := range tests {
		if got := SettingsFileName(tt.name, tt.ext); got != tt.want {
			t.Errorf("SettingsFileName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
