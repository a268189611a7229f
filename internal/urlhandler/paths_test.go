package urlhandler

import "testing"

func TestConcatenatePaths(t *testing.T) {
	tests := []struct {
		base     string
		relative string
		expected string
	}{
		{"a", "b", "a/b"},
		{"a/", "b", "a/b"},
		{"a", "/b", "a/b"},
		{"a/", "/b", "a/b"},
		{"", "b", "b"},
		{"a", "", "a"},
		{"https://site.com", "media/player.php", "https://site.com/media/player.php"},
	}

	for _, tt := range tests {
		if result := ConcatenatePaths(tt.base, tt.relative); result != tt.expected {
			t.Errorf("ConcatenatePaths(%q, %q) = %q, want %q", tt.base, tt.relative, result, tt.expected)
		}
	}
}

func TestRemoveEndingSlash(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a/", "a"},
		{"a//", "a/"},
		{"a", "a"},
		{"/", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if result := RemoveEndingSlash(tt.input); result != tt.expected {
			t.Errorf("RemoveEndingSlash(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestRemoveStartingSlash(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/a", "a"},
		{"//a", "/a"},
		{"a", "a"},
		{"/", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if result := RemoveStartingSlash(tt.input); result != tt.expected {
			t.Errorf("RemoveStartingSlash(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}
