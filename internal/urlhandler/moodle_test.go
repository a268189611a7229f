package urlhandler

import "testing"

func TestGuessMoodleDomain(t *testing.T) {
	tests := []struct {
		name     string
		inputURL string
		expected string
	}{
		{
			name:     "course view page",
			inputURL: "https://school.example.org/course/view.php?id=5",
			expected: "school.example.org",
		},
		{
			name:     "scheme added when missing",
			inputURL: "school.example.org/login/index.php",
			expected: "school.example.org",
		},
		{
			name:     "dashboard with trailing slash",
			inputURL: "https://school.example.org/my/",
			expected: "school.example.org",
		},
		{
			name:     "site installed under a path prefix",
			inputURL: "https://school.example.org/moodle/mod/page/view.php?id=7",
			expected: "school.example.org/moodle",
		},
		{
			name:     "redirect query",
			inputURL: "https://school.example.org/?redirect=0",
			expected: "school.example.org",
		},
		{
			name:     "unknown page falls back to the parsed domain",
			inputURL: "https://school.example.org/about",
			expected: "school.example.org",
		},
		{
			name:     "empty input",
			inputURL: "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := GuessMoodleDomain(tt.inputURL); result != tt.expected {
				t.Errorf("GuessMoodleDomain(%q) = %q, want %q", tt.inputURL, result, tt.expected)
			}
		})
	}
}

func TestIsValidMoodleURL(t *testing.T) {
	tests := []struct {
		name     string
		inputURL string
		expected bool
	}{
		{
			name:     "plain site url",
			inputURL: "https://school.example.org/course/view.php?id=5",
			expected: true,
		},
		{
			name:     "well-known url is always valid",
			inputURL: SchoolDemoSiteURL,
			expected: true,
		},
		{
			name:     "space in authority",
			inputURL: "https://bad host/path",
			expected: false,
		},
		{
			name:     "space in path",
			inputURL: "https://school.example.org/pa th",
			expected: false,
		},
		{
			name:     "space in the query is tolerated",
			inputURL: "https://school.example.org/p?q=a b",
			expected: true,
		},
		{
			name:     "surrounding whitespace is trimmed first",
			inputURL: "  https://school.example.org/  ",
			expected: true,
		},
		{
			name:     "empty input",
			inputURL: "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsValidMoodleURL(tt.inputURL); result != tt.expected {
				t.Errorf("IsValidMoodleURL(%q) = %v, want %v", tt.inputURL, result, tt.expected)
			}
		})
	}
}
