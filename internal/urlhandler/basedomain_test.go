package urlhandler

import "testing"

func TestBaseDomain(t *testing.T) {
	tests := []struct {
		name     string
		hostname string
		expected string
		wantErr  bool
	}{
		{
			name:     "subdomain stripped",
			hostname: "sub.example.com",
			expected: "example.com",
		},
		{
			name:     "two-part public suffix",
			hostname: "www.example.co.uk",
			expected: "example.co.uk",
		},
		{
			name:     "already a base domain",
			hostname: "example.com",
			expected: "example.com",
		},
		{
			name:     "lowercased",
			hostname: "EXAMPLE.COM",
			expected: "example.com",
		},
		{
			name:     "port stripped",
			hostname: "sub.example.com:8080",
			expected: "example.com",
		},
		{
			name:     "single label kept as-is",
			hostname: "localhost",
			expected: "localhost",
		},
		{
			name:     "empty hostname",
			hostname: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := BaseDomain(tt.hostname)

			if tt.wantErr {
				if err == nil {
					t.Errorf("BaseDomain(%q) expected error, got %q", tt.hostname, result)
				}
				return
			}

			if err != nil {
				t.Fatalf("BaseDomain(%q) unexpected error: %v", tt.hostname, err)
			}
			if result != tt.expected {
				t.Errorf("BaseDomain(%q) = %q, want %q", tt.hostname, result, tt.expected)
			}
		})
	}
}
