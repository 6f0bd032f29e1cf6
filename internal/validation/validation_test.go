package validation

import "testing"

func TestEmail(t *testing.T) {
	tests := []struct {
		addr  string
		valid bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.example.co.uk", true},
		{"  padded@example.com  ", true},
		{"", false},
		{"   ", false},
		{"no-at-sign", false},
		{"missing-domain@", false},
		{"@missing-local.com", false},
		{"bare-domain@localhost", false},
		{"two@@example.com", false},
		{"spaces in@example.com", false},
		{"<bracketed@example.com>", false},
		{"crlf@example.com\r\nBcc: evil@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			err := Email(tt.addr)
			if tt.valid && err != nil {
				t.Errorf("Email(%q) = %v, want nil", tt.addr, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("Email(%q) = nil, want error", tt.addr)
			}
			if got := IsValidEmail(tt.addr); got != tt.valid {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.addr, got, tt.valid)
			}
		})
	}
}

func TestRequired(t *testing.T) {
	if err := Required("name", "Jane"); err != nil {
		t.Errorf("Required with value = %v, want nil", err)
	}
	if err := Required("name", "   "); err == nil {
		t.Error("Required with blank value = nil, want error")
	}
	if err := Required("name", ""); err == nil {
		t.Error("Required with empty value = nil, want error")
	}
}
