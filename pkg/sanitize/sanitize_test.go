package sanitize

import "testing"

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "  Jan de Vries ", "Jan de Vries"},
		{"script tag", `<script>alert("xss")</script>`, ""},
		{"img tag", `<img src=x onerror=alert("xss")>Hallo`, "Hallo"},
		{"bold tag", "Graag <b>snel</b> contact", "Graag snel contact"},
		{"ampersand survives", "Tapijt & bank", "Tapijt & bank"},
		{"accents", "Test met špéciałe karakters", "Test met špéciałe karakters"},
		{"apostrophe", "O'Neill", "O'Neill"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.in); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	tests := map[string]string{
		"john@example.com":               "john@example.com",
		" test+special@domain.com ":      "test+special@domain.com",
		"jo hn@exa<mple>.com":            "john@example.com",
		`"><img src=x onerror=alert(1)>`: "imgsrc=xonerror=alert1",
	}
	for in, want := range tests {
		if got := Email(in); got != want {
			t.Errorf("Email(%q) = %q, want %q", in, got, want)
		}
	}
}
