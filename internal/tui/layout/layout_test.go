package layout

import "testing"

func TestListHeight(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		terminal int
		want     int
	}{
		{"tall terminal", 30, 24},
		{"exact fit", cfg.MinListHeight + cfg.ChromeHeight, cfg.MinListHeight},
		{"too small clamps", 4, cfg.MinListHeight},
		{"zero clamps", 0, cfg.MinListHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ListHeight(tt.terminal, cfg); got != tt.want {
				t.Errorf("ListHeight(%d) = %d, want %d", tt.terminal, got, tt.want)
			}
		})
	}
}

func TestStripANSI(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain text", "plain text"},
		{"\x1b[1mbold\x1b[0m", "bold"},
		{"\x1b[38;5;212mcolored\x1b[0m text", "colored text"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := StripANSI(tt.input); got != tt.want {
			t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestVisibleLength(t *testing.T) {
	if got := VisibleLength("\x1b[1mfünf\x1b[0m"); got != 4 {
		t.Errorf("VisibleLength = %d, want 4", got)
	}
}

func TestTruncate(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name      string
		text      string
		maxWidth  int
		want      string
		truncated bool
	}{
		{"fits", "short", 10, "short", false},
		{"exact", "exact", 5, "exact", false},
		{"truncated", "a very long title", 10, "a very ...", true},
		{"room for ellipsis only", "hello", 3, "...", true},
		{"narrower than ellipsis", "hello", 2, "..", true},
		{"zero width", "hello", 0, "", true},
		{"multibyte runes", "日本語のタイトルです", 6, "日本語...", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := Truncate(tt.text, tt.maxWidth, cfg)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.text, tt.maxWidth, got, tt.want)
			}
			if truncated != tt.truncated {
				t.Errorf("Truncate(%q, %d) truncated = %v, want %v", tt.text, tt.maxWidth, truncated, tt.truncated)
			}
		})
	}
}
