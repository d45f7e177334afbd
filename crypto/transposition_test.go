package crypto

import (
	"errors"
	"testing"

	"classical-cipher-backend/alphabet"
)

func TestRailFence(t *testing.T) {
	c := NewRailFence()
	tests := []struct {
		in   string
		want string
	}{
		{"HELLO", "HLOEL"},
		{"Hello, World", "HLOOLELWRD"},
		{"AB", "AB"},
		{"A", "A"},
		{"", ""},
	}

	for _, tt := range tests {
		got, _ := c.Encrypt(tt.in)
		if got != tt.want {
			t.Errorf("Encrypt(%q) = %q, want %q", tt.in, got, tt.want)
		}
		back, _ := c.Decrypt(got)
		if back != alphabet.Clean(tt.in) {
			t.Errorf("Decrypt(%q) = %q, want %q", got, back, alphabet.Clean(tt.in))
		}
	}
}

func TestRailFenceTrace(t *testing.T) {
	trace, _ := NewRailFence().Trace(ModeEncrypt, "HELLO")
	if len(trace) != 5 {
		t.Fatalf("trace has %d steps, want 5", len(trace))
	}
	if trace[1].Rule != "odd rail" || trace[2].Rule != "even rail" {
		t.Fatalf("rules = %q, %q", trace[1].Rule, trace[2].Rule)
	}
}

func TestKeylessTransformation(t *testing.T) {
	tests := []struct {
		name    string
		columns int
		in      string
		want    string
	}{
		{"short last row", 3, "HELLO", "HLEOL"},
		{"full grid", 2, "ABCD", "ACBD"},
		{"fewer letters than columns", 4, "hi!", "HI"},
		{"one row short", 4, "ABCDEFGHI", "AEIBFCGDH"},
		{"empty", 3, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewKeylessTransformation(tt.columns)
			if err != nil {
				t.Fatalf("NewKeylessTransformation failed: %v", err)
			}
			got, _ := c.Encrypt(tt.in)
			if got != tt.want {
				t.Fatalf("Encrypt(%q) = %q, want %q", tt.in, got, tt.want)
			}
			back, _ := c.Decrypt(got)
			if back != alphabet.Clean(tt.in) {
				t.Fatalf("Decrypt(%q) = %q, want %q", got, back, alphabet.Clean(tt.in))
			}
		})
	}
}

func TestKeylessTransformationTrace(t *testing.T) {
	c, _ := NewKeylessTransformation(3)
	trace, _ := c.Trace(ModeEncrypt, "HELLO")
	if len(trace) != 3 {
		t.Fatalf("trace has %d steps, want 3", len(trace))
	}
	cols := []string{trace[0].Output, trace[1].Output, trace[2].Output}
	if cols[0] != "HL" || cols[1] != "EO" || cols[2] != "L" {
		t.Fatalf("columns = %v", cols)
	}
	if len(trace[0].Grid) != 2 || trace[0].Grid[0] != "HEL" || trace[0].Grid[1] != "LO" {
		t.Fatalf("grid = %v", trace[0].Grid)
	}

	dec, _ := c.Trace(ModeDecrypt, "HLEOL")
	if len(dec) != 3 || dec[2].Input != "L" {
		t.Fatalf("decrypt trace = %+v", dec)
	}
}

func TestKeylessTransformationRejectsColumns(t *testing.T) {
	for _, cols := range []int{-1, 0, 1} {
		if _, err := NewKeylessTransformation(cols); !errors.Is(err, ErrInvalidColumnCount) {
			t.Errorf("NewKeylessTransformation(%d) error = %v, want ErrInvalidColumnCount", cols, err)
		}
	}
}
