package alphabet

import "testing"

func TestOffset(t *testing.T) {
	tests := []struct {
		in     rune
		offset int
		upper  bool
		ok     bool
	}{
		{'A', 0, true, true},
		{'Z', 25, true, true},
		{'a', 0, false, true},
		{'m', 12, false, true},
		{' ', 0, false, false},
		{'!', 0, false, false},
		{'é', 0, false, false},
		{'[', 0, false, false},
	}

	for _, tt := range tests {
		offset, upper, ok := Offset(tt.in)
		if offset != tt.offset || upper != tt.upper || ok != tt.ok {
			t.Errorf("Offset(%q) = (%d, %v, %v), want (%d, %v, %v)",
				tt.in, offset, upper, ok, tt.offset, tt.upper, tt.ok)
		}
	}
}

func TestLetterRoundTrip(t *testing.T) {
	for r := 'A'; r <= 'Z'; r++ {
		offset, upper, _ := Offset(r)
		if got := Letter(offset, upper); got != r {
			t.Errorf("Letter(Offset(%q)) = %q", r, got)
		}
	}
	for r := 'a'; r <= 'z'; r++ {
		offset, upper, _ := Offset(r)
		if got := Letter(offset, upper); got != r {
			t.Errorf("Letter(Offset(%q)) = %q", r, got)
		}
	}
	if got := Letter(-1, true); got != 'Z' {
		t.Errorf("Letter(-1) = %q, want Z", got)
	}
}

func TestMod(t *testing.T) {
	tests := []struct{ x, m, want int }{
		{5, 26, 5},
		{26, 26, 0},
		{-1, 26, 25},
		{-27, 26, 25},
		{-52, 26, 0},
	}
	for _, tt := range tests {
		if got := Mod(tt.x, tt.m); got != tt.want {
			t.Errorf("Mod(%d, %d) = %d, want %d", tt.x, tt.m, got, tt.want)
		}
	}
}

func TestGCD(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{7, 26, 1},
		{2, 26, 2},
		{13, 26, 13},
		{0, 26, 26},
		{-4, 26, 2},
	}
	for _, tt := range tests {
		if got := GCD(tt.a, tt.b); got != tt.want {
			t.Errorf("GCD(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestModInverse(t *testing.T) {
	for a := 0; a < Size; a++ {
		inv := ModInverse(a, Size)
		if GCD(a, Size) != 1 {
			if inv != -1 {
				t.Errorf("ModInverse(%d) = %d, want -1", a, inv)
			}
			continue
		}
		if Mod(a*inv, Size) != 1 {
			t.Errorf("ModInverse(%d) = %d is not an inverse", a, inv)
		}
	}
	if got := ModInverse(-7, Size); got != 11 {
		t.Errorf("ModInverse(-7) = %d, want 11", got)
	}
}

func TestClean(t *testing.T) {
	if got := Clean("Hello, World! 123"); got != "HELLOWORLD" {
		t.Errorf("Clean = %q", got)
	}
	if got := Clean(""); got != "" {
		t.Errorf("Clean(\"\") = %q", got)
	}
}
