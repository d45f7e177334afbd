package crypto

import (
	"errors"
	"strings"
	"testing"

	"classical-cipher-backend/alphabet"
)

var roundTripTexts = []string{
	"",
	"HELLO",
	"Hello, World!",
	"attack at dawn",
	"The quick brown fox jumps over the lazy dog 42",
}

func TestRoundTrip(t *testing.T) {
	identity := func(s string) string { return s }
	lettersOnly := alphabet.Clean
	hillPadded := func(s string) string {
		c := alphabet.Clean(s)
		if len(c)%2 == 1 {
			c += "X"
		}
		return c
	}
	playfairPairs := func(s string) string {
		var b strings.Builder
		for _, p := range Digraphs(s) {
			b.WriteString(string(p[:]))
		}
		return b.String()
	}

	tests := []struct {
		kind      Kind
		key       Key
		canonical func(string) string
	}{
		{Additive, IntKey(3), identity},
		{Additive, IntKey(-40), identity},
		{Multiplicative, IntKey(7), identity},
		{Multiplicative, IntKey(25), identity},
		{Affine, PairKey{A: 5, B: 8}, identity},
		{Affine, PairKey{A: 11, B: -3}, identity},
		{Autokey, IntKey(3), identity},
		{Vigenere, WordKey("LEMON"), strings.ToUpper},
		{Hill, MatrixKey{{3, 3}, {2, 5}}, hillPadded},
		{RailFence, NoKey{}, lettersOnly},
		{RailFence, nil, lettersOnly},
		{KeylessTransformation, ColumnsKey(3), lettersOnly},
		{KeylessTransformation, ColumnsKey(7), lettersOnly},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			for _, text := range roundTripTexts {
				enc, err := Transform(tt.kind, ModeEncrypt, text, tt.key)
				if err != nil {
					t.Fatalf("encrypt %q failed: %v", text, err)
				}
				dec, err := Transform(tt.kind, ModeDecrypt, enc, tt.key)
				if err != nil {
					t.Fatalf("decrypt %q failed: %v", enc, err)
				}
				if want := tt.canonical(text); dec != want {
					t.Fatalf("round trip of %q = %q, want %q", text, dec, want)
				}
			}
		})
	}

	t.Run("playfair", func(t *testing.T) {
		c, _ := NewPlayfair("PLAYFAIR EXAMPLE")
		for _, text := range roundTripTexts {
			enc, _ := c.Encrypt(text)
			dec, _ := c.DecryptWithFiller(enc)
			if want := playfairPairs(text); dec != want {
				t.Fatalf("round trip of %q = %q, want %q", text, dec, want)
			}
		}
	})
}

func TestTraceLength(t *testing.T) {
	tests := []struct {
		kind Kind
		key  Key
		text string
		want int
	}{
		{Additive, IntKey(3), "Hi there", 8},
		{Multiplicative, IntKey(7), "Hi there", 8},
		{Affine, PairKey{A: 5, B: 8}, "Hi there", 8},
		{Autokey, IntKey(3), "Hi there", 8},
		{Vigenere, WordKey("KEY"), "Hi there", 8},
		{Playfair, WordKey("MONARCHY"), "HELLO", 3},
		{Hill, MatrixKey{{3, 3}, {2, 5}}, "HELLO", 3},
		{RailFence, NoKey{}, "Hi there", 7},
		{KeylessTransformation, ColumnsKey(3), "HELLO", 3},
		{KeylessTransformation, ColumnsKey(3), "HI", 2},
		{Additive, IntKey(3), "", 0},
		{Hill, MatrixKey{{3, 3}, {2, 5}}, "", 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+tt.text, func(t *testing.T) {
			for _, mode := range []Mode{ModeEncrypt, ModeDecrypt} {
				trace, err := TraceOf(tt.kind, mode, tt.text, tt.key)
				if err != nil {
					t.Fatalf("%s trace failed: %v", mode, err)
				}
				if trace.Len() != tt.want {
					t.Fatalf("%s trace has %d steps, want %d", mode, trace.Len(), tt.want)
				}
				for i, step := range trace {
					if step.Index != i {
						t.Fatalf("step %d has index %d", i, step.Index)
					}
				}
			}
		})
	}
}

func TestTraceMatchesTransform(t *testing.T) {
	// for per-character ciphers the step outputs spell the transform result
	for _, kind := range []Kind{Additive, Autokey, Vigenere} {
		key := Key(IntKey(5))
		if kind == Vigenere {
			key = WordKey("KEY")
		}
		trace, _ := TraceOf(kind, ModeEncrypt, "Hello, World", key)
		want, _ := Transform(kind, ModeEncrypt, "Hello, World", key)

		var b strings.Builder
		for _, step := range trace {
			b.WriteString(step.Output)
		}
		if b.String() != want {
			t.Errorf("%s: trace spells %q, transform gives %q", kind, b.String(), want)
		}
	}
}

func TestNewRejectsWrongKeyShape(t *testing.T) {
	tests := []struct {
		kind Kind
		key  Key
	}{
		{Additive, WordKey("abc")},
		{Affine, IntKey(5)},
		{Hill, IntKey(3)},
		{Vigenere, nil},
		{RailFence, IntKey(2)},
		{KeylessTransformation, IntKey(3)},
	}
	for _, tt := range tests {
		if _, err := New(tt.kind, tt.key); !errors.Is(err, ErrInvalidKeyFormat) {
			t.Errorf("New(%s, %#v) error = %v, want ErrInvalidKeyFormat", tt.kind, tt.key, err)
		}
	}
}

func TestNewUnknownCipher(t *testing.T) {
	if _, err := New("enigma", NoKey{}); !errors.Is(err, ErrUnknownCipher) {
		t.Fatalf("error = %v, want ErrUnknownCipher", err)
	}
}

func TestTransformInvalidMode(t *testing.T) {
	if _, err := Transform(Additive, "sideways", "abc", IntKey(1)); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("error = %v, want ErrInvalidMode", err)
	}
	c := NewAdditive(1)
	if _, err := c.Trace("sideways", "abc"); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("trace error = %v, want ErrInvalidMode", err)
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
		key  bool
	}{
		{mustErr(Transform(Multiplicative, ModeEncrypt, "x", IntKey(2))), "key_not_coprime", true},
		{mustErr(Transform(Hill, ModeEncrypt, "x", MatrixKey{{2, 4}, {4, 8}})), "key_not_invertible", true},
		{mustErr(Transform(Hill, ModeEncrypt, "x", MatrixKey{{1, 2}})), "invalid_matrix_shape", true},
		{mustErr(Transform(KeylessTransformation, ModeEncrypt, "x", ColumnsKey(1))), "invalid_column_count", true},
		{mustErr(Transform(Vigenere, ModeEncrypt, "x", WordKey(""))), "invalid_key_format", true},
		{mustErr(Transform("rot13", ModeEncrypt, "x", NoKey{})), "unknown_cipher", false},
		{errors.New("boom"), "internal", false},
	}
	for _, tt := range tests {
		if got := ErrorKind(tt.err); got != tt.want {
			t.Errorf("ErrorKind(%v) = %q, want %q", tt.err, got, tt.want)
		}
		if got := IsKeyError(tt.err); got != tt.key {
			t.Errorf("IsKeyError(%v) = %v, want %v", tt.err, got, tt.key)
		}
	}
}

func mustErr(_ string, err error) error {
	return err
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"", ModeEncrypt, true},
		{"encrypt", ModeEncrypt, true},
		{" Decrypt ", ModeDecrypt, true},
		{"both", "", false},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseMode(%q) = %q, %v", tt.in, got, err)
		}
	}
}
