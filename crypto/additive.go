package crypto

import (
	"fmt"

	"classical-cipher-backend/alphabet"
)

// AdditiveCipher is the Caesar shift: c = (p + k) mod 26.
type AdditiveCipher struct {
	shift int
}

// NewAdditive accepts any integer; it is reduced mod 26.
func NewAdditive(key int) *AdditiveCipher {
	return &AdditiveCipher{shift: alphabet.Mod(key, alphabet.Size)}
}

func (c *AdditiveCipher) Kind() Kind { return Additive }

func (c *AdditiveCipher) Encrypt(text string) (string, error) {
	out, _ := c.apply(ModeEncrypt, text)
	return out, nil
}

func (c *AdditiveCipher) Decrypt(text string) (string, error) {
	out, _ := c.apply(ModeDecrypt, text)
	return out, nil
}

func (c *AdditiveCipher) Trace(mode Mode, text string) (Trace, error) {
	if err := mode.validate(); err != nil {
		return nil, err
	}
	_, trace := c.apply(mode, text)
	return trace, nil
}

// shiftOffset moves one offset by the key in the given direction.
func (c *AdditiveCipher) shiftOffset(mode Mode, offset int) (int, string) {
	if mode == ModeDecrypt {
		return alphabet.Mod(offset-c.shift, alphabet.Size), "-"
	}
	return alphabet.Mod(offset+c.shift, alphabet.Size), "+"
}

func (c *AdditiveCipher) apply(mode Mode, text string) (string, Trace) {
	return substitute(text, func(r rune, offset int, upper bool) Step {
		n, op := c.shiftOffset(mode, offset)
		out := alphabet.Letter(n, upper)
		return Step{
			Input:      string(r),
			Key:        fmt.Sprint(c.shift),
			Output:     string(out),
			Derivation: fmt.Sprintf("%c (%d) %s %d ≡ %d (mod 26) ≡ %c", r, offset, op, c.shift, n, out),
		}
	})
}
