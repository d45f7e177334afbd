package crypto

import (
	"fmt"

	"classical-cipher-backend/alphabet"
)

// AutokeyCipher is seeded with a single letter derived from an integer key;
// after the seed, each plaintext letter becomes the key for the next one.
//
// Only letters consume keystream positions. Decryption has to run strictly
// left to right because the keystream is built from recovered plaintext.
type AutokeyCipher struct {
	seed int
}

func NewAutokey(key int) *AutokeyCipher {
	return &AutokeyCipher{seed: alphabet.Mod(key, alphabet.Size)}
}

func (c *AutokeyCipher) Kind() Kind { return Autokey }

func (c *AutokeyCipher) Encrypt(text string) (string, error) {
	out, _ := c.apply(ModeEncrypt, text)
	return out, nil
}

func (c *AutokeyCipher) Decrypt(text string) (string, error) {
	out, _ := c.apply(ModeDecrypt, text)
	return out, nil
}

func (c *AutokeyCipher) Trace(mode Mode, text string) (Trace, error) {
	if err := mode.validate(); err != nil {
		return nil, err
	}
	_, trace := c.apply(mode, text)
	return trace, nil
}

func (c *AutokeyCipher) apply(mode Mode, text string) (string, Trace) {
	keystream := []int{c.seed}
	next := 0

	return substitute(text, func(r rune, offset int, upper bool) Step {
		k := keystream[next]
		next++
		keyLetter := alphabet.Letter(k, true)

		var n int
		var op string
		if mode == ModeDecrypt {
			n, op = alphabet.Mod(offset-k, alphabet.Size), "-"
			keystream = append(keystream, n)
		} else {
			n, op = alphabet.Mod(offset+k, alphabet.Size), "+"
			keystream = append(keystream, offset)
		}

		out := alphabet.Letter(n, upper)
		return Step{
			Input:      string(r),
			Key:        string(keyLetter),
			Output:     string(out),
			Derivation: fmt.Sprintf("%c (%d) %s %c (%d) ≡ %d (mod 26) ≡ %c", r, offset, op, keyLetter, k, n, out),
		}
	})
}
