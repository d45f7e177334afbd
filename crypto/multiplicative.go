package crypto

import (
	"fmt"

	"classical-cipher-backend/alphabet"
)

// MultiplicativeCipher computes c = k·p mod 26 and decrypts with k⁻¹.
type MultiplicativeCipher struct {
	factor  int
	inverse int
}

// NewMultiplicative rejects keys that share a factor with 26, since those
// have no inverse and could not be decrypted.
func NewMultiplicative(key int) (*MultiplicativeCipher, error) {
	factor, inverse, err := validateFactor(key)
	if err != nil {
		return nil, err
	}
	return &MultiplicativeCipher{factor: factor, inverse: inverse}, nil
}

func validateFactor(key int) (int, int, error) {
	factor := alphabet.Mod(key, alphabet.Size)
	if alphabet.GCD(factor, alphabet.Size) != 1 {
		return 0, 0, fmt.Errorf("%w: gcd(%d, 26) = %d", ErrKeyNotCoprime, key, alphabet.GCD(factor, alphabet.Size))
	}
	inverse := alphabet.ModInverse(factor, alphabet.Size)
	if inverse == -1 {
		return 0, 0, fmt.Errorf("%w: %d has no inverse mod 26", ErrKeyNotInvertible, key)
	}
	return factor, inverse, nil
}

func (c *MultiplicativeCipher) Kind() Kind { return Multiplicative }

func (c *MultiplicativeCipher) Encrypt(text string) (string, error) {
	out, _ := c.apply(ModeEncrypt, text)
	return out, nil
}

func (c *MultiplicativeCipher) Decrypt(text string) (string, error) {
	out, _ := c.apply(ModeDecrypt, text)
	return out, nil
}

func (c *MultiplicativeCipher) Trace(mode Mode, text string) (Trace, error) {
	if err := mode.validate(); err != nil {
		return nil, err
	}
	_, trace := c.apply(mode, text)
	return trace, nil
}

// scaleOffset multiplies by the key when encrypting and by its inverse when
// decrypting. The unreduced product is returned for derivations.
func (c *MultiplicativeCipher) scaleOffset(mode Mode, offset int) (n, product, factor int) {
	factor = c.factor
	if mode == ModeDecrypt {
		factor = c.inverse
	}
	product = factor * offset
	return alphabet.Mod(product, alphabet.Size), product, factor
}

func (c *MultiplicativeCipher) apply(mode Mode, text string) (string, Trace) {
	return substitute(text, func(r rune, offset int, upper bool) Step {
		n, product, factor := c.scaleOffset(mode, offset)
		out := alphabet.Letter(n, upper)
		return Step{
			Input:      string(r),
			Key:        fmt.Sprint(factor),
			Output:     string(out),
			Derivation: fmt.Sprintf("%c (%d) × %d = %d ≡ %d (mod 26) ≡ %c", r, offset, factor, product, n, out),
		}
	})
}
