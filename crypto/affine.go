package crypto

import (
	"fmt"

	"classical-cipher-backend/alphabet"
)

// AffineCipher is a multiplicative cipher followed by an additive one:
// c = (a·p + b) mod 26. Decryption undoes the shift first, then the factor.
type AffineCipher struct {
	mul *MultiplicativeCipher
	add *AdditiveCipher
}

func NewAffine(a, b int) (*AffineCipher, error) {
	mul, err := NewMultiplicative(a)
	if err != nil {
		return nil, err
	}
	return &AffineCipher{mul: mul, add: NewAdditive(b)}, nil
}

func (c *AffineCipher) Kind() Kind { return Affine }

func (c *AffineCipher) Encrypt(text string) (string, error) {
	out, _ := c.apply(ModeEncrypt, text)
	return out, nil
}

func (c *AffineCipher) Decrypt(text string) (string, error) {
	out, _ := c.apply(ModeDecrypt, text)
	return out, nil
}

func (c *AffineCipher) Trace(mode Mode, text string) (Trace, error) {
	if err := mode.validate(); err != nil {
		return nil, err
	}
	_, trace := c.apply(mode, text)
	return trace, nil
}

func (c *AffineCipher) apply(mode Mode, text string) (string, Trace) {
	key := fmt.Sprintf("a=%d, b=%d", c.mul.factor, c.add.shift)

	return substitute(text, func(r rune, offset int, upper bool) Step {
		if mode == ModeDecrypt {
			shifted, _ := c.add.shiftOffset(mode, offset)
			n, product, inverse := c.mul.scaleOffset(mode, shifted)
			mid, out := alphabet.Letter(shifted, upper), alphabet.Letter(n, upper)
			return Step{
				Input:        string(r),
				Key:          key,
				Intermediate: string(mid),
				Output:       string(out),
				Derivation: fmt.Sprintf("%c (%d) - %d ≡ %d (%c); %d × %d = %d ≡ %d (mod 26) ≡ %c",
					r, offset, c.add.shift, shifted, mid, shifted, inverse, product, n, out),
			}
		}

		scaled, product, _ := c.mul.scaleOffset(mode, offset)
		n, _ := c.add.shiftOffset(mode, scaled)
		mid, out := alphabet.Letter(scaled, upper), alphabet.Letter(n, upper)
		return Step{
			Input:        string(r),
			Key:          key,
			Intermediate: string(mid),
			Output:       string(out),
			Derivation: fmt.Sprintf("%c (%d) × %d = %d ≡ %d (%c); %d + %d ≡ %d (mod 26) ≡ %c",
				r, offset, c.mul.factor, product, scaled, mid, scaled, c.add.shift, n, out),
		}
	})
}
