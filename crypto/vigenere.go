package crypto

import (
	"fmt"
	"strings"

	"classical-cipher-backend/alphabet"
)

// VigenereCipher shifts each letter by the next letter of a repeating
// keyword. Output is always uppercase; original case is not preserved.
type VigenereCipher struct {
	key []int
}

func NewVigenere(keyword string) (*VigenereCipher, error) {
	if err := ValidateKeyword(keyword); err != nil {
		return nil, err
	}

	cleaned := alphabet.Clean(keyword)
	key := make([]int, len(cleaned))
	for i, r := range cleaned {
		key[i], _, _ = alphabet.Offset(r)
	}
	return &VigenereCipher{key: key}, nil
}

// ValidateKeyword checks that a keyword has at least one letter. Other
// characters are ignored by the keyword ciphers.
func ValidateKeyword(keyword string) error {
	if strings.TrimSpace(keyword) == "" {
		return fmt.Errorf("%w: keyword cannot be empty", ErrInvalidKeyFormat)
	}
	if alphabet.Clean(keyword) == "" {
		return fmt.Errorf("%w: keyword %q has no letters", ErrInvalidKeyFormat, keyword)
	}
	return nil
}

func (v *VigenereCipher) Kind() Kind { return Vigenere }

func (v *VigenereCipher) Encrypt(plaintext string) (string, error) {
	out, _ := v.apply(ModeEncrypt, plaintext)
	return out, nil
}

func (v *VigenereCipher) Decrypt(ciphertext string) (string, error) {
	out, _ := v.apply(ModeDecrypt, ciphertext)
	return out, nil
}

func (v *VigenereCipher) Trace(mode Mode, text string) (Trace, error) {
	if err := mode.validate(); err != nil {
		return nil, err
	}
	_, trace := v.apply(mode, text)
	return trace, nil
}

func (v *VigenereCipher) apply(mode Mode, text string) (string, Trace) {
	keyLen := len(v.key)
	keyIndex := 0

	return substitute(text, func(r rune, offset int, _ bool) Step {
		shift := v.key[keyIndex%keyLen]
		keyIndex++
		keyLetter := alphabet.Letter(shift, true)
		in := alphabet.Letter(offset, true)

		var n int
		var op string
		if mode == ModeDecrypt {
			// (C - K + 26) mod 26
			n, op = alphabet.Mod(offset-shift, alphabet.Size), "-"
		} else {
			// (P + K) mod 26
			n, op = alphabet.Mod(offset+shift, alphabet.Size), "+"
		}

		out := alphabet.Letter(n, true)
		return Step{
			Input:      string(r),
			Key:        string(keyLetter),
			Output:     string(out),
			Derivation: fmt.Sprintf("%c (%d) %s %c (%d) ≡ %d (mod 26) ≡ %c", in, offset, op, keyLetter, shift, n, out),
		}
	})
}
