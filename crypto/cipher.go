// Package crypto contains the classical ciphers, their keys and the step
// traces used to animate them
package crypto

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"classical-cipher-backend/alphabet"
)

// Kind identifies a cipher. The values match the ids the front end routes on.
type Kind string

const (
	Additive              Kind = "additive"
	Multiplicative        Kind = "multiplicative"
	Affine                Kind = "affine"
	Autokey               Kind = "autokey"
	Vigenere              Kind = "vigenere"
	Playfair              Kind = "playfair"
	Hill                  Kind = "hill"
	RailFence             Kind = "railfence"
	KeylessTransformation Kind = "keylessTransformation"
)

// Mode selects the direction of a transform.
type Mode string

const (
	ModeEncrypt Mode = "encrypt"
	ModeDecrypt Mode = "decrypt"
)

// ParseMode accepts "encrypt" or "decrypt"; an empty string means encrypt.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeEncrypt:
		return ModeEncrypt, nil
	case ModeDecrypt:
		return ModeDecrypt, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

func (m Mode) validate() error {
	if m != ModeEncrypt && m != ModeDecrypt {
		return fmt.Errorf("%w: %q", ErrInvalidMode, string(m))
	}
	return nil
}

// Cipher is implemented once per Kind. Keys are validated when the cipher is
// constructed, so Encrypt and Decrypt only fail on conditions a valid key
// cannot rule out.
type Cipher interface {
	Kind() Kind
	Encrypt(text string) (string, error)
	Decrypt(text string) (string, error)
	// Trace returns one step per processed unit of text.
	Trace(mode Mode, text string) (Trace, error)
}

// Key is one of IntKey, PairKey, WordKey, ColumnsKey, MatrixKey or NoKey.
type Key interface {
	keyShape() string
}

type IntKey int

type PairKey struct {
	A int
	B int
}

type WordKey string

type ColumnsKey int

type MatrixKey [][]int

type NoKey struct{}

func (IntKey) keyShape() string     { return "integer" }
func (PairKey) keyShape() string    { return "integer pair" }
func (WordKey) keyShape() string    { return "keyword" }
func (ColumnsKey) keyShape() string { return "column count" }
func (MatrixKey) keyShape() string  { return "matrix" }
func (NoKey) keyShape() string      { return "none" }

// New validates key for kind and returns the cipher.
func New(kind Kind, key Key) (Cipher, error) {
	switch kind {
	case Additive:
		k, ok := key.(IntKey)
		if !ok {
			return nil, keyMismatch(kind, key)
		}
		return NewAdditive(int(k)), nil
	case Multiplicative:
		k, ok := key.(IntKey)
		if !ok {
			return nil, keyMismatch(kind, key)
		}
		c, err := NewMultiplicative(int(k))
		if err != nil {
			return nil, err
		}
		return c, nil
	case Affine:
		k, ok := key.(PairKey)
		if !ok {
			return nil, keyMismatch(kind, key)
		}
		c, err := NewAffine(k.A, k.B)
		if err != nil {
			return nil, err
		}
		return c, nil
	case Autokey:
		k, ok := key.(IntKey)
		if !ok {
			return nil, keyMismatch(kind, key)
		}
		return NewAutokey(int(k)), nil
	case Vigenere:
		k, ok := key.(WordKey)
		if !ok {
			return nil, keyMismatch(kind, key)
		}
		c, err := NewVigenere(string(k))
		if err != nil {
			return nil, err
		}
		return c, nil
	case Playfair:
		k, ok := key.(WordKey)
		if !ok {
			return nil, keyMismatch(kind, key)
		}
		c, err := NewPlayfair(string(k))
		if err != nil {
			return nil, err
		}
		return c, nil
	case Hill:
		k, ok := key.(MatrixKey)
		if !ok {
			return nil, keyMismatch(kind, key)
		}
		c, err := NewHill(k)
		if err != nil {
			return nil, err
		}
		return c, nil
	case RailFence:
		if key != nil {
			if _, ok := key.(NoKey); !ok {
				return nil, keyMismatch(kind, key)
			}
		}
		return NewRailFence(), nil
	case KeylessTransformation:
		k, ok := key.(ColumnsKey)
		if !ok {
			return nil, keyMismatch(kind, key)
		}
		c, err := NewKeylessTransformation(int(k))
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCipher, string(kind))
}

func keyMismatch(kind Kind, key Key) error {
	if key == nil {
		return fmt.Errorf("%w: %s cipher needs a key", ErrInvalidKeyFormat, kind)
	}
	return fmt.Errorf("%w: %s cipher does not take a %s key", ErrInvalidKeyFormat, kind, key.keyShape())
}

// Transform runs one cipher in the given mode over text.
func Transform(kind Kind, mode Mode, text string, key Key) (string, error) {
	if err := mode.validate(); err != nil {
		return "", err
	}
	c, err := New(kind, key)
	if err != nil {
		return "", err
	}
	if mode == ModeDecrypt {
		return c.Decrypt(text)
	}
	return c.Encrypt(text)
}

// TraceOf returns the step trace of one transform. Calling it again with the
// same arguments yields an identical trace.
func TraceOf(kind Kind, mode Mode, text string, key Key) (Trace, error) {
	if err := mode.validate(); err != nil {
		return nil, err
	}
	c, err := New(kind, key)
	if err != nil {
		return nil, err
	}
	return c.Trace(mode, text)
}

// substitute walks text rune by rune. Letters are handed to fn, which returns
// the finished step; every other rune passes through unchanged as its own
// step. Invalid UTF-8 bytes pass through as the original bytes.
func substitute(text string, fn func(r rune, offset int, upper bool) Step) (string, Trace) {
	var out strings.Builder
	out.Grow(len(text))
	trace := make(Trace, 0, len(text))

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		raw := text[i : i+size]
		i += size

		offset, upper, ok := alphabet.Offset(r)
		var step Step
		if ok {
			step = fn(r, offset, upper)
		} else {
			step = Step{
				Input:       raw,
				Output:      raw,
				Passthrough: true,
				Derivation:  "non-alphabetic character passed through",
			}
		}
		step.Index = len(trace)
		trace = append(trace, step)
		out.WriteString(step.Output)
	}
	return out.String(), trace
}
