package crypto

import (
	"errors"
)

// Key validation failures. Ciphers wrap these with fmt.Errorf("%w: ...") so
// callers can match them with errors.Is.
var (
	ErrInvalidKeyFormat   = errors.New("invalid key format")
	ErrKeyNotCoprime      = errors.New("key is not coprime with 26")
	ErrKeyNotInvertible   = errors.New("key is not invertible mod 26")
	ErrInvalidMatrixShape = errors.New("invalid key matrix shape")
	ErrInvalidColumnCount = errors.New("invalid column count")
	ErrUnknownCipher      = errors.New("unknown cipher")
	ErrInvalidMode        = errors.New("invalid mode")
)

var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrInvalidKeyFormat, "invalid_key_format"},
	{ErrKeyNotCoprime, "key_not_coprime"},
	{ErrKeyNotInvertible, "key_not_invertible"},
	{ErrInvalidMatrixShape, "invalid_matrix_shape"},
	{ErrInvalidColumnCount, "invalid_column_count"},
	{ErrUnknownCipher, "unknown_cipher"},
	{ErrInvalidMode, "invalid_mode"},
}

// ErrorKind returns a stable name for err, suitable for API clients.
// Errors outside the taxonomy are reported as "internal".
func ErrorKind(err error) string {
	for _, ek := range errorKinds {
		if errors.Is(err, ek.err) {
			return ek.kind
		}
	}
	return "internal"
}

// IsKeyError reports whether err is a key validation failure, i.e. one the
// caller can fix by supplying a different key.
func IsKeyError(err error) bool {
	return errors.Is(err, ErrInvalidKeyFormat) ||
		errors.Is(err, ErrKeyNotCoprime) ||
		errors.Is(err, ErrKeyNotInvertible) ||
		errors.Is(err, ErrInvalidMatrixShape) ||
		errors.Is(err, ErrInvalidColumnCount)
}
