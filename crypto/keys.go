package crypto

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Info describes a cipher for catalogue listings.
type Info struct {
	Kind        Kind   `json:"id"`
	Name        string `json:"name"`
	KeyShape    string `json:"key_shape"`
	Description string `json:"description"`
}

var catalogue = []Info{
	{Additive, "Additive Cipher", IntKey(0).keyShape(), "Shifts every letter by the key: c = (p + k) mod 26."},
	{Multiplicative, "Multiplicative Cipher", IntKey(0).keyShape(), "Multiplies every letter by a key coprime with 26: c = k·p mod 26."},
	{Affine, "Affine Cipher", PairKey{}.keyShape(), "Multiplicative then additive: c = (a·p + b) mod 26, with a coprime with 26."},
	{Autokey, "Autokey Cipher", IntKey(0).keyShape(), "Seeds the keystream with one letter from the key, then extends it with the plaintext."},
	{Vigenere, "Vigenère Cipher", WordKey("").keyShape(), "Shifts each letter by the next letter of a repeating keyword. Output is uppercase."},
	{Playfair, "Playfair Cipher", WordKey("").keyShape(), "Substitutes letter pairs using a 5×5 key-square built from the keyword."},
	{Hill, "Hill Cipher", MatrixKey(nil).keyShape(), "Multiplies blocks of n letters by an invertible n×n matrix mod 26, e.g. [[3,3],[2,5]]."},
	{RailFence, "Rail Fence Cipher", NoKey{}.keyShape(), "Writes even-position letters, then odd-position letters."},
	{KeylessTransformation, "Keyless Transformation Cipher", ColumnsKey(0).keyShape(), "Writes letters row by row into a grid and reads them column by column."},
}

// Catalogue lists every supported cipher.
func Catalogue() []Info {
	return append([]Info(nil), catalogue...)
}

// ParseKind maps a cipher id to its Kind.
func ParseKind(id string) (Kind, error) {
	for _, info := range catalogue {
		if strings.EqualFold(string(info.Kind), strings.TrimSpace(id)) {
			return info.Kind, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCipher, id)
}

// ParseKey turns the string inputs of a form or command line into the key
// variant kind expects. secondary is only used by the affine cipher. Hill
// keys are JSON matrices such as [[3,3],[2,5]].
func ParseKey(kind Kind, primary, secondary string) (Key, error) {
	switch kind {
	case Additive, Multiplicative, Autokey:
		k, err := parseInt("key", primary)
		if err != nil {
			return nil, err
		}
		return IntKey(k), nil
	case Affine:
		a, err := parseInt("key a", primary)
		if err != nil {
			return nil, err
		}
		b, err := parseInt("key b", secondary)
		if err != nil {
			return nil, err
		}
		return PairKey{A: a, B: b}, nil
	case Vigenere, Playfair:
		return WordKey(primary), nil
	case KeylessTransformation:
		k, err := parseInt("column count", primary)
		if err != nil {
			return nil, err
		}
		return ColumnsKey(k), nil
	case Hill:
		return parseMatrix(primary)
	case RailFence:
		return NoKey{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCipher, string(kind))
}

func parseInt(name, s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidKeyFormat, name)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidKeyFormat, name, s)
	}
	return v, nil
}

func parseMatrix(s string) (MatrixKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: matrix is required", ErrInvalidKeyFormat)
	}

	var raw [][]float64
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, fmt.Errorf("%w: matrix must be a JSON array of integer rows: %v", ErrInvalidKeyFormat, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: matrix is empty", ErrInvalidMatrixShape)
	}

	matrix := make(MatrixKey, len(raw))
	for i, row := range raw {
		if len(row) != len(raw) {
			return nil, fmt.Errorf("%w: row %d has %d elements, want %d", ErrInvalidMatrixShape, i, len(row), len(raw))
		}
		matrix[i] = make([]int, len(row))
		for j, v := range row {
			if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
				return nil, fmt.Errorf("%w: matrix element [%d][%d] = %v is not an integer", ErrInvalidKeyFormat, i, j, v)
			}
			matrix[i][j] = int(v)
		}
	}
	return matrix, nil
}
