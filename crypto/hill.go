package crypto

import (
	"fmt"
	"strings"

	"classical-cipher-backend/alphabet"
)

// HillCipher multiplies blocks of n letters by an n×n key matrix mod 26.
type HillCipher struct {
	key     [][]int
	inverse [][]int
	n       int
}

// NewHill checks that the matrix is square and that its determinant is
// invertible mod 26, then precomputes the inverse matrix for decryption.
// Entries are reduced mod 26 first so the cofactor arithmetic cannot overflow.
func NewHill(matrix [][]int) (*HillCipher, error) {
	n := len(matrix)
	if n == 0 {
		return nil, fmt.Errorf("%w: matrix is empty", ErrInvalidMatrixShape)
	}
	key := make([][]int, n)
	for i, row := range matrix {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d elements, want %d", ErrInvalidMatrixShape, i, len(row), n)
		}
		key[i] = make([]int, n)
		for j, v := range row {
			key[i][j] = alphabet.Mod(v, alphabet.Size)
		}
	}

	det := alphabet.Mod(Determinant(key), alphabet.Size)
	detInv := alphabet.ModInverse(det, alphabet.Size)
	if alphabet.GCD(det, alphabet.Size) != 1 || detInv == -1 {
		return nil, fmt.Errorf("%w: determinant %d is not coprime with 26", ErrKeyNotInvertible, det)
	}

	adj := adjugate(key)
	inverse := make([][]int, n)
	for i := range adj {
		inverse[i] = make([]int, n)
		for j := range adj[i] {
			inverse[i][j] = alphabet.Mod(detInv*adj[i][j], alphabet.Size)
		}
	}

	return &HillCipher{key: key, inverse: inverse, n: n}, nil
}

func (c *HillCipher) Kind() Kind { return Hill }

// Inverse returns a copy of the key's inverse mod 26.
func (c *HillCipher) Inverse() [][]int {
	out := make([][]int, c.n)
	for i, row := range c.inverse {
		out[i] = append([]int(nil), row...)
	}
	return out
}

func (c *HillCipher) Encrypt(text string) (string, error) {
	out, _ := c.apply(ModeEncrypt, text)
	return out, nil
}

// Decrypt does not remove the X padding added during encryption.
func (c *HillCipher) Decrypt(text string) (string, error) {
	out, _ := c.apply(ModeDecrypt, text)
	return out, nil
}

func (c *HillCipher) Trace(mode Mode, text string) (Trace, error) {
	if err := mode.validate(); err != nil {
		return nil, err
	}
	_, trace := c.apply(mode, text)
	return trace, nil
}

// prepare uppercases, strips non-letters and pads with X to a whole number
// of blocks.
func (c *HillCipher) prepare(text string) string {
	prepared := alphabet.Clean(text)
	if rem := len(prepared) % c.n; rem != 0 {
		prepared += strings.Repeat(string(filler), c.n-rem)
	}
	return prepared
}

func (c *HillCipher) apply(mode Mode, text string) (string, Trace) {
	matrix := c.key
	if mode == ModeDecrypt {
		matrix = c.inverse
	}
	keyLabel := formatMatrix(matrix)

	prepared := c.prepare(text)
	var out strings.Builder
	trace := make(Trace, 0, len(prepared)/c.n)
	for i := 0; i < len(prepared); i += c.n {
		block := prepared[i : i+c.n]
		step := c.block(matrix, block)
		step.Index = len(trace)
		step.Key = keyLabel
		trace = append(trace, step)
		out.WriteString(step.Output)
	}
	return out.String(), trace
}

func (c *HillCipher) block(matrix [][]int, block string) Step {
	vector := make([]int, c.n)
	numbers := make([]string, c.n)
	for i, r := range block {
		vector[i], _, _ = alphabet.Offset(r)
		numbers[i] = fmt.Sprintf("%c=%d", r, vector[i])
	}

	sums := make([]int, c.n)
	products := make([]string, c.n)
	for i, row := range matrix {
		terms := make([]string, c.n)
		for j, k := range row {
			sums[i] += k * vector[j]
			terms[j] = fmt.Sprintf("%d×%d", k, vector[j])
		}
		products[i] = fmt.Sprintf("%s = %d", strings.Join(terms, " + "), sums[i])
	}

	reduced := make([]int, c.n)
	letters := make([]rune, c.n)
	reductions := make([]string, c.n)
	for i, s := range sums {
		reduced[i] = alphabet.Mod(s, alphabet.Size)
		letters[i] = alphabet.Letter(reduced[i], true)
		reductions[i] = fmt.Sprintf("%d mod 26 = %d → %c", s, reduced[i], letters[i])
	}
	output := string(letters)

	return Step{
		Input:  block,
		Output: output,
		Derivation: fmt.Sprintf("%s × %v = %v ≡ %v (mod 26) → %s",
			formatMatrix(matrix), vector, sums, reduced, output),
		Stages: []Stage{
			{Name: "letters", Text: block, Derivation: "block " + block},
			{Name: "numbers", Values: vector, Derivation: strings.Join(numbers, ", ")},
			{Name: "multiply", Values: sums, Derivation: strings.Join(products, "; ")},
			{Name: "reduce", Text: output, Values: reduced, Derivation: strings.Join(reductions, "; ")},
		},
	}
}

// Determinant uses cofactor expansion along the first row. That is fine for
// the small matrices the Hill cipher uses.
func Determinant(m [][]int) int {
	n := len(m)
	switch n {
	case 0:
		return 0
	case 1:
		return m[0][0]
	case 2:
		return m[0][0]*m[1][1] - m[0][1]*m[1][0]
	}

	det := 0
	sign := 1
	for col := 0; col < n; col++ {
		det += sign * m[0][col] * Determinant(minor(m, 0, col))
		sign = -sign
	}
	return det
}

// minor drops one row and one column.
func minor(m [][]int, row, col int) [][]int {
	out := make([][]int, 0, len(m)-1)
	for i, r := range m {
		if i == row {
			continue
		}
		reduced := make([]int, 0, len(r)-1)
		for j, v := range r {
			if j != col {
				reduced = append(reduced, v)
			}
		}
		out = append(out, reduced)
	}
	return out
}

// adjugate is the transposed cofactor matrix.
func adjugate(m [][]int) [][]int {
	n := len(m)
	adj := make([][]int, n)
	for i := range adj {
		adj[i] = make([]int, n)
	}
	if n == 1 {
		adj[0][0] = 1
		return adj
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cofactor := Determinant(minor(m, i, j))
			if (i+j)%2 == 1 {
				cofactor = -cofactor
			}
			adj[j][i] = cofactor
		}
	}
	return adj
}

func formatMatrix(m [][]int) string {
	rows := make([]string, len(m))
	for i, row := range m {
		rows[i] = fmt.Sprint(row)
	}
	return "[" + strings.Join(rows, " ") + "]"
}
