package crypto

import (
	"fmt"
	"strings"

	"classical-cipher-backend/alphabet"
)

// RailFenceCipher is a fixed two-rail split: letters at even positions,
// then letters at odd positions. It takes no key and is not the zig-zag
// rail fence with a configurable rail count.
type RailFenceCipher struct{}

func NewRailFence() *RailFenceCipher {
	return &RailFenceCipher{}
}

func (c *RailFenceCipher) Kind() Kind { return RailFence }

func (c *RailFenceCipher) Encrypt(text string) (string, error) {
	out, _ := c.apply(ModeEncrypt, text)
	return out, nil
}

func (c *RailFenceCipher) Decrypt(text string) (string, error) {
	out, _ := c.apply(ModeDecrypt, text)
	return out, nil
}

func (c *RailFenceCipher) Trace(mode Mode, text string) (Trace, error) {
	if err := mode.validate(); err != nil {
		return nil, err
	}
	_, trace := c.apply(mode, text)
	return trace, nil
}

func (c *RailFenceCipher) apply(mode Mode, text string) (string, Trace) {
	t := alphabet.Clean(text)
	n := len(t)
	mid := (n + 1) / 2
	out := make([]byte, n)
	trace := make(Trace, 0, n)

	if mode == ModeDecrypt {
		// output position i comes from the first half when even, the second
		// half when odd
		for i := 0; i < n; i++ {
			src, half := i/2, "first"
			if i%2 == 1 {
				src, half = mid+i/2, "second"
			}
			out[i] = t[src]
			trace = append(trace, Step{
				Index:      i,
				Input:      string(t[src]),
				Output:     string(t[src]),
				Rule:       half + " half",
				Positions:  []Position{{Row: i % 2, Col: i / 2}},
				Derivation: fmt.Sprintf("%c at ciphertext position %d (%s half) → plaintext position %d", t[src], src, half, i),
			})
		}
		return string(out), trace
	}

	for i := 0; i < n; i++ {
		dst, rail := i/2, "even"
		if i%2 == 1 {
			dst, rail = mid+i/2, "odd"
		}
		out[dst] = t[i]
		trace = append(trace, Step{
			Index:      i,
			Input:      string(t[i]),
			Output:     string(t[i]),
			Rule:       rail + " rail",
			Positions:  []Position{{Row: i % 2, Col: i / 2}},
			Derivation: fmt.Sprintf("%c at position %d goes to the %s rail → ciphertext position %d", t[i], i, rail, dst),
		})
	}
	return string(out), trace
}

// KeylessTransformationCipher writes text row by row into a grid with a
// fixed number of columns and reads it column by column.
type KeylessTransformationCipher struct {
	columns int
}

func NewKeylessTransformation(columns int) (*KeylessTransformationCipher, error) {
	if columns < 2 {
		return nil, fmt.Errorf("%w: need at least 2 columns, got %d", ErrInvalidColumnCount, columns)
	}
	return &KeylessTransformationCipher{columns: columns}, nil
}

func (c *KeylessTransformationCipher) Kind() Kind { return KeylessTransformation }

func (c *KeylessTransformationCipher) Encrypt(text string) (string, error) {
	out, _ := c.apply(ModeEncrypt, text)
	return out, nil
}

func (c *KeylessTransformationCipher) Decrypt(text string) (string, error) {
	out, _ := c.apply(ModeDecrypt, text)
	return out, nil
}

// Trace has one step per non-empty column.
func (c *KeylessTransformationCipher) Trace(mode Mode, text string) (Trace, error) {
	if err := mode.validate(); err != nil {
		return nil, err
	}
	_, trace := c.apply(mode, text)
	return trace, nil
}

// columnHeights returns how many cells each column holds for n letters.
// When the last row is incomplete only its first n%columns cells exist.
func (c *KeylessTransformationCipher) columnHeights(n int) []int {
	rows := (n + c.columns - 1) / c.columns
	full := n % c.columns
	heights := make([]int, c.columns)
	for col := range heights {
		heights[col] = rows
		if full != 0 && col >= full {
			heights[col] = rows - 1
		}
	}
	return heights
}

func (c *KeylessTransformationCipher) apply(mode Mode, text string) (string, Trace) {
	t := alphabet.Clean(text)
	n := len(t)
	if n == 0 {
		return "", Trace{}
	}

	heights := c.columnHeights(n)
	rows := heights[0]
	grid := make([][]byte, rows)
	for r := range grid {
		grid[r] = make([]byte, 0, c.columns)
	}

	columns := make([]string, c.columns)
	if mode == ModeDecrypt {
		pos := 0
		for col, h := range heights {
			columns[col] = t[pos : pos+h]
			pos += h
		}
		for r := 0; r < rows; r++ {
			for col := range columns {
				if r < len(columns[col]) {
					grid[r] = append(grid[r], columns[col][r])
				}
			}
		}
	} else {
		for i := 0; i < n; i++ {
			grid[i/c.columns] = append(grid[i/c.columns], t[i])
		}
		for col := range columns {
			var b strings.Builder
			for r := 0; r < heights[col]; r++ {
				b.WriteByte(grid[r][col])
			}
			columns[col] = b.String()
		}
	}

	gridRows := make([]string, rows)
	for r, row := range grid {
		gridRows[r] = string(row)
	}

	verb := "read"
	if mode == ModeDecrypt {
		verb = "written"
	}
	trace := make(Trace, 0, c.columns)
	for col, letters := range columns {
		if letters == "" {
			continue
		}
		trace = append(trace, Step{
			Index:      len(trace),
			Input:      letters,
			Output:     letters,
			Rule:       fmt.Sprintf("column %d", col),
			Positions:  []Position{{Row: 0, Col: col}, {Row: len(letters) - 1, Col: col}},
			Grid:       gridRows,
			Derivation: fmt.Sprintf("column %d %s top to bottom: %s", col, verb, letters),
		})
	}

	if mode == ModeDecrypt {
		return strings.Join(gridRows, ""), trace
	}
	return strings.Join(columns, ""), trace
}
