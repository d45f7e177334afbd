package crypto

import (
	"fmt"
	"strings"

	"classical-cipher-backend/alphabet"
)

const (
	squareSize = 5
	filler     = 'X'
)

// KeySquare is the 5×5 Playfair grid. I and J share a cell.
type KeySquare struct {
	cells [squareSize][squareSize]rune
	where [alphabet.Size]Position
}

// NewKeySquare writes the deduplicated keyword letters first, then the rest
// of the alphabet without J.
func NewKeySquare(keyword string) KeySquare {
	var sq KeySquare
	var seen [alphabet.Size]bool
	n := 0

	place := func(r rune) {
		offset, _, _ := alphabet.Offset(r)
		if seen[offset] {
			return
		}
		seen[offset] = true
		pos := Position{Row: n / squareSize, Col: n % squareSize}
		sq.cells[pos.Row][pos.Col] = r
		sq.where[offset] = pos
		n++
	}

	for _, r := range foldJ(alphabet.Clean(keyword)) {
		place(r)
	}
	for r := 'A'; r <= 'Z'; r++ {
		if r != 'J' {
			place(r)
		}
	}

	iOffset, _, _ := alphabet.Offset('I')
	jOffset, _, _ := alphabet.Offset('J')
	sq.where[jOffset] = sq.where[iOffset]
	return sq
}

func (s KeySquare) At(row, col int) rune {
	return s.cells[alphabet.Mod(row, squareSize)][alphabet.Mod(col, squareSize)]
}

// Position looks up an uppercase letter. J reports the cell of I.
func (s KeySquare) Position(r rune) (Position, bool) {
	offset, upper, ok := alphabet.Offset(r)
	if !ok || !upper {
		return Position{}, false
	}
	return s.where[offset], true
}

// Rows renders the square one row per string.
func (s KeySquare) Rows() []string {
	rows := make([]string, squareSize)
	for i, row := range s.cells {
		rows[i] = string(row[:])
	}
	return rows
}

// PlayfairCipher substitutes digraphs using a keyword square.
//
// Decrypt removes every X from its result, including any the plaintext
// really contained. DecryptWithFiller keeps them.
type PlayfairCipher struct {
	square KeySquare
}

func NewPlayfair(keyword string) (*PlayfairCipher, error) {
	if err := ValidateKeyword(keyword); err != nil {
		return nil, err
	}
	return &PlayfairCipher{square: NewKeySquare(keyword)}, nil
}

func (c *PlayfairCipher) Kind() Kind { return Playfair }

func (c *PlayfairCipher) Encrypt(text string) (string, error) {
	out, _ := c.apply(ModeEncrypt, text)
	return out, nil
}

func (c *PlayfairCipher) Decrypt(text string) (string, error) {
	out, _ := c.apply(ModeDecrypt, text)
	return strings.ReplaceAll(out, string(filler), ""), nil
}

// DecryptWithFiller decrypts without stripping the filler X characters.
func (c *PlayfairCipher) DecryptWithFiller(text string) (string, error) {
	out, _ := c.apply(ModeDecrypt, text)
	return out, nil
}

func (c *PlayfairCipher) Trace(mode Mode, text string) (Trace, error) {
	if err := mode.validate(); err != nil {
		return nil, err
	}
	_, trace := c.apply(mode, text)
	return trace, nil
}

func foldJ(text string) string {
	return strings.ReplaceAll(text, "J", "I")
}

// Digraphs splits plaintext into Playfair pairs. A repeated letter or a
// trailing single letter is paired with X and the scan advances by one.
// An XX pair is not special-cased.
func Digraphs(text string) [][2]rune {
	t := []rune(foldJ(alphabet.Clean(text)))
	pairs := make([][2]rune, 0, (len(t)+1)/2)
	for i := 0; i < len(t); {
		if i == len(t)-1 || t[i] == t[i+1] {
			pairs = append(pairs, [2]rune{t[i], filler})
			i++
			continue
		}
		pairs = append(pairs, [2]rune{t[i], t[i+1]})
		i += 2
	}
	return pairs
}

// cipherDigraphs splits ciphertext into consecutive pairs, completing an odd
// final pair with X.
func cipherDigraphs(text string) [][2]rune {
	t := []rune(foldJ(alphabet.Clean(text)))
	if len(t)%2 == 1 {
		t = append(t, filler)
	}
	pairs := make([][2]rune, 0, len(t)/2)
	for i := 0; i < len(t); i += 2 {
		pairs = append(pairs, [2]rune{t[i], t[i+1]})
	}
	return pairs
}

func (c *PlayfairCipher) apply(mode Mode, text string) (string, Trace) {
	pairs := Digraphs(text)
	shift := 1
	if mode == ModeDecrypt {
		pairs = cipherDigraphs(text)
		shift = -1
	}

	rows := c.square.Rows()
	var out strings.Builder
	trace := make(Trace, 0, len(pairs))
	for i, pair := range pairs {
		step := c.substitutePair(pair, shift)
		step.Index = i
		step.Grid = rows
		trace = append(trace, step)
		out.WriteString(step.Output)
	}
	return out.String(), trace
}

func (c *PlayfairCipher) substitutePair(pair [2]rune, shift int) Step {
	p1, _ := c.square.Position(pair[0])
	p2, _ := c.square.Position(pair[1])

	var a, b rune
	var rule, how string
	switch {
	case p1.Row == p2.Row:
		a = c.square.At(p1.Row, p1.Col+shift)
		b = c.square.At(p2.Row, p2.Col+shift)
		rule = "same row"
		how = "take the letter to the right of each"
		if shift < 0 {
			how = "take the letter to the left of each"
		}
	case p1.Col == p2.Col:
		a = c.square.At(p1.Row+shift, p1.Col)
		b = c.square.At(p2.Row+shift, p2.Col)
		rule = "same column"
		how = "take the letter below each"
		if shift < 0 {
			how = "take the letter above each"
		}
	default:
		a = c.square.At(p1.Row, p2.Col)
		b = c.square.At(p2.Row, p1.Col)
		rule = "rectangle"
		how = "take the letter in the same row at the other letter's column"
	}

	return Step{
		Input:     string(pair[:]),
		Output:    string([]rune{a, b}),
		Rule:      rule,
		Positions: []Position{p1, p2},
		Derivation: fmt.Sprintf("%c (%d,%d) and %c (%d,%d): %s, %s → %c%c",
			pair[0], p1.Row, p1.Col, pair[1], p2.Row, p2.Col, rule, how, a, b),
	}
}
