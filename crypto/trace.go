package crypto

import (
	"slices"
)

// Position is a cell in a key-square.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Stage is one sub-step of a block cipher step (Hill shows letters, numbers,
// the matrix product and the reduced result for every block).
type Stage struct {
	Name       string `json:"name"`
	Text       string `json:"text,omitempty"`
	Values     []int  `json:"values,omitempty"`
	Derivation string `json:"derivation"`
}

// Step records how one unit of input (a character, digraph, block or
// column) was transformed.
type Step struct {
	Index        int        `json:"index"`
	Input        string     `json:"input"`
	Key          string     `json:"key,omitempty"`
	Intermediate string     `json:"intermediate,omitempty"`
	Output       string     `json:"output"`
	Rule         string     `json:"rule,omitempty"`
	Derivation   string     `json:"derivation"`
	Passthrough  bool       `json:"passthrough,omitempty"`
	Positions    []Position `json:"positions,omitempty"`
	Stages       []Stage    `json:"stages,omitempty"`
	Grid         []string   `json:"grid,omitempty"`
}

func (s Step) clone() Step {
	s.Positions = slices.Clone(s.Positions)
	s.Grid = slices.Clone(s.Grid)
	if s.Stages != nil {
		stages := make([]Stage, len(s.Stages))
		for i, st := range s.Stages {
			st.Values = slices.Clone(st.Values)
			stages[i] = st
		}
		s.Stages = stages
	}
	return s
}

// Trace is the ordered list of steps produced by one transform, in
// left-to-right input order.
type Trace []Step

func (t Trace) Len() int {
	return len(t)
}

// At returns a copy of step i, so callers cannot alter the trace.
func (t Trace) At(i int) (Step, bool) {
	if i < 0 || i >= len(t) {
		return Step{}, false
	}
	return t[i].clone(), true
}

// Cursor walks a trace forward and backward, the way an animator does.
// The zero position is the first step.
type Cursor struct {
	trace Trace
	pos   int
}

func NewCursor(t Trace) *Cursor {
	return &Cursor{trace: t}
}

func (c *Cursor) Position() int {
	return c.pos
}

func (c *Cursor) Current() (Step, bool) {
	return c.trace.At(c.pos)
}

// Forward advances one step. It returns false, without moving, at the last
// step.
func (c *Cursor) Forward() bool {
	if c.pos >= len(c.trace)-1 {
		return false
	}
	c.pos++
	return true
}

// Backward moves back one step. It returns false, without moving, at the
// first step.
func (c *Cursor) Backward() bool {
	if c.pos == 0 {
		return false
	}
	c.pos--
	return true
}

func (c *Cursor) Reset() {
	c.pos = 0
}

func (c *Cursor) AtEnd() bool {
	return len(c.trace) == 0 || c.pos == len(c.trace)-1
}
