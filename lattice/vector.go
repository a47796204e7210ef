// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"strconv"
	"strings"
)

// Vector is an immutable dimension vector: a fixed-length tuple of integers.
//
// The zero value is the (useless) rank-0 vector; build vectors with V, Zero
// or ParseVector. All binary operations require equal ranks and panic
// otherwise, because mixing ranks is a programmer error that constructors
// one level up already rule out.
type Vector struct {
	c []int
}

// V builds a vector from its coordinates. The slice is copied.
func V(coords ...int) Vector {
	c := make([]int, len(coords))
	copy(c, coords)

	return Vector{c: c}
}

// Zero returns the zero vector of the given rank.
func Zero(rank int) Vector {
	return Vector{c: make([]int, rank)}
}

// ParseVector parses "1,2,3", "(1,2,3)" or "1 2 3".
func ParseVector(s string) (Vector, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	if len(fields) == 0 {
		return Vector{}, fmt.Errorf("parse vector %q: no coordinates: %w", s, ErrInvalidArgument)
	}
	c := make([]int, len(fields))
	for i, f := range fields {
		x, err := strconv.Atoi(f)
		if err != nil {
			return Vector{}, fmt.Errorf("parse vector %q: coordinate %q: %w", s, f, ErrInvalidArgument)
		}
		c[i] = x
	}

	return Vector{c: c}, nil
}

// Rank returns the number of coordinates.
func (d Vector) Rank() int { return len(d.c) }

// At returns the i-th coordinate.
func (d Vector) At(i int) int { return d.c[i] }

// Coords returns a copy of the coordinates.
func (d Vector) Coords() []int {
	c := make([]int, len(d.c))
	copy(c, d.c)

	return c
}

// IsZero reports whether every coordinate vanishes.
func (d Vector) IsZero() bool {
	for _, x := range d.c {
		if x != 0 {
			return false
		}
	}

	return true
}

// Add returns d + e.
func (d Vector) Add(e Vector) Vector {
	mustSameRank(d, e)
	c := make([]int, len(d.c))
	for i := range c {
		c[i] = d.c[i] + e.c[i]
	}

	return Vector{c: c}
}

// Sub returns d - e.
func (d Vector) Sub(e Vector) Vector {
	mustSameRank(d, e)
	c := make([]int, len(d.c))
	for i := range c {
		c[i] = d.c[i] - e.c[i]
	}

	return Vector{c: c}
}

// Neg returns -d.
func (d Vector) Neg() Vector { return d.Scale(-1) }

// Scale returns k·d.
func (d Vector) Scale(k int) Vector {
	c := make([]int, len(d.c))
	for i, x := range d.c {
		c[i] = k * x
	}

	return Vector{c: c}
}

// DivScalar divides every coordinate by k, rounding toward -∞.
func (d Vector) DivScalar(k int) Vector {
	if k == 0 {
		panic("lattice: division of a vector by zero")
	}
	c := make([]int, len(d.c))
	for i, x := range d.c {
		c[i] = floorDiv(x, k)
	}

	return Vector{c: c}
}

// Quo returns min over the nonzero coordinates of e of d[i] // e[i].
// It panics if e is zero.
func (d Vector) Quo(e Vector) int {
	mustSameRank(d, e)
	q, found := 0, false
	for i, y := range e.c {
		if y == 0 {
			continue
		}
		x := floorDiv(d.c[i], y)
		if !found || x < q {
			q, found = x, true
		}
	}
	if !found {
		panic("lattice: division by the zero vector")
	}

	return q
}

// DivMod returns (q, d - q·e) with q = d.Quo(e).
func (d Vector) DivMod(e Vector) (int, Vector) {
	q := d.Quo(e)

	return q, d.Sub(e.Scale(q))
}

// GCD returns the gcd of the coordinates (the single coordinate for rank 1).
// The result is non-negative; GCD of the zero vector is 0.
func (d Vector) GCD() int {
	if len(d.c) == 1 {
		return abs(d.c[0])
	}
	g := 0
	for _, x := range d.c {
		g = gcd(g, abs(x))
	}

	return g
}

// Compare orders vectors lexicographically: -1 if d < e, 0 if equal, +1 otherwise.
func (d Vector) Compare(e Vector) int {
	mustSameRank(d, e)
	for i := range d.c {
		switch {
		case d.c[i] < e.c[i]:
			return -1
		case d.c[i] > e.c[i]:
			return 1
		}
	}

	return 0
}

// Less reports d < e in the lexicographic order.
func (d Vector) Less(e Vector) bool { return d.Compare(e) < 0 }

// Equal reports coordinatewise equality. Vectors of different rank are unequal.
func (d Vector) Equal(e Vector) bool {
	if len(d.c) != len(e.c) {
		return false
	}
	for i := range d.c {
		if d.c[i] != e.c[i] {
			return false
		}
	}

	return true
}

// DominatedBy reports d << e: every coordinate of d is ≤ the one of e and d ≠ e.
func (d Vector) DominatedBy(e Vector) bool {
	mustSameRank(d, e)
	for i := range d.c {
		if d.c[i] > e.c[i] {
			return false
		}
	}

	return !d.Equal(e)
}

// Dominates reports d >> e.
func (d Vector) Dominates(e Vector) bool { return e.DominatedBy(d) }

// Key returns a canonical string usable as a map key.
func (d Vector) Key() string { return d.String() }

// String renders the vector as "(1,2,3)".
func (d Vector) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, x := range d.c {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(x))
	}
	b.WriteByte(')')

	return b.String()
}

func mustSameRank(d, e Vector) {
	if len(d.c) != len(e.c) {
		panic(fmt.Sprintf("%v: %v vs %v", ErrRankMismatch, d, e))
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
