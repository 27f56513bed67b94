package problemgen

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	// ErrInvalidDifficulty is returned for an unrecognized tier.
	ErrInvalidDifficulty = errors.New("problemgen: invalid difficulty")

	// ErrInvalidOperation is returned for an unrecognized operation.
	ErrInvalidOperation = errors.New("problemgen: invalid operation")
)

// maxDraws bounds the operand retry loop. Subtraction and division
// adjust operands structurally, so a single pass normally suffices.
const maxDraws = 32

// Generator produces random arithmetic problems for a difficulty tier.
// The zero value is not usable; construct with New or NewSeeded.
type Generator struct {
	intN func(n int) int
}

// New returns a Generator backed by the shared math/rand/v2 source,
// which is safe for concurrent use.
func New() *Generator {
	return &Generator{intN: rand.IntN}
}

// NewSeeded returns a deterministic Generator for tests.
func NewSeeded(seed uint64) *Generator {
	rng := rand.New(rand.NewPCG(seed, seed))
	return &Generator{intN: rng.IntN}
}

// Generate produces a problem at the given tier. When op is empty, an
// operation is chosen uniformly at random. The result always has a
// non-negative integer answer; for division the quotient is exact.
func (g *Generator) Generate(difficulty Difficulty, op Operation) (*Problem, error) {
	if !difficulty.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDifficulty, difficulty)
	}
	if op == "" {
		ops := AllOperations()
		op = ops[g.intN(len(ops))]
	} else if !op.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOperation, op)
	}

	min, max := difficulty.Range()

	for draw := 0; draw < maxDraws; draw++ {
		a := g.between(min, max)
		b := g.between(min, max)

		switch op {
		case OpSubtraction:
			if a < b {
				a, b = b, a
			}
		case OpDivision:
			// Redraw the divisor over [1, max] to avoid zero, then build
			// the dividend as an exact multiple within range.
			b = g.between(1, max)
			k := g.between(1, max/b)
			a = b * k
		}

		answer, ok := apply(op, a, b)
		if !ok || answer < 0 {
			continue
		}

		return &Problem{
			Operation:  op,
			Difficulty: difficulty,
			Operand1:   a,
			Operand2:   b,
			Answer:     answer,
		}, nil
	}

	return nil, fmt.Errorf("problemgen: no valid operands after %d draws", maxDraws)
}

// between returns a uniform integer in [min, max].
func (g *Generator) between(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.intN(max-min+1)
}

// apply evaluates the operation; ok is false when the result would not
// be an integer.
func apply(op Operation, a, b int) (int, bool) {
	switch op {
	case OpAddition:
		return a + b, true
	case OpSubtraction:
		return a - b, true
	case OpMultiplication:
		return a * b, true
	case OpDivision:
		if b == 0 || a%b != 0 {
			return 0, false
		}
		return a / b, true
	default:
		return 0, false
	}
}
