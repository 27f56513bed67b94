package problemgen

import (
	"errors"
	"testing"
)

func TestGenerateInvalidDifficulty(t *testing.T) {
	g := NewSeeded(1)
	_, err := g.Generate("expert", OpAddition)
	if !errors.Is(err, ErrInvalidDifficulty) {
		t.Fatalf("err = %v, want ErrInvalidDifficulty", err)
	}
}

func TestGenerateInvalidOperation(t *testing.T) {
	g := NewSeeded(1)
	_, err := g.Generate(Beginner, "modulo")
	if !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("err = %v, want ErrInvalidOperation", err)
	}
}

func TestGenerateInvariants(t *testing.T) {
	g := NewSeeded(42)

	for _, difficulty := range []Difficulty{Beginner, Intermediate, Advanced} {
		for _, op := range AllOperations() {
			for i := 0; i < 200; i++ {
				p, err := g.Generate(difficulty, op)
				if err != nil {
					t.Fatalf("%s/%s: %v", difficulty, op, err)
				}
				if p.Answer < 0 {
					t.Fatalf("%s/%s: negative answer %d", difficulty, op, p.Answer)
				}
				if p.Operation != op || p.Difficulty != difficulty {
					t.Fatalf("%s/%s: wrong labels %+v", difficulty, op, p)
				}

				min, max := difficulty.Range()
				switch op {
				case OpSubtraction:
					if p.Operand1 < p.Operand2 {
						t.Fatalf("subtraction operands not ordered: %+v", p)
					}
					if p.Answer != p.Operand1-p.Operand2 {
						t.Fatalf("wrong difference: %+v", p)
					}
				case OpDivision:
					if p.Operand2 < 1 || p.Operand2 > max {
						t.Fatalf("divisor out of range: %+v", p)
					}
					if p.Operand1%p.Operand2 != 0 {
						t.Fatalf("inexact quotient: %+v", p)
					}
					if p.Answer != p.Operand1/p.Operand2 {
						t.Fatalf("wrong quotient: %+v", p)
					}
				default:
					if p.Operand1 < min || p.Operand1 > max || p.Operand2 < min || p.Operand2 > max {
						t.Fatalf("%s operands out of [%d,%d]: %+v", op, min, max, p)
					}
				}
			}
		}
	}
}

func TestGenerateBeginnerDivision(t *testing.T) {
	g := NewSeeded(7)

	for i := 0; i < 1000; i++ {
		p, err := g.Generate(Beginner, OpDivision)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if p.Operand2 < 1 || p.Operand2 > 10 {
			t.Fatalf("divisor %d outside [1,10]", p.Operand2)
		}
		k := p.Operand1 / p.Operand2
		if k < 1 || p.Operand1 != p.Operand2*k {
			t.Fatalf("dividend %d is not a positive multiple of %d", p.Operand1, p.Operand2)
		}
	}
}

func TestGenerateRandomOperation(t *testing.T) {
	g := NewSeeded(99)

	seen := make(map[Operation]bool)
	for i := 0; i < 500; i++ {
		p, err := g.Generate(Beginner, "")
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if !p.Operation.Valid() {
			t.Fatalf("invalid operation %q", p.Operation)
		}
		seen[p.Operation] = true
	}
	if len(seen) != 4 {
		t.Fatalf("saw %d operations in 500 draws, want all 4", len(seen))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := NewSeeded(5)
	b := NewSeeded(5)

	for i := 0; i < 50; i++ {
		pa, err := a.Generate(Intermediate, "")
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		pb, err := b.Generate(Intermediate, "")
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if *pa != *pb {
			t.Fatalf("same seed diverged: %+v vs %+v", pa, pb)
		}
	}
}

func TestDifficultyRange(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		min, max   int
	}{
		{Beginner, 1, 10},
		{Intermediate, 10, 50},
		{Advanced, 50, 100},
	}
	for _, tt := range tests {
		min, max := tt.difficulty.Range()
		if min != tt.min || max != tt.max {
			t.Errorf("%s range = [%d,%d], want [%d,%d]", tt.difficulty, min, max, tt.min, tt.max)
		}
	}
}

func TestProblemText(t *testing.T) {
	p := &Problem{Operation: OpAddition, Operand1: 7, Operand2: 3}
	if got := p.Text(); got != "7 + 3 = ?" {
		t.Errorf("Text() = %q", got)
	}
}
