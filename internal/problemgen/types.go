package problemgen

import "fmt"

// Operation is one of the four arithmetic operations a problem can use.
type Operation string

const (
	OpAddition       Operation = "addition"
	OpSubtraction    Operation = "subtraction"
	OpMultiplication Operation = "multiplication"
	OpDivision       Operation = "division"
)

// AllOperations returns the supported operations in display order.
func AllOperations() []Operation {
	return []Operation{OpAddition, OpSubtraction, OpMultiplication, OpDivision}
}

// Valid reports whether o is a supported operation.
func (o Operation) Valid() bool {
	switch o {
	case OpAddition, OpSubtraction, OpMultiplication, OpDivision:
		return true
	}
	return false
}

// Symbol returns the display symbol for the operation.
func (o Operation) Symbol() string {
	switch o {
	case OpAddition:
		return "+"
	case OpSubtraction:
		return "-"
	case OpMultiplication:
		return "×"
	case OpDivision:
		return "÷"
	default:
		return "?"
	}
}

// Difficulty is a problem tier determining operand ranges.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Valid reports whether d is a defined tier.
func (d Difficulty) Valid() bool {
	switch d {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

// Range returns the inclusive operand range for the tier.
// The zero values are returned for unknown tiers.
func (d Difficulty) Range() (min, max int) {
	switch d {
	case Beginner:
		return 1, 10
	case Intermediate:
		return 10, 50
	case Advanced:
		return 50, 100
	default:
		return 0, 0
	}
}

// Problem is a generated arithmetic problem. Immutable once created.
type Problem struct {
	Operation  Operation  `json:"operation"`
	Difficulty Difficulty `json:"difficulty"`
	Operand1   int        `json:"operand1"`
	Operand2   int        `json:"operand2"`
	Answer     int        `json:"answer"`
}

// Text renders the problem as a prompt, e.g. "7 + 3 = ?".
func (p *Problem) Text() string {
	return fmt.Sprintf("%d %s %d = ?", p.Operand1, p.Operation.Symbol(), p.Operand2)
}
