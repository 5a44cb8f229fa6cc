package stream

// Role identifies which of the three checker files a stream reads.
type Role int

const (
	Input  Role = iota // test input, "inf"
	Output             // contestant output, "ouf"
	Answer             // reference answer, "ans"
)

// Name returns the short stream name used in diagnostics.
func (r Role) Name() string {
	switch r {
	case Input:
		return "inf"
	case Output:
		return "ouf"
	case Answer:
		return "ans"
	default:
		return "unknown"
	}
}

// File returns the human-readable file description used in bootstrap messages.
func (r Role) File() string {
	switch r {
	case Input:
		return "input"
	case Output:
		return "output"
	case Answer:
		return "answer"
	default:
		return "unknown"
	}
}
