package verdict

// Kind is the categorical outcome of a checker run.
// The numeric value of a Kind is the process exit code the judge expects.
type Kind int

const (
	OK                Kind = 0
	WrongAnswer       Kind = 1
	PresentationError Kind = 2
	Fail              Kind = 3
	Dirt              Kind = 4
	Points            Kind = 7
)

// Kinds lists every verdict kind in exit code order.
var Kinds = []Kind{OK, WrongAnswer, PresentationError, Fail, Dirt, Points}

// ExitCode returns the process exit code bound to the kind.
func (k Kind) ExitCode() int {
	return int(k)
}

// Label returns the stdout prefix for the kind, including its trailing space.
// Unknown kinds have no label.
func (k Kind) Label() string {
	switch k {
	case OK:
		return "OK "
	case WrongAnswer:
		return "Wrong Answer "
	case PresentationError:
		return "Presentation Error "
	case Fail:
		return "FAIL "
	case Dirt:
		return "DIRT "
	case Points:
		return "points "
	default:
		return ""
	}
}

func (k Kind) String() string {
	switch k {
	case OK:
		return "Accepted"
	case WrongAnswer:
		return "WrongAnswer"
	case PresentationError:
		return "PresentationError"
	case Fail:
		return "InternalFail"
	case Dirt:
		return "Dirt"
	case Points:
		return "PartialScore"
	default:
		return "Unknown"
	}
}
