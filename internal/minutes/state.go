package minutes

// State is a step of one minutes generation attempt.
type State int

const (
	Idle State = iota
	Connecting
	Prompting
	Calling
	Parsing
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case Connecting:
		return "CONNECTING"
	case Prompting:
		return "PROMPTING"
	case Calling:
		return "CALLING"
	case Parsing:
		return "PARSING"
	case Done:
		return "DONE"
	case Failed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether s ends an attempt.
func (s State) Terminal() bool {
	return s == Done || s == Failed
}

// progress is the fraction reported to observers on entering s.
func (s State) progress() float64 {
	switch s {
	case Connecting:
		return 0.1
	case Prompting:
		return 0.3
	case Calling:
		return 0.5
	case Parsing:
		return 0.8
	case Done:
		return 1.0
	default:
		return 0
	}
}
