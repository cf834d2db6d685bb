package judge

import "fmt"

// Verdict is a UVa judge outcome code as reported by uHunt.
type Verdict int

const (
	Processing        Verdict = 0
	SubmissionError   Verdict = 10
	CantBeJudged      Verdict = 15
	InQueue           Verdict = 20
	CompileError      Verdict = 30
	RestrictedFunc    Verdict = 35
	RuntimeError      Verdict = 40
	OutputLimit       Verdict = 45
	TimeLimit         Verdict = 50
	MemoryLimit       Verdict = 60
	WrongAnswer       Verdict = 70
	PresentationError Verdict = 80
	Accepted          Verdict = 90
)

var verdictLabels = map[Verdict]string{
	Processing:        "Processing",
	SubmissionError:   "Submission error",
	CantBeJudged:      "Can't be judged",
	InQueue:           "In queue",
	CompileError:      "Compile error",
	RestrictedFunc:    "Restricted function",
	RuntimeError:      "Runtime error",
	OutputLimit:       "Output limit",
	TimeLimit:         "Time limit",
	MemoryLimit:       "Memory limit",
	WrongAnswer:       "Wrong answer",
	PresentationError: "Presentation error",
	Accepted:          "Accepted",
}

// Verdicts lists every known verdict in code order.
func Verdicts() []Verdict {
	return []Verdict{
		Processing, SubmissionError, CantBeJudged, InQueue, CompileError,
		RestrictedFunc, RuntimeError, OutputLimit, TimeLimit, MemoryLimit,
		WrongAnswer, PresentationError, Accepted,
	}
}

func (v Verdict) String() string {
	if label, ok := verdictLabels[v]; ok {
		return label
	}
	return fmt.Sprintf("Verdict(%d)", int(v))
}

// Terminal reports whether the judge is done with a submission.
// Only Processing and InQueue can still change; unknown codes count as terminal.
func (v Verdict) Terminal() bool {
	return v != Processing && v != InQueue
}
