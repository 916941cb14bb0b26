package corrector

import "fmt"

// Status classifies the outcome of a correction request.
type Status int

const (
	AlreadyCorrect Status = iota
	NoSuggestion
	Suggestions
)

var statusNames = [...]string{"correct", "no_suggestion", "suggestions"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	for i, name := range statusNames {
		if name == string(b) {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", b)
}

type Candidate struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// Result is AlreadyCorrect, NoSuggestion, or Suggestions with candidates best first.
type Result struct {
	Status     Status      `json:"status"`
	Candidates []Candidate `json:"suggestions,omitempty"`
}

// TokenResult is the correction of one token of a text.
type TokenResult struct {
	Position int    `json:"position"`
	Token    string `json:"token"`
	Result
}
