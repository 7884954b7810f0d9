package assessment

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AnswerPayloadVersion is the current wire version of encoded answers.
const AnswerPayloadVersion = 1

// Answer is a versioned, tagged answer payload. Text carries single-choice,
// boolean and free-text submissions; Pairs carries pair-matching ones.
type Answer struct {
	Version int               `json:"v" yaml:"v"`
	Kind    Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	Text    string            `json:"text,omitempty" yaml:"text,omitempty"`
	Pairs   map[string]string `json:"pairs,omitempty" yaml:"pairs,omitempty"`
}

func NewTextAnswer(kind Kind, text string) Answer {
	return Answer{Version: AnswerPayloadVersion, Kind: kind, Text: text}
}

func NewPairAnswer(pairs map[string]string) Answer {
	return Answer{Version: AnswerPayloadVersion, Kind: KindPairMatching, Pairs: pairs}
}

func (a Answer) IsZero() bool {
	return a.Text == "" && len(a.Pairs) == 0
}

// Encode serializes the answer as JSON for persistence.
func (a Answer) Encode() (string, error) {
	if a.Version == 0 {
		a.Version = AnswerPayloadVersion
	}
	encoded, err := json.Marshal(a)
	if err != nil {
		return "", fmt.Errorf("json.Marshal() > %w", err)
	}
	return string(encoded), nil
}

// DecodeAnswer parses a raw submission. Input that does not look like a JSON
// payload is treated as plain text so interactive typed answers round-trip
// without quoting.
func DecodeAnswer(raw string) (Answer, error) {
	if !strings.HasPrefix(strings.TrimSpace(raw), "{") {
		return Answer{Version: AnswerPayloadVersion, Text: raw}, nil
	}

	var answer Answer
	if err := json.Unmarshal([]byte(raw), &answer); err != nil {
		return Answer{}, fmt.Errorf("json.Unmarshal() > %w", err)
	}
	if answer.Version != AnswerPayloadVersion {
		return Answer{}, fmt.Errorf("unsupported answer payload version %d", answer.Version)
	}
	return answer, nil
}
