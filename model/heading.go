package model

import (
	"encoding/json"
	"fmt"
)

// Level represents the hierarchical level of a heading (H1-H3)
type Level int

const (
	LevelNone Level = iota
	LevelH1         // H1 - Main section
	LevelH2         // H2 - Subsection
	LevelH3         // H3 - Sub-subsection
)

// String returns a string representation of the heading level
func (l Level) String() string {
	switch l {
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	case LevelH3:
		return "H3"
	default:
		return "none"
	}
}

// MarshalJSON encodes the level as its wire form ("H1", "H2", "H3")
func (l Level) MarshalJSON() ([]byte, error) {
	if l < LevelH1 || l > LevelH3 {
		return nil, fmt.Errorf("cannot marshal heading level %d", l)
	}
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a level from its wire form
func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "H1":
		*l = LevelH1
	case "H2":
		*l = LevelH2
	case "H3":
		*l = LevelH3
	default:
		return fmt.Errorf("unknown heading level %q", s)
	}
	return nil
}

// Heading represents a single entry in a document outline
type Heading struct {
	// Level is the heading level (H1-H3)
	Level Level `json:"level"`

	// Text is the heading text content
	Text string `json:"text"`

	// Page is the 0-based page number where the heading appears
	Page int `json:"page"`
}

// Outline is the terminal artifact of the extraction pipeline: a document
// title plus an ordered, strictly nested sequence of headings.
type Outline struct {
	Title    string    `json:"title"`
	Headings []Heading `json:"outline"`
}

// NewOutline returns an empty outline. Headings is initialized to an
// empty slice so the outline serializes as [] rather than null.
func NewOutline() Outline {
	return Outline{Headings: []Heading{}}
}
