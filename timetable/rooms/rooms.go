// Package rooms classifies the free-text room field of a course. The
// upstream service encodes delivery mode into the room string, so the
// three way outcome (remote / physical / malformed) is a contract other
// components rely on, not just display sugar.
package rooms

import "strings"

type Kind int

const (
	// the course is delivered online, there is no physical room
	KindRemote Kind = iota
	// a recognized physical room code
	KindPhysical
	// the room code matched no known format, likely bad upstream data
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindRemote:
		return "remote"
	case KindPhysical:
		return "physical"
	default:
		return "malformed"
	}
}

// Rules hold the school specific matching data. The codes are brittle
// and school specific so they live in configuration, not here.
type Rules struct {
	// case insensitive prefixes marking a remote course
	RemotePrefixes []string
	// case insensitive substrings marking a remote course
	RemoteSubstrings []string
	// case sensitive building code prefixes of valid physical rooms
	PhysicalPrefixes []string
	// case insensitive substrings of valid physical rooms
	PhysicalSubstrings []string
}

// DefaultRules matches the school this viewer was written for.
func DefaultRules() Rules {
	return Rules{
		RemotePrefixes:     []string{"SALLE"},
		RemoteSubstrings:   []string{"distanciel", "visio"},
		PhysicalPrefixes:   []string{"N"},
		PhysicalSubstrings: []string{"EPSI"},
	}
}

type Classifier struct {
	rules Rules
}

func NewClassifier(rules Rules) Classifier {
	return Classifier{rules: rules}
}

// Classify resolves a raw room string to its kind. Remote sentinels win
// over physical codes, anything unrecognized is malformed.
func (c Classifier) Classify(room string) Kind {
	r := strings.TrimSpace(room)
	if r == "" {
		return KindMalformed
	}

	upper := strings.ToUpper(r)
	lower := strings.ToLower(r)

	for _, prefix := range c.rules.RemotePrefixes {
		if strings.HasPrefix(upper, strings.ToUpper(prefix)) {
			return KindRemote
		}
	}
	for _, sub := range c.rules.RemoteSubstrings {
		if strings.Contains(lower, strings.ToLower(sub)) {
			return KindRemote
		}
	}

	for _, prefix := range c.rules.PhysicalPrefixes {
		if strings.HasPrefix(r, prefix) {
			return KindPhysical
		}
	}
	for _, sub := range c.rules.PhysicalSubstrings {
		if strings.Contains(upper, strings.ToUpper(sub)) {
			return KindPhysical
		}
	}

	return KindMalformed
}
