// Package methods builds studies from raw form input for every
// problem-solving framework except 5-Whys, whose interactive chain
// lives in the fivewhys package. Each builder filters out empty
// entries, renders the analysis text and returns a study ready for
// StudyService.Save.
package methods

import "strings"

// ValidationError marks input the user must fix, as opposed to an
// internal failure. The message is shown verbatim in the terminal.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validation(msg string) error { return &ValidationError{Msg: msg} }

// nonEmpty trims each entry and drops the blank ones.
func nonEmpty(items []string) []string {
	var out []string
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
