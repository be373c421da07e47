// Package summary renders collected answers for the console and reads and
// writes the saved summary files.
package summary

import (
	"fmt"
	"io"
	"strings"

	"github.com/spboyer/assistant/internal/responses"
)

// DefaultGreeting is used in place of the user's name when none was given.
const DefaultGreeting = "Friend"

// Presenter writes the personalized summary shown after each pass.
type Presenter struct {
	Greeting string
}

// Present writes the summary for rs using the default greeting.
func Present(w io.Writer, rs *responses.Set) error {
	return Presenter{Greeting: DefaultGreeting}.Present(w, rs)
}

// Present writes the summary for rs to w. Absent fields are skipped.
//
// Age, color and food share one sentence. When food is missing the line is
// ended after whichever of the first two was written.
func (p Presenter) Present(w io.Writer, rs *responses.Set) error {
	greeting := p.Greeting
	if greeting == "" {
		greeting = DefaultGreeting
	}

	var b strings.Builder
	b.WriteString("\n--- Personalized Summary ---\n")
	fmt.Fprintf(&b, "Hello, %s!\n", rs.GetOr(responses.KeyName, greeting))

	if age, ok := rs.Get(responses.KeyAge); ok && age != "" {
		fmt.Fprintf(&b, "You are %s years old, ", age)
	}
	if color, ok := rs.Get(responses.KeyColor); ok && color != "" {
		fmt.Fprintf(&b, "love the color %s, ", color)
	}
	if food, ok := rs.Get(responses.KeyFood); ok && food != "" {
		fmt.Fprintf(&b, "and enjoy eating %s.\n", food)
	} else {
		b.WriteString("\n")
	}

	if city, ok := rs.Get(responses.KeyCity); ok && city != "" {
		fmt.Fprintf(&b, "Life must be awesome in %s!\n", city)
	}
	if school, ok := rs.Get(responses.KeySchool); ok && school != "" {
		fmt.Fprintf(&b, "You went to %s SHS.\n", school)
	}
	if team, ok := rs.Get(responses.KeyTeam); ok && team != "" {
		fmt.Fprintf(&b, "Go %s!\n", team)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
