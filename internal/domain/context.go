package domain

import (
	"fmt"
	"strings"
)

// ParkText renders a park into the searchable text block used both for
// document embedding and as generation context. Deterministic and pure.
func ParkText(p Park) string {
	activities := make([]string, 0, len(p.Activities()))
	for _, a := range p.Activities() {
		activities = append(activities, a.Name)
	}
	topics := make([]string, 0, len(p.Topics()))
	for _, t := range p.Topics() {
		topics = append(topics, t.Name)
	}

	return fmt.Sprintf(
		"Park Name: %s\nDescription: %s\nLocation: %s\nActivities: %s\nTopics: %s",
		p.Name(), p.Description(), p.States(),
		strings.Join(activities, ", "), strings.Join(topics, ", "),
	)
}

// ContextBlock joins the text blocks of the given parks with a blank-line
// separator, preserving order.
func ContextBlock(parks []Park) string {
	blocks := make([]string, 0, len(parks))
	for _, p := range parks {
		blocks = append(blocks, ParkText(p))
	}
	return strings.Join(blocks, "\n\n")
}
