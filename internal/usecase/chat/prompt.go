package chat

import (
	"fmt"
	"strings"

	"github.com/zentrail/parkchat/internal/domain"
)

const (
	// ResponseNotFound is returned when retrieval yields no parks. The
	// generator is never invoked in that case.
	ResponseNotFound = "I couldn't find information about that park. Please try another query."

	// ResponseFallback is returned when generation fails or times out.
	ResponseFallback = "I apologize, but I'm having trouble generating a response at the moment. Please try again."
)

const personaPreamble = `Keep your responses short, natural and conversational - like how a park ranger would talk to a visitor.
Break up your response into 2-3 short sentences at most.
Use casual, friendly language but be informative.`

// generalPrompt builds the ranger-persona prompt over multiple retrieved parks.
func generalPrompt(query string, parks []domain.Park) string {
	return fmt.Sprintf(`You are a friendly park ranger chatbot having a casual conversation.
%s

Here's information about some relevant parks:
%s

User's question: %s

Respond naturally focusing on answering their specific question.`,
		personaPreamble, domain.ContextBlock(parks), query)
}

// singleParkPrompt builds the focused variant used when the caller pinned a
// specific park. Lists the park's activities explicitly.
func singleParkPrompt(query string, park domain.Park) string {
	lines := make([]string, 0, len(park.Activities()))
	for _, a := range park.Activities() {
		lines = append(lines, "- "+a.Name)
	}

	return fmt.Sprintf(`You are a friendly park ranger chatbot having a conversation about %s.
%s

Here's the park information:
%s

Available activities:
%s

User's question: %s

Respond naturally focusing on answering their specific question about %s.`,
		park.Name(), personaPreamble, domain.ParkText(park),
		strings.Join(lines, "\n"), query, park.Name())
}
