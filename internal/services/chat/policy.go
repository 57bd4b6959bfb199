package chat

import "math/rand"

// ResponsePolicy produces the assistant's reply to a user message. It
// exists so a real model can replace the canned picker without
// touching the chat pipeline.
type ResponsePolicy interface {
	Reply(userMessage string) string
}

var cannedResponses = []string{
	"That's a great question! Based on your spending, you have good budget control.",
	"I noticed you've been managing your expenses well this month. Keep it up!",
	"Your PayLater bill is due soon. Want me to set a reminder?",
	"You're doing great! Your credit score is looking healthy.",
	"Be mindful of your weekend spending. It tends to be higher.",
}

// RandomCannedResponse picks uniformly from a fixed reply list.
type RandomCannedResponse struct{}

func (RandomCannedResponse) Reply(string) string {
	return cannedResponses[rand.Intn(len(cannedResponses))]
}
