// Package quote picks the motivational line shown under the header.
package quote

import "time"

var quotes = []string{
	"Push yourself, because no one else is going to do it for you.",
	"Success doesn’t just find you. You have to go out and get it.",
	"Wake up with determination. Go to bed with satisfaction.",
	"Do something today that your future self will thank you for.",
	"Little things make big days.",
	"Don’t wait for opportunity. Create it.",
	"It’s going to be hard, but hard does not mean impossible.",
	"Great things never come from comfort zones.",
}

// ForDay is stable for a calendar day: day-of-month modulo the list length.
func ForDay(t time.Time) string {
	return quotes[t.Day()%len(quotes)]
}
