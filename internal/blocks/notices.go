package blocks

import (
	"fmt"

	"github.com/jhankim/slack-olapic/pkg/formatter"
)

// User-facing notices that are sent as plain text instead of blocks.
const (
	GenericFailure = "Oops! Something went wrong with connecting with the Olapic API :slightly_frowning_face:"
	NoMorePhotos   = "Sorry! There are no more photos."
	SlowDown       = "Whoa, slow down! You're searching too fast. Try again in a minute :hourglass_flowing_sand:"
)

func NoResults(query string) string {
	return fmt.Sprintf("Sorry! I couldn't find any photos matching *%s* :slightly_frowning_face:", formatter.EscapeMrkdwn(query))
}

func Usage(command string) string {
	return fmt.Sprintf("Tell me what to look for, e.g. `%s beach,sunset`", command)
}

// ShareConfirmation is shown to the sharer. Prior counts greater than zero
// are appended so people know the image has been around.
func ShareConfirmation(handle, source, channelID string, prior int64) string {
	msg := fmt.Sprintf("Cool! You just shared *@%s*'s %s image with <#%s> :thumbsup::hugging_face:",
		formatter.EscapeMrkdwn(handle), formatter.EscapeMrkdwn(source), channelID)
	switch {
	case prior == 1:
		msg += "\nIt has been shared once before."
	case prior > 1:
		msg += fmt.Sprintf("\nIt has been shared %d times before.", prior)
	}
	return msg
}

func ShareFailed(err error) string {
	return fmt.Sprintf("I couldn't post that image: %s", err)
}
