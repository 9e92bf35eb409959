package domain

// Invocation is what a slash command or block action carries into a handler.
type Invocation struct {
	UserID    string
	ChannelID string
	// Text is the slash command text.
	Text string
	// ActionID and Value come from the activated block element.
	ActionID string
	Value    string
	// SelectedChannel is set by channels_select elements.
	SelectedChannel string
}
