package core

// MessageKind classifies a user-facing message for styling
type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageEvent
	MessageWarning
)

// Message is a user-facing line surfaced by a collaborator update and
// routed to the renderer's message log
type Message struct {
	Kind MessageKind
	Text string
}

// Info builds an informational message
func Info(text string) Message {
	return Message{Kind: MessageInfo, Text: text}
}

// Event builds an event message
func Event(text string) Message {
	return Message{Kind: MessageEvent, Text: text}
}

// Warning builds a warning message
func Warning(text string) Message {
	return Message{Kind: MessageWarning, Text: text}
}
