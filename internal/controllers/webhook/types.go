package webhook

const (
	// EventTypeURLVerification is the type of the one-off endpoint ownership check.
	EventTypeURLVerification = "url_verification"
	// MessageTypeText is the only message type relayed to the LLM.
	MessageTypeText = "text"
)

// InboundEvent is a Feishu event callback body. A url_verification request carries
// Type and Challenge; a message event carries Event.
type InboundEvent struct {
	// Type is "url_verification" for the endpoint ownership check, empty otherwise.
	Type string `json:"type"`
	// Challenge must be echoed back during url_verification.
	Challenge string `json:"challenge"`
	// Token is the verification token configured in the developer console.
	Token string `json:"token"`
	// Schema is "2.0" for current event callbacks.
	Schema string      `json:"schema"`
	Header EventHeader `json:"header"`
	Event  EventBody   `json:"event"`
}

// EventHeader identifies a schema 2.0 event.
type EventHeader struct {
	EventID   string `json:"event_id"`
	EventType string `json:"event_type"`
	AppID     string `json:"app_id"`
}

// EventBody is the payload of an im.message.receive_v1 event.
type EventBody struct {
	Sender  Sender  `json:"sender"`
	Message Message `json:"message"`
}

// Sender identifies who sent the message.
type Sender struct {
	SenderID SenderID `json:"sender_id"`
}

// SenderID holds the sender's platform identifiers.
type SenderID struct {
	OpenID string `json:"open_id"`
}

// Message is the received chat message.
type Message struct {
	MessageID   string `json:"message_id"`
	ChatID      string `json:"chat_id"`
	ChatType    string `json:"chat_type"`
	MessageType string `json:"message_type"`
	// Content is a JSON string; for text messages it decodes to {"text": "..."}.
	Content string `json:"content"`
}

// ChallengeResponse echoes the challenge of a url_verification request.
type ChallengeResponse struct {
	Challenge string `json:"challenge"`
}

// AckResponse acknowledges every other event.
type AckResponse struct {
	Code int `json:"code"`
}
