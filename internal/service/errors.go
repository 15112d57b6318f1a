package service

// Kind classifies a domain failure so the HTTP layer can pick a status and a
// stable machine-readable code without parsing messages.
type Kind string

const (
	KindInvalid   Kind = "invalid"
	KindNotFound  Kind = "not_found"
	KindDuplicate Kind = "duplicate"
	KindConflict  Kind = "conflict"
)

// Error is a domain failure. MessageID is an i18n key; the transport layer
// localizes it for the caller.
type Error struct {
	Kind      Kind
	MessageID string
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.MessageID
}

func errInvalid(messageID string) *Error {
	return &Error{Kind: KindInvalid, MessageID: messageID}
}

func errNotFound(messageID string) *Error {
	return &Error{Kind: KindNotFound, MessageID: messageID}
}

func errDuplicate(messageID string) *Error {
	return &Error{Kind: KindDuplicate, MessageID: messageID}
}

func errConflict(messageID string) *Error {
	return &Error{Kind: KindConflict, MessageID: messageID}
}
