package model

// Event is the constraint every kafka-published payload satisfies; the id
// becomes the message key.
type Event interface {
	GetId() string
}
