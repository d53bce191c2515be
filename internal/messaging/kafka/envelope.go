package kafka

import (
	"errors"

	kafkago "github.com/segmentio/kafka-go"
)

// Envelope is an event ready to be written to a topic.
type Envelope struct {
	Topic     string
	Key       string
	EventType string
	Payload   []byte
}

func ValidateEnvelope(e Envelope) error {
	if e.Topic == "" {
		return errors.New("event topic is required")
	}
	if e.Key == "" {
		return errors.New("event key is required")
	}
	if len(e.Payload) == 0 {
		return errors.New("event payload is required")
	}
	return nil
}

// Message keys by Key so one user's reminders stay on one partition.
func (e Envelope) Message() kafkago.Message {
	return kafkago.Message{
		Topic: e.Topic,
		Key:   []byte(e.Key),
		Value: e.Payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(e.EventType)},
		},
	}
}
