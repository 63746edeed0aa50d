package logging

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/go-logfmt/logfmt"
	"github.com/leg100/tabstrip/internal/pubsub"
	"github.com/leg100/tabstrip/internal/resource"
)

// writer is a slog TextHandler writer that both keeps the log records in
// memory and emits them as events.
type writer struct {
	messages []Message
	mu       sync.Mutex

	broker *pubsub.Broker[Message]
	serial uint
}

func (w *writer) Write(p []byte) (int, error) {
	msgs := make([]Message, 0, 1)
	d := logfmt.NewDecoder(bytes.NewReader(p))
	for d.ScanRecord() {
		var msg Message
		for d.ScanKeyval() {
			switch string(d.Key()) {
			case "time":
				parsed, err := time.Parse(time.RFC3339, string(d.Value()))
				if err != nil {
					return 0, fmt.Errorf("parsing time: %w", err)
				}
				msg.Time = parsed
			case "level":
				msg.Level = string(d.Value())
			case "msg":
				msg.Message = string(d.Value())
			default:
				msg.Attributes = append(msg.Attributes, Attr{
					Key:   string(d.Key()),
					Value: string(d.Value()),
				})
			}
		}
		msgs = append(msgs, msg)
	}
	if d.Err() != nil {
		return 0, d.Err()
	}

	w.mu.Lock()
	for i := range msgs {
		msgs[i].Serial = w.serial
		w.serial++
	}
	w.messages = append(w.messages, msgs...)
	w.mu.Unlock()

	// Publish outside the lock: the broker may itself log.
	for _, msg := range msgs {
		w.broker.Publish(resource.CreatedEvent, msg)
	}
	return len(p), nil
}

func (w *writer) list() []Message {
	w.mu.Lock()
	defer w.mu.Unlock()

	return append([]Message(nil), w.messages...)
}

func (w *writer) get(serial uint) (Message, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, msg := range w.messages {
		if msg.Serial == serial {
			return msg, nil
		}
	}
	return Message{}, fmt.Errorf("log message #%d: %w", serial, resource.ErrNotFound)
}
