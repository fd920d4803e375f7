package services

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"ridesharing/internal/domain/entities"
	"ridesharing/pkg/utils"
)

// Notification is a published event as it was rendered to the sink.
type Notification struct {
	ID        string             `json:"id"`
	Kind      entities.EventKind `json:"kind"`
	Message   string             `json:"message"`
	CreatedAt time.Time          `json:"created_at"`
}

// NotificationService renders domain events to a text sink, one line per
// event, and keeps the published history in memory.
//
// Go Learning Note — io.Writer as a Sink:
// Accepting an io.Writer instead of printing to os.Stdout lets the caller
// decide where output goes: the terminal in main, a bytes.Buffer in tests,
// io.Discard when nobody is listening.
type NotificationService struct {
	mu      sync.Mutex
	sink    io.Writer
	log     *logrus.Logger
	history []Notification
}

// NewNotificationService creates a service writing to sink. A nil sink
// discards rendered text; history is still recorded.
func NewNotificationService(sink io.Writer, log *logrus.Logger) *NotificationService {
	if sink == nil {
		sink = io.Discard
	}
	return &NotificationService{
		sink: sink,
		log:  log,
	}
}

// Publish writes the event's message to the sink and records it.
func (s *NotificationService) Publish(event entities.Event) Notification {
	n := Notification{
		ID:        utils.GenerateID("evt"),
		Kind:      event.Kind(),
		Message:   event.Message(),
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := fmt.Fprintln(s.sink, n.Message); err != nil {
		s.log.WithError(err).WithField("notification_id", n.ID).Warn("failed to write notification")
	}
	s.history = append(s.history, n)

	s.log.WithFields(logrus.Fields{
		"notification_id": n.ID,
		"kind":            n.Kind,
	}).Debug(n.Message)

	return n
}

// History returns every published notification, oldest first.
func (s *NotificationService) History() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Notification{}, s.history...)
}
