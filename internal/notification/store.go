// Package notification holds the queue of ephemeral user-facing messages.
// Every cart mutation reports its outcome here; the presentation layer
// renders the queue as toasts.
package notification

import (
	"sync"
	"time"

	"github.com/AnujGadekar1/verto-eshop/internal/domain"
	"go.uber.org/zap"
)

// DefaultTTL is how long a notification stays visible unless dismissed.
const DefaultTTL = 3 * time.Second

type Store struct {
	mu     sync.Mutex
	queue  []domain.Notification
	lastID int64
	ttl    time.Duration
	logger *zap.Logger
}

func NewStore(ttl time.Duration, logger *zap.Logger) *Store {
	if logger == nil {
		panic("notification: store constructed without logger")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:    ttl,
		logger: logger,
	}
}

// Show appends a notification and schedules its automatic removal after the
// store's TTL. The returned id is strictly greater than any id issued
// before, even for calls within the same millisecond.
func (s *Store) Show(severity domain.Severity, message string) int64 {
	s.mu.Lock()
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	s.queue = append(s.queue, domain.Notification{
		ID:       id,
		Severity: severity,
		Message:  message,
	})
	s.mu.Unlock()

	s.logger.Debug("notification shown",
		zap.Int64("id", id),
		zap.Stringer("severity", severity),
		zap.String("message", message),
	)

	time.AfterFunc(s.ttl, func() {
		s.Dismiss(id)
	})

	return id
}

// Dismiss removes the notification with the given id. Idempotent: dismissing
// twice, or after the expiry timer already fired, is a no-op.
func (s *Store) Dismiss(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.queue {
		if n.ID == id {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return
		}
	}
}

// Notifications returns a snapshot of the active queue in display order.
func (s *Store) Notifications() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Notification, len(s.queue))
	copy(out, s.queue)
	return out
}

func (s *Store) Success(message string) { s.Show(domain.SeveritySuccess, message) }
func (s *Store) Error(message string)   { s.Show(domain.SeverityError, message) }
func (s *Store) Warning(message string) { s.Show(domain.SeverityWarning, message) }
func (s *Store) Info(message string)    { s.Show(domain.SeverityInfo, message) }
