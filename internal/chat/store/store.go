// Package store keeps the message feed of the conversation on screen. It is
// the single serialization point for history loads, live events and the
// viewer's own sends.
package store

import (
	"sort"
	"sync"
	"time"

	"github.com/golang/glog"

	"gomarket/internal/chat/message"
	"gomarket/internal/metrics"
)

const dayLabelLayout = "Jan 2, 2006"

// DayBucket groups the messages of one viewer-local calendar day.
type DayBucket struct {
	Date     time.Time
	Label    string
	Messages []message.Message
}

type Store struct {
	mu             sync.Mutex
	conversationID string
	messages       []message.Message
	index          map[string]int
	// ids ingested live since the last Reset; they survive a Seed
	live map[string]struct{}
}

func New() *Store {
	return &Store{
		index: make(map[string]int),
		live:  make(map[string]struct{}),
	}
}

// Reset binds the store to conversationID and empties it.
func (s *Store) Reset(conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.conversationID = conversationID
	s.messages = nil
	s.index = make(map[string]int)
	s.live = make(map[string]struct{})
}

func (s *Store) ConversationID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conversationID
}

// Seed replaces the content with history. Live messages received since
// Reset and missing from history are kept. A seed for a conversation other
// than the bound one is stale and ignored.
func (s *Store) Seed(conversationID string, history []message.Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conversationID == "" || conversationID != s.conversationID {
		metrics.StoreIngest.WithLabelValues("stale_seed").Inc()
		glog.V(1).Infof("store: discarding stale history for %s (bound to %s)", conversationID, s.conversationID)
		return false
	}

	merged := make([]message.Message, 0, len(history)+len(s.live))
	seen := make(map[string]int, len(history))
	for _, m := range history {
		if m.ConversationID != conversationID {
			continue
		}
		if _, dup := seen[m.ID]; dup {
			continue
		}
		seen[m.ID] = len(merged)
		merged = append(merged, m)
	}
	for id := range s.live {
		current := s.messages[s.index[id]]
		if i, ok := seen[id]; ok {
			// the live copy may carry a read marker the history predates
			if merged[i].ReadAt == nil && current.ReadAt != nil {
				merged[i].ReadAt = current.ReadAt
			}
			continue
		}
		merged = append(merged, current)
	}

	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Before(merged[j]) })
	s.messages = merged
	s.reindex()
	return true
}

// Ingest appends m in order. It is idempotent on id.
func (s *Store) Ingest(m message.Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conversationID == "" || m.ConversationID != s.conversationID {
		metrics.StoreIngest.WithLabelValues("foreign").Inc()
		return false
	}
	if _, ok := s.index[m.ID]; ok {
		metrics.StoreIngest.WithLabelValues("duplicate").Inc()
		return false
	}

	pos := sort.Search(len(s.messages), func(i int) bool { return m.Before(s.messages[i]) })
	s.messages = append(s.messages, message.Message{})
	copy(s.messages[pos+1:], s.messages[pos:])
	s.messages[pos] = m
	s.live[m.ID] = struct{}{}
	s.reindex()

	metrics.StoreIngest.WithLabelValues("applied").Inc()
	return true
}

// Messages returns a copy in display order.
func (s *Store) Messages() []message.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]message.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// Days groups the feed by calendar date in loc. now decides which buckets
// are labelled Today and Yesterday.
func (s *Store) Days(loc *time.Location, now time.Time) []DayBucket {
	if loc == nil {
		loc = time.Local
	}
	msgs := s.Messages()

	ny, nm, nd := now.In(loc).Date()
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, loc)
	yesterday := time.Date(ny, nm, nd-1, 0, 0, 0, 0, loc)

	var buckets []DayBucket
	for _, m := range msgs {
		y, mo, d := m.CreatedAt.In(loc).Date()
		day := time.Date(y, mo, d, 0, 0, 0, 0, loc)

		if n := len(buckets); n > 0 && buckets[n-1].Date.Equal(day) {
			buckets[n-1].Messages = append(buckets[n-1].Messages, m)
			continue
		}
		buckets = append(buckets, DayBucket{
			Date:     day,
			Label:    dayLabel(day, today, yesterday),
			Messages: []message.Message{m},
		})
	}
	return buckets
}

func dayLabel(day, today, yesterday time.Time) string {
	switch {
	case day.Equal(today):
		return "Today"
	case day.Equal(yesterday):
		return "Yesterday"
	default:
		return day.Format(dayLabelLayout)
	}
}

// ApplyRead marks as read every unread message not written by readerID and
// created at or before at. It returns how many changed.
func (s *Store) ApplyRead(readerID string, at time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for i := range s.messages {
		m := &s.messages[i]
		if m.SenderID == readerID || m.ReadAt != nil || m.CreatedAt.After(at) {
			continue
		}
		readAt := at
		m.ReadAt = &readAt
		n++
	}
	return n
}

// UnreadCount counts messages from the other party the viewer has not read.
// System notices never count.
func (s *Store) UnreadCount(viewerID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, m := range s.messages {
		if m.SenderID != viewerID && m.Kind != message.KindSystemEvent && m.ReadAt == nil {
			n++
		}
	}
	return n
}

// LastSeenByOther returns the newest message of the viewer that the other
// party has read.
func (s *Store) LastSeenByOther(viewerID string) (message.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.messages) - 1; i >= 0; i-- {
		m := s.messages[i]
		if m.SenderID == viewerID && m.Kind != message.KindSystemEvent && m.ReadAt != nil {
			return m, true
		}
	}
	return message.Message{}, false
}

func (s *Store) reindex() {
	s.index = make(map[string]int, len(s.messages))
	for i, m := range s.messages {
		s.index[m.ID] = i
	}
}
