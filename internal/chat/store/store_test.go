package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomarket/internal/chat/message"
)

var base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func text(id, sender string, at time.Time) message.Message {
	m := message.NewText("conv-1", sender, "msg "+id)
	m.ID = id
	m.CreatedAt = at
	return m
}

func ids(msgs []message.Message) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.ID)
	}
	return out
}

func TestStore_IngestIsIdempotent(t *testing.T) {
	s := New()
	s.Reset("conv-1")

	m := text("m-1", "buyer", base)
	assert.True(t, s.Ingest(m))
	assert.False(t, s.Ingest(m))
	assert.False(t, s.Ingest(m))
	assert.Equal(t, 1, s.Len())
}

func TestStore_IngestRejectsForeignConversation(t *testing.T) {
	s := New()
	assert.False(t, s.Ingest(text("m-1", "buyer", base)), "unbound store")

	s.Reset("conv-2")
	assert.False(t, s.Ingest(text("m-1", "buyer", base)))
	assert.Zero(t, s.Len())
}

func TestStore_Ordering(t *testing.T) {
	s := New()
	s.Reset("conv-1")

	s.Ingest(text("c", "buyer", base.Add(2*time.Minute)))
	s.Ingest(text("b", "seller", base))
	s.Ingest(text("a", "buyer", base))
	s.Ingest(text("d", "seller", base.Add(-time.Minute)))

	assert.Equal(t, []string{"d", "a", "b", "c"}, ids(s.Messages()), "created_at ascending, ties by id")
}

func TestStore_ConcurrentProducers(t *testing.T) {
	s := New()
	s.Reset("conv-1")

	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				s.Ingest(text(fmt.Sprintf("m-%03d", i), "buyer", base.Add(time.Duration(i)*time.Second)))
			}
		}()
	}
	wg.Wait()

	msgs := s.Messages()
	require.Len(t, msgs, 50)
	for i := 1; i < len(msgs); i++ {
		assert.True(t, msgs[i-1].Before(msgs[i]))
	}
}

func TestStore_SeedReplacesButKeepsLive(t *testing.T) {
	s := New()
	s.Reset("conv-1")

	live := text("live", "seller", base.Add(time.Hour))
	s.Ingest(live)
	// duplicate of a history entry, received live before the load finished
	s.Ingest(text("h-2", "seller", base.Add(time.Minute)))

	ok := s.Seed("conv-1", []message.Message{
		text("h-1", "buyer", base),
		text("h-2", "seller", base.Add(time.Minute)),
		text("h-2", "seller", base.Add(time.Minute)),
	})
	require.True(t, ok)
	assert.Equal(t, []string{"h-1", "h-2", "live"}, ids(s.Messages()))

	// a second seed replaces the history part wholesale
	require.True(t, s.Seed("conv-1", []message.Message{text("h-3", "buyer", base)}))
	assert.Equal(t, []string{"h-3", "h-2", "live"}, ids(s.Messages()))
}

func TestStore_StaleSeedIsDiscarded(t *testing.T) {
	s := New()
	s.Reset("conv-a")
	s.Reset("conv-b")

	stale := []message.Message{text("a-1", "buyer", base)}
	stale[0].ConversationID = "conv-a"

	assert.False(t, s.Seed("conv-a", stale))
	assert.Zero(t, s.Len())
	assert.Equal(t, "conv-b", s.ConversationID())
}

func TestStore_ResetClears(t *testing.T) {
	s := New()
	s.Reset("conv-1")
	s.Ingest(text("m-1", "buyer", base))

	s.Reset("conv-1")
	assert.Zero(t, s.Len())
	assert.True(t, s.Ingest(text("m-1", "buyer", base)), "dedup state is cleared too")
}

func TestStore_DegradedMessagesAreKept(t *testing.T) {
	s := New()
	s.Reset("conv-1")

	m := message.Message{
		ID:             "offer-1",
		ConversationID: "conv-1",
		SenderID:       "seller",
		Kind:           message.KindOffer,
		Payload:        message.DecodePayload(message.KindOffer, []byte(`{"title":"Logo"}`)),
		CreatedAt:      base,
	}
	require.True(t, m.Degraded())
	assert.True(t, s.Ingest(m))
	assert.True(t, s.Messages()[0].Degraded())
}

func TestStore_Days(t *testing.T) {
	s := New()
	s.Reset("conv-1")

	late := time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC)
	early := time.Date(2024, 5, 2, 0, 1, 0, 0, time.UTC)
	s.Ingest(text("late", "buyer", late))
	s.Ingest(text("early", "seller", early))
	s.Ingest(text("old", "seller", time.Date(2024, 4, 28, 9, 0, 0, 0, time.UTC)))

	t.Run("labels relative to now", func(t *testing.T) {
		days := s.Days(time.UTC, time.Date(2024, 5, 2, 15, 0, 0, 0, time.UTC))
		require.Len(t, days, 3)
		assert.Equal(t, "Apr 28, 2024", days[0].Label)
		assert.Equal(t, "Yesterday", days[1].Label)
		assert.Equal(t, []string{"late"}, ids(days[1].Messages))
		assert.Equal(t, "Today", days[2].Label)
		assert.Equal(t, []string{"early"}, ids(days[2].Messages))
	})

	t.Run("absolute labels", func(t *testing.T) {
		days := s.Days(time.UTC, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
		require.Len(t, days, 3)
		assert.Equal(t, "May 1, 2024", days[1].Label)
		assert.Equal(t, "May 2, 2024", days[2].Label)
	})

	t.Run("viewer timezone", func(t *testing.T) {
		// UTC+2 moves 23:59 UTC onto May 2, next to 00:01 UTC
		loc := time.FixedZone("CEST", 2*60*60)
		days := s.Days(loc, time.Date(2024, 5, 2, 15, 0, 0, 0, time.UTC))
		require.Len(t, days, 2)
		assert.Equal(t, "Today", days[1].Label)
		assert.Equal(t, []string{"late", "early"}, ids(days[1].Messages))
	})
}

func TestStore_ReadReceipts(t *testing.T) {
	s := New()
	s.Reset("conv-1")

	s.Ingest(text("b-1", "buyer", base))
	s.Ingest(text("s-1", "seller", base.Add(time.Minute)))
	s.Ingest(text("s-2", "seller", base.Add(2*time.Minute)))
	notice := message.Message{
		ID:             "sys-1",
		ConversationID: "conv-1",
		SenderID:       "system",
		Kind:           message.KindSystemEvent,
		Payload:        message.SystemEventPayload{Text: "Offer accepted"},
		CreatedAt:      base.Add(3 * time.Minute),
	}
	s.Ingest(notice)

	assert.Equal(t, 2, s.UnreadCount("buyer"), "system notices are not unread messages")
	_, ok := s.LastSeenByOther("buyer")
	assert.False(t, ok)

	// the buyer reads up to s-1
	assert.Equal(t, 1, s.ApplyRead("buyer", base.Add(time.Minute)))
	assert.Equal(t, 1, s.UnreadCount("buyer"))

	// the seller reads everything: the buyer's message and the notice
	assert.Equal(t, 2, s.ApplyRead("seller", base.Add(time.Hour)))
	seen, ok := s.LastSeenByOther("buyer")
	require.True(t, ok)
	assert.Equal(t, "b-1", seen.ID)

	// applying again changes nothing
	assert.Zero(t, s.ApplyRead("seller", base.Add(time.Hour)))
}
