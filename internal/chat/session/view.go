// Package session implements the mountable conversation view: one viewer,
// one conversation on screen at a time, fed by history, the push channel and
// the viewer's own sends.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang/glog"

	"gomarket/internal/chat/draft"
	"gomarket/internal/chat/message"
	"gomarket/internal/chat/realtime"
	"gomarket/internal/chat/render"
	"gomarket/internal/chat/service"
	"gomarket/internal/chat/store"
	"gomarket/internal/chat/upload"
	"gomarket/internal/common"
)

const (
	defaultHistoryLimit = 500
	updatesBuffer       = 64
)

var ErrClosed = errors.New("session: view is closed")

// Profile is what the view knows about a participant.
type Profile struct {
	ID          string
	DisplayName string
	AvatarURL   string
}

type HistoryLoader interface {
	History(ctx context.Context, conversationID string, offset, limit int) ([]message.Message, error)
}

type Subscriber interface {
	Subscribe(ctx context.Context, conversationID string, onMessage realtime.MessageHandler, onRead realtime.ReadHandler) (*realtime.Subscription, error)
}

type Sender interface {
	Send(ctx context.Context, req service.SendRequest) (message.Message, error)
}

type ReadMarker interface {
	MarkRead(conversationID, viewerID string) bool
}

// Deps are the collaborators of a view. Drafts is optional.
type Deps struct {
	History      HistoryLoader
	Listener     Subscriber
	Sender       Sender
	Reads        ReadMarker
	Drafts       draft.Store
	HistoryLimit int
}

type UpdateKind int

const (
	// UpdateMessages means the feed or its read state changed.
	UpdateMessages UpdateKind = iota + 1
	UpdateScrollToLatest
	// UpdateBanner carries an error for the user.
	UpdateBanner
)

func (k UpdateKind) String() string {
	switch k {
	case UpdateMessages:
		return "messages"
	case UpdateScrollToLatest:
		return "scroll_to_latest"
	case UpdateBanner:
		return "banner"
	}
	return fmt.Sprintf("UpdateKind(%d)", int(k))
}

type Update struct {
	Kind           UpdateKind
	ConversationID string
	Err            error
	Retryable      bool
}

type View struct {
	deps    Deps
	viewer  Profile
	store   *store.Store
	updates chan Update
	done    chan struct{}

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	conv   service.Conversation
	other  Profile
	sub    *realtime.Subscription
	draft  string
	closed bool
}

// Mount opens conv for viewer. History loads in the background; the view
// is usable immediately. Cancelling ctx closes the view.
func Mount(ctx context.Context, deps Deps, conv service.Conversation, viewer, other Profile) (*View, error) {
	if deps.History == nil || deps.Listener == nil || deps.Sender == nil {
		return nil, errors.New("session: history, listener and sender are required")
	}
	if viewer.ID == "" || !conv.Has(viewer.ID) {
		return nil, fmt.Errorf("%w: viewer is not part of the conversation", common.ErrInvalidParticipants)
	}
	if deps.HistoryLimit <= 0 {
		deps.HistoryLimit = defaultHistoryLimit
	}

	ctx, cancel := context.WithCancel(ctx)
	v := &View{
		deps:    deps,
		viewer:  viewer,
		store:   store.New(),
		updates: make(chan Update, updatesBuffer),
		done:    make(chan struct{}),
		ctx:     ctx,
		cancel:  cancel,
	}

	v.mu.Lock()
	err := v.open(conv, other)
	v.mu.Unlock()
	if err != nil {
		cancel()
		return nil, err
	}

	go func() {
		select {
		case <-ctx.Done():
			v.Close()
		case <-v.done:
		}
	}()
	return v, nil
}

// open binds the view to conv. Callers hold v.mu.
func (v *View) open(conv service.Conversation, other Profile) error {
	v.store.Reset(conv.ID)

	sub, err := v.deps.Listener.Subscribe(v.ctx, conv.ID, v.onMessage, v.onRead)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", conv.ID, err)
	}
	v.conv, v.other, v.sub = conv, other, sub
	v.draft = v.loadDraft(conv.ID)

	v.wg.Add(1)
	go v.loadHistory(conv.ID)

	v.markRead(conv.ID)
	glog.V(1).Infof("session: %s opened %s", v.viewer.ID, conv.ID)
	return nil
}

// Switch moves the view to another conversation. The old subscription is
// gone before the new one starts; its late history is ignored.
func (v *View) Switch(ctx context.Context, conv service.Conversation, other Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !conv.Has(v.viewer.ID) {
		return fmt.Errorf("%w: viewer is not part of the conversation", common.ErrInvalidParticipants)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return ErrClosed
	}
	if conv.ID == v.conv.ID {
		v.other = other
		return nil
	}

	prev, prevOther, prevDraft := v.conv, v.other, v.draft
	v.saveDraft(prev.ID, prevDraft)
	v.sub.Unsubscribe()
	v.sub = nil

	err := v.open(conv, other)
	if err == nil {
		return nil
	}
	glog.Warningf("session: switch %s -> %s failed: %v", prev.ID, conv.ID, err)
	if rerr := v.open(prev, prevOther); rerr != nil {
		// neither conversation is live; the view cannot continue
		glog.Errorf("session: reopen %s: %v", prev.ID, rerr)
		v.closed = true
		v.emit(Update{Kind: UpdateBanner, ConversationID: prev.ID, Err: rerr, Retryable: false})
		go v.finish(nil)
		return err
	}
	v.draft = prevDraft
	return err
}

// Reload fetches history for the current conversation again.
func (v *View) Reload() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.wg.Add(1)
	go v.loadHistory(v.conv.ID)
}

func (v *View) SetDraft(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.draft = text
	v.saveDraft(v.conv.ID, text)
}

func (v *View) Draft() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.draft
}

// Send submits the draft with an optional attachment. On success the
// message is shown right away and the draft is cleared; on failure the
// draft stays and a banner is emitted.
func (v *View) Send(ctx context.Context, attachment *upload.File) (message.Message, error) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return message.Message{}, ErrClosed
	}
	conversationID, text := v.conv.ID, v.draft
	v.mu.Unlock()

	msg, err := v.deps.Sender.Send(ctx, service.SendRequest{
		ConversationID: conversationID,
		SenderID:       v.viewer.ID,
		Text:           text,
		Attachment:     attachment,
	})
	if err != nil {
		glog.V(1).Infof("session: send in %s failed: %v", conversationID, err)
		v.emit(Update{Kind: UpdateBanner, ConversationID: conversationID, Err: err, Retryable: common.IsRetryable(err)})
		return message.Message{}, err
	}

	// the push echo of this message is dropped by the store as a duplicate
	if v.store.Ingest(msg) {
		v.emit(Update{Kind: UpdateMessages, ConversationID: conversationID})
	}

	// text typed while the send was in flight is kept, in memory and on disk
	v.mu.Lock()
	if v.conv.ID == conversationID {
		if v.draft == text {
			v.draft = ""
			v.clearDraft(conversationID)
		}
	} else if v.loadDraft(conversationID) == text {
		v.clearDraft(conversationID)
	}
	v.mu.Unlock()

	v.emit(Update{Kind: UpdateScrollToLatest, ConversationID: conversationID})
	return msg, nil
}

// Close unsubscribes, keeps the draft and signals Done. Safe to call more
// than once.
func (v *View) Close() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.closed = true
	sub := v.sub
	v.saveDraft(v.conv.ID, v.draft)
	v.mu.Unlock()

	v.finish(sub)
}

func (v *View) finish(sub *realtime.Subscription) {
	v.cancel()
	if sub != nil {
		sub.Unsubscribe()
	}
	v.wg.Wait()
	close(v.done)
	glog.V(1).Infof("session: %s closed", v.viewer.ID)
}

// Done is closed when the view has been dismissed.
func (v *View) Done() <-chan struct{} {
	return v.done
}

// Updates is never closed; select on Done as well.
func (v *View) Updates() <-chan Update {
	return v.updates
}

func (v *View) Conversation() service.Conversation {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.conv
}

func (v *View) Other() Profile {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.other
}

func (v *View) Viewer() Profile {
	return v.viewer
}

func (v *View) Messages() []message.Message {
	return v.store.Messages()
}

func (v *View) Days(loc *time.Location, now time.Time) []store.DayBucket {
	return v.store.Days(loc, now)
}

// Rendered is the feed as the viewer sees it.
func (v *View) Rendered() []render.RenderData {
	return render.All(v.store.Messages(), v.viewer.ID)
}

func (v *View) UnreadCount() int {
	return v.store.UnreadCount(v.viewer.ID)
}

func (v *View) LastSeenByOther() (message.Message, bool) {
	return v.store.LastSeenByOther(v.viewer.ID)
}

func (v *View) onMessage(m message.Message) {
	if !v.store.Ingest(m) {
		return
	}
	v.emit(Update{Kind: UpdateMessages, ConversationID: m.ConversationID})
	if m.SenderID != v.viewer.ID {
		v.markRead(m.ConversationID)
	}
}

func (v *View) onRead(readerID string, at time.Time) {
	if v.store.ApplyRead(readerID, at) > 0 {
		v.emit(Update{Kind: UpdateMessages, ConversationID: v.store.ConversationID()})
	}
}

func (v *View) loadHistory(conversationID string) {
	defer v.wg.Done()

	history, err := v.deps.History.History(v.ctx, conversationID, 0, v.deps.HistoryLimit)
	if err != nil {
		if v.ctx.Err() != nil {
			return
		}
		glog.Errorf("session: history for %s: %v", conversationID, err)
		v.emit(Update{Kind: UpdateBanner, ConversationID: conversationID, Err: err, Retryable: true})
		return
	}
	if v.store.Seed(conversationID, history) {
		v.emit(Update{Kind: UpdateMessages, ConversationID: conversationID})
		v.emit(Update{Kind: UpdateScrollToLatest, ConversationID: conversationID})
	}
}

func (v *View) markRead(conversationID string) {
	if v.deps.Reads != nil {
		v.deps.Reads.MarkRead(conversationID, v.viewer.ID)
	}
}

func (v *View) emit(u Update) {
	select {
	case v.updates <- u:
	default:
		glog.V(2).Infof("session: updates full, dropping %s", u.Kind)
	}
}

func (v *View) loadDraft(conversationID string) string {
	if v.deps.Drafts == nil {
		return ""
	}
	text, err := v.deps.Drafts.Load(v.viewer.ID, conversationID)
	if err != nil {
		glog.Warningf("session: load draft for %s: %v", conversationID, err)
	}
	return text
}

func (v *View) saveDraft(conversationID, text string) {
	if v.deps.Drafts == nil {
		return
	}
	if err := v.deps.Drafts.Save(v.viewer.ID, conversationID, text); err != nil {
		glog.Warningf("session: save draft for %s: %v", conversationID, err)
	}
}

func (v *View) clearDraft(conversationID string) {
	if v.deps.Drafts == nil {
		return
	}
	if err := v.deps.Drafts.Clear(v.viewer.ID, conversationID); err != nil {
		glog.Warningf("session: clear draft for %s: %v", conversationID, err)
	}
}
