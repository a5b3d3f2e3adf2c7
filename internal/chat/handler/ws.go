package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"gomarket/internal/chat/message"
	"gomarket/internal/chat/realtime"
	"gomarket/internal/chat/service"
	"gomarket/internal/common"
)

type sessionError int

const (
	readError sessionError = iota + 1
	writeError
	pingError
	serverStop
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 3 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = 20 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 25 * time.Second

	// websocket max message size to read.
	readLimit = 4096

	sessionBuffer = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// origin checks happen at the edge proxy
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ReadMarker is satisfied by *service.ReadTracker.
type ReadMarker interface {
	MarkRead(conversationID, viewerID string) bool
}

// clientMsg is what a websocket client may send.
type clientMsg struct {
	Type string `json:"type"`
}

type serverError struct {
	Error string `json:"error"`
}

// WSHandler streams push envelopes of one conversation to a websocket.
type WSHandler struct {
	validator *common.TokenValidator
	backend   service.Backend
	listener  EventListener
	reads     ReadMarker
}

func NewWSHandler(validator *common.TokenValidator, backend service.Backend, listener EventListener, reads ReadMarker) *WSHandler {
	return &WSHandler{validator: validator, backend: backend, listener: listener, reads: reads}
}

// Register mounts GET /ws/conversations/{id}.
func (h *WSHandler) Register(r *mux.Router) {
	r.Handle("/ws/conversations/{id}", h).Methods(http.MethodGet)
}

func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conversationID := mux.Vars(r)["id"]

	token, ok := common.BearerToken(r.Header.Get("Authorization"))
	if !ok {
		token = r.URL.Query().Get("token")
	}
	claims, err := h.validator.Validate(token)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conv, err := h.backend.GetConversation(r.Context(), conversationID)
	if err != nil {
		if errors.Is(err, common.ErrConversationNotFound) {
			http.Error(w, "conversation not found", http.StatusNotFound)
			return
		}
		glog.Errorf("ws: load conversation %s: %v", conversationID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !conv.Has(claims.ViewerID) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		glog.Errorf("ws: upgrade: %v", err)
		return
	}

	s := &wsSession{
		conn:           conn,
		data:           make(chan []byte, sessionBuffer),
		closed:         make(chan struct{}),
		conversationID: conversationID,
		viewerID:       claims.ViewerID,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub, err := h.listener.Subscribe(ctx, conversationID, s.onMessage, s.onRead)
	if err != nil {
		glog.Errorf("ws: subscribe %s: %v", conversationID, err)
		s.close(serverStop)
		return
	}
	defer sub.Unsubscribe()

	glog.V(1).Infof("ws: %s connected to %s", s.viewerID, conversationID)
	go s.sendLoop(sub.Done())
	s.recvLoop(h.reads)
}

type wsSession struct {
	mu      sync.Mutex
	closing bool

	conn   *websocket.Conn
	data   chan []byte
	closed chan struct{}

	conversationID string
	viewerID       string
}

func (s *wsSession) close(cause sessionError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closing {
		return
	}
	s.closing = true

	// WriteControl may run alongside sendLoop's writes
	_ = s.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
	s.conn.Close()
	close(s.closed)
	glog.V(1).Infof("ws: session %s/%s closed, cause %d", s.conversationID, s.viewerID, cause)
}

func (s *wsSession) enqueue(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closing {
		return
	}
	select {
	case s.data <- data:
	default:
		glog.Warningf("ws: session %s/%s too slow, dropping event", s.conversationID, s.viewerID)
	}
}

func (s *wsSession) onMessage(m message.Message) {
	s.enqueueEvent(realtime.NewMessageInserted(m))
}

func (s *wsSession) onRead(readerID string, at time.Time) {
	s.enqueueEvent(realtime.NewMessagesRead(s.conversationID, readerID, at))
}

func (s *wsSession) enqueueEvent(ev realtime.Event) {
	data, err := ev.Encode()
	if err != nil {
		glog.Errorf("ws: encode %s: %v", ev.Type, err)
		return
	}
	s.enqueue(data)
}

func (s *wsSession) recvLoop(reads ReadMarker) {
	s.conn.SetReadLimit(readLimit)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		msgType, msg, err := s.conn.ReadMessage()
		if err != nil {
			glog.V(1).Infof("ws: recvLoop: %v", err)
			s.close(readError)
			return
		}
		if msgType != websocket.TextMessage {
			s.reply(serverError{Error: "websocket only supports TextMessage"})
			continue
		}

		var req clientMsg
		if err := json.Unmarshal(msg, &req); err != nil {
			s.reply(serverError{Error: "malformed request"})
			continue
		}
		switch req.Type {
		case "mark_read":
			if reads != nil {
				reads.MarkRead(s.conversationID, s.viewerID)
			}
		default:
			s.reply(serverError{Error: "unsupported request"})
		}
	}
}

func (s *wsSession) reply(v serverError) {
	data, _ := json.Marshal(v)
	s.enqueue(data)
}

func (s *wsSession) sendLoop(subDone <-chan struct{}) {
	pingTicker := time.NewTicker(pingPeriod)
	defer pingTicker.Stop()

	for {
		select {
		case <-s.closed:
			return
		case <-subDone:
			s.close(serverStop)
			return
		case data := <-s.data:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				glog.Errorf("ws: sendLoop: write: %v", err)
				s.close(writeError)
				return
			}
		case <-pingTicker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				glog.Errorf("ws: sendLoop: ping: %v", err)
				s.close(pingError)
				return
			}
		}
	}
}
