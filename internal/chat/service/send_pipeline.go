package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang/glog"

	"gomarket/internal/chat/message"
	"gomarket/internal/chat/upload"
	"gomarket/internal/common"
	"gomarket/internal/metrics"
)

const discardTimeout = 5 * time.Second

// Uploader is satisfied by *upload.Uploader.
type Uploader interface {
	Upload(ctx context.Context, uploaderID string, f upload.File) (*upload.Result, error)
	Discard(ctx context.Context, fileID string) error
}

type SendRequest struct {
	ConversationID string
	SenderID       string
	Text           string
	Attachment     *upload.File
}

// SendPipeline turns composer input into exactly one persisted message.
type SendPipeline struct {
	backend  Backend
	uploader Uploader
}

func NewSendPipeline(backend Backend, uploader Uploader) *SendPipeline {
	return &SendPipeline{backend: backend, uploader: uploader}
}

// Send uploads first, then inserts once. Nothing is retried. If the insert
// fails after an upload, the object is deleted best-effort.
func (p *SendPipeline) Send(ctx context.Context, req SendRequest) (message.Message, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" && req.Attachment == nil {
		metrics.Sends.WithLabelValues("empty").Inc()
		return message.Message{}, common.ErrEmptyMessage
	}
	if req.ConversationID == "" || req.SenderID == "" {
		return message.Message{}, fmt.Errorf("%w: conversation and sender are required", common.ErrInvalidParticipants)
	}

	var (
		outgoing message.Message
		uploaded *upload.Result
	)
	if req.Attachment != nil {
		res, err := p.uploader.Upload(ctx, req.SenderID, *req.Attachment)
		if err != nil {
			metrics.Sends.WithLabelValues("upload_failed").Inc()
			if !errors.Is(err, common.ErrAttachmentUploadFailed) {
				err = fmt.Errorf("%w: %v", common.ErrAttachmentUploadFailed, err)
			}
			return message.Message{}, err
		}
		uploaded = res
		outgoing = message.NewImage(req.ConversationID, req.SenderID, text, res.Attachment)
	} else {
		outgoing = message.NewText(req.ConversationID, req.SenderID, text)
	}

	saved, err := p.backend.InsertMessage(ctx, outgoing)
	if err != nil {
		metrics.Sends.WithLabelValues("persist_failed").Inc()
		if uploaded != nil {
			p.discard(ctx, uploaded.FileID)
		}
		if !errors.Is(err, common.ErrMessagePersistFailed) {
			err = fmt.Errorf("%w: %v", common.ErrMessagePersistFailed, err)
		}
		return message.Message{}, err
	}

	metrics.Sends.WithLabelValues("ok").Inc()
	return saved, nil
}

func (p *SendPipeline) discard(ctx context.Context, fileID string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), discardTimeout)
	defer cancel()
	if err := p.uploader.Discard(ctx, fileID); err != nil {
		glog.Warningf("send: orphaned attachment %s: %v", fileID, err)
	}
}
