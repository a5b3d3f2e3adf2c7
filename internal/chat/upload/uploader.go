// Package upload stores chat attachments in object storage and turns them
// into immutable attachment descriptors.
package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/golang/glog"

	"gomarket/internal/chat/message"
	"gomarket/internal/common"
	"gomarket/internal/config"
	"gomarket/internal/dbmongo"
	"gomarket/internal/metrics"
)

// ObjectStorage is satisfied by *dbmongo.MediaStorage.
type ObjectStorage interface {
	UploadFile(ctx context.Context, filename, mimeType, uploaderID string, content io.Reader) (*dbmongo.MediaFile, error)
	DeleteFile(ctx context.Context, fileID string) error
}

// File is an attachment picked by the user. Size is the size the client
// claims; the content is still capped while reading.
type File struct {
	Name     string
	MimeType string
	Size     int64
	Content  io.Reader
}

// Result pairs the descriptor with the storage id needed for cleanup.
type Result struct {
	Attachment message.Attachment
	FileID     string
}

type Uploader struct {
	storage  ObjectStorage
	maxBytes int64
	baseURL  string
}

func NewUploader(storage ObjectStorage, cfg *config.Config) *Uploader {
	maxBytes := cfg.Chat.MaxAttachmentBytes
	if maxBytes <= 0 {
		maxBytes = config.DefaultMaxAttachmentBytes
	}
	return &Uploader{
		storage:  storage,
		maxBytes: maxBytes,
		baseURL:  strings.TrimRight(cfg.Server.MediaBaseURL, "/"),
	}
}

func (u *Uploader) MaxBytes() int64 {
	return u.maxBytes
}

// Upload performs exactly one storage write. Oversized files are rejected
// before storage is touched.
func (u *Uploader) Upload(ctx context.Context, uploaderID string, f File) (*Result, error) {
	if f.Content == nil {
		metrics.Uploads.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%w: no content", common.ErrAttachmentUploadFailed)
	}
	if f.Size > u.maxBytes {
		metrics.Uploads.WithLabelValues("too_large").Inc()
		return nil, u.tooLarge(f.Size)
	}

	data, err := io.ReadAll(io.LimitReader(f.Content, u.maxBytes+1))
	if err != nil {
		metrics.Uploads.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("%w: read attachment: %v", common.ErrAttachmentUploadFailed, err)
	}
	if int64(len(data)) > u.maxBytes {
		metrics.Uploads.WithLabelValues("too_large").Inc()
		return nil, u.tooLarge(int64(len(data)))
	}

	name := sanitizeName(f.Name)
	mimeType := f.MimeType
	if mimeType == "" {
		mimeType = common.ContentTypeByName(name)
	}

	file, err := u.storage.UploadFile(ctx, name, mimeType, uploaderID, bytes.NewReader(data))
	if err != nil {
		metrics.Uploads.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("%w: %v", common.ErrAttachmentUploadFailed, err)
	}

	metrics.Uploads.WithLabelValues("ok").Inc()
	metrics.UploadBytes.Observe(float64(file.Size))
	glog.V(2).Infof("upload: stored %q (%d bytes) as %s for %s", name, file.Size, file.ID, uploaderID)

	return &Result{
		Attachment: message.Attachment{
			Name:     name,
			ByteSize: file.Size,
			URL:      u.baseURL + "/" + file.ID,
		},
		FileID: file.ID,
	}, nil
}

// Discard removes an uploaded object that no message will reference.
func (u *Uploader) Discard(ctx context.Context, fileID string) error {
	if err := u.storage.DeleteFile(ctx, fileID); err != nil {
		return fmt.Errorf("discard attachment %s: %w", fileID, err)
	}
	return nil
}

func (u *Uploader) tooLarge(size int64) error {
	return fmt.Errorf("%w: %w (%d > %d bytes)", common.ErrAttachmentUploadFailed, common.ErrAttachmentTooLarge, size, u.maxBytes)
}

func sanitizeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "attachment"
	}
	return name
}
