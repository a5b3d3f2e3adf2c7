package upload

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomarket/internal/common"
	"gomarket/internal/config"
	"gomarket/internal/dbmongo"
)

type fakeStorage struct {
	uploads   int
	deleted   []string
	lastName  string
	lastMime  string
	lastBytes []byte
	uploadErr error
	deleteErr error
}

func (f *fakeStorage) UploadFile(ctx context.Context, filename, mimeType, uploaderID string, content io.Reader) (*dbmongo.MediaFile, error) {
	f.uploads++
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return nil, err
	}
	f.lastName, f.lastMime, f.lastBytes = filename, mimeType, data
	return &dbmongo.MediaFile{
		ID:         "65f0c0ffee",
		Filename:   filename,
		Size:       int64(len(data)),
		MimeType:   mimeType,
		UploadedBy: uploaderID,
	}, nil
}

func (f *fakeStorage) DeleteFile(ctx context.Context, fileID string) error {
	f.deleted = append(f.deleted, fileID)
	return f.deleteErr
}

func testConfig(maxBytes int64) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{MediaBaseURL: "http://media.local/media/"},
		Chat:   config.ChatConfig{MaxAttachmentBytes: maxBytes},
	}
}

func TestUploader_Upload(t *testing.T) {
	storage := &fakeStorage{}
	u := NewUploader(storage, testConfig(16))

	res, err := u.Upload(context.Background(), "seller-1", File{
		Name:    "../../brief.pdf",
		Content: strings.NewReader("hello"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, storage.uploads)
	assert.Equal(t, "brief.pdf", res.Attachment.Name)
	assert.Equal(t, int64(5), res.Attachment.ByteSize)
	assert.Equal(t, "http://media.local/media/65f0c0ffee", res.Attachment.URL)
	assert.Equal(t, "65f0c0ffee", res.FileID)
	assert.Equal(t, "application/pdf", storage.lastMime)
	assert.Equal(t, []byte("hello"), storage.lastBytes)
}

func TestUploader_Upload_KeepsGivenMimeType(t *testing.T) {
	storage := &fakeStorage{}
	u := NewUploader(storage, testConfig(16))

	_, err := u.Upload(context.Background(), "seller-1", File{
		Name:     "shot",
		MimeType: "image/png",
		Content:  bytes.NewReader([]byte{0x89, 'P', 'N', 'G'}),
	})
	require.NoError(t, err)
	assert.Equal(t, "image/png", storage.lastMime)
	assert.Equal(t, "shot", storage.lastName)
}

func TestUploader_Upload_TooLarge(t *testing.T) {
	tests := []struct {
		name string
		file File
	}{
		{
			name: "declared size over limit",
			file: File{Name: "big.png", Size: 17, Content: strings.NewReader("x")},
		},
		{
			name: "content over limit",
			file: File{Name: "big.png", Content: strings.NewReader(strings.Repeat("x", 17))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := &fakeStorage{}
			u := NewUploader(storage, testConfig(16))

			res, err := u.Upload(context.Background(), "buyer-1", tt.file)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, common.ErrAttachmentTooLarge)
			assert.ErrorIs(t, err, common.ErrAttachmentUploadFailed)
			assert.False(t, common.IsRetryable(err))
			assert.Zero(t, storage.uploads, "storage must not be touched")
		})
	}
}

func TestUploader_Upload_ExactlyAtLimit(t *testing.T) {
	storage := &fakeStorage{}
	u := NewUploader(storage, testConfig(16))

	res, err := u.Upload(context.Background(), "buyer-1", File{
		Name:    "edge.txt",
		Size:    16,
		Content: strings.NewReader(strings.Repeat("x", 16)),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(16), res.Attachment.ByteSize)
}

func TestUploader_Upload_StorageFailure(t *testing.T) {
	storage := &fakeStorage{uploadErr: errors.New("gridfs unavailable")}
	u := NewUploader(storage, testConfig(16))

	res, err := u.Upload(context.Background(), "buyer-1", File{Name: "a.png", Content: strings.NewReader("x")})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, common.ErrAttachmentUploadFailed)
	assert.True(t, common.IsRetryable(err))
	assert.Equal(t, 1, storage.uploads)
}

func TestUploader_Upload_NoContent(t *testing.T) {
	storage := &fakeStorage{}
	u := NewUploader(storage, testConfig(16))

	_, err := u.Upload(context.Background(), "buyer-1", File{Name: "a.png"})
	assert.ErrorIs(t, err, common.ErrAttachmentUploadFailed)
	assert.Zero(t, storage.uploads)
}

func TestUploader_DefaultLimit(t *testing.T) {
	u := NewUploader(&fakeStorage{}, testConfig(0))
	assert.Equal(t, int64(config.DefaultMaxAttachmentBytes), u.MaxBytes())
}

func TestUploader_Discard(t *testing.T) {
	storage := &fakeStorage{}
	u := NewUploader(storage, testConfig(16))

	require.NoError(t, u.Discard(context.Background(), "abc"))
	assert.Equal(t, []string{"abc"}, storage.deleted)

	storage.deleteErr = errors.New("boom")
	assert.Error(t, u.Discard(context.Background(), "def"))
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "a.png", sanitizeName("dir/a.png"))
	assert.Equal(t, "b.png", sanitizeName(`C:\Users\me\b.png`))
	assert.Equal(t, "attachment", sanitizeName(""))
	assert.Equal(t, "attachment", sanitizeName("/"))
}
