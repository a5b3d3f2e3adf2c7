package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"upload failure", fmt.Errorf("%w: connection reset", ErrAttachmentUploadFailed), true},
		{"persist failure", fmt.Errorf("%w: deadlock", ErrMessagePersistFailed), true},
		{"too large", fmt.Errorf("%w: %w", ErrAttachmentUploadFailed, ErrAttachmentTooLarge), false},
		{"empty message", ErrEmptyMessage, false},
		{"invalid participants", ErrInvalidParticipants, false},
		{"unrelated", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestTooLargeMatchesUploadFailed(t *testing.T) {
	err := fmt.Errorf("%w: %w", ErrAttachmentUploadFailed, ErrAttachmentTooLarge)
	assert.ErrorIs(t, err, ErrAttachmentUploadFailed)
	assert.ErrorIs(t, err, ErrAttachmentTooLarge)
}

func TestErrorReasonRoundTrip(t *testing.T) {
	tests := []struct {
		err    error
		reason string
	}{
		{fmt.Errorf("%w: %w (9 > 5 bytes)", ErrAttachmentUploadFailed, ErrAttachmentTooLarge), "ATTACHMENT_TOO_LARGE"},
		{fmt.Errorf("%w: gridfs down", ErrAttachmentUploadFailed), "ATTACHMENT_UPLOAD_FAILED"},
		{fmt.Errorf("%w: deadlock", ErrMessagePersistFailed), "MESSAGE_PERSIST_FAILED"},
		{ErrEmptyMessage, "EMPTY_MESSAGE"},
		{ErrInvalidParticipants, "INVALID_PARTICIPANTS"},
		{ErrConversationNotFound, "CONVERSATION_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			assert.Equal(t, tt.reason, ErrorReason(tt.err))

			rebuilt := errors.Join(ErrorsForReason(tt.reason)...)
			assert.Equal(t, IsRetryable(tt.err), IsRetryable(rebuilt))
		})
	}

	assert.Empty(t, ErrorReason(errors.New("boom")))
	assert.Nil(t, ErrorsForReason("UNKNOWN"))
}
