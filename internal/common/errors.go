package common

import "errors"

// Chat error taxonomy. Callers match with errors.Is; wrapped errors keep the
// underlying cause.
var (
	// ErrInvalidParticipants is returned when a party tries to open a
	// conversation with themself or an identifier is missing.
	ErrInvalidParticipants = errors.New("invalid participants")

	// ErrEmptyMessage is returned when neither text nor an attachment was given.
	ErrEmptyMessage = errors.New("empty message")

	// ErrAttachmentUploadFailed covers any failure while storing an attachment.
	ErrAttachmentUploadFailed = errors.New("attachment upload failed")

	// ErrAttachmentTooLarge is rejected before any network call. It also
	// matches ErrAttachmentUploadFailed.
	ErrAttachmentTooLarge = errors.New("attachment exceeds size limit")

	// ErrMessagePersistFailed is a backend write failure after a successful
	// (or absent) upload.
	ErrMessagePersistFailed = errors.New("message persist failed")

	// ErrMalformedEventPayload marks an inbound realtime event that failed
	// envelope validation. Such events are logged and dropped.
	ErrMalformedEventPayload = errors.New("malformed event payload")

	ErrConversationNotFound = errors.New("conversation not found")
)

// IsRetryable reports whether the user may retry the failed send as-is.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrAttachmentTooLarge) {
		return false
	}
	return errors.Is(err, ErrAttachmentUploadFailed) || errors.Is(err, ErrMessagePersistFailed)
}

// ErrorDomain tags the google.rpc.ErrorInfo details the chat service
// attaches to its status errors.
const ErrorDomain = "chat.gomarket"

// errorReasons is ordered most specific first: a too-large attachment also
// matches ErrAttachmentUploadFailed.
var errorReasons = []struct {
	reason string
	errs   []error
}{
	{"ATTACHMENT_TOO_LARGE", []error{ErrAttachmentUploadFailed, ErrAttachmentTooLarge}},
	{"ATTACHMENT_UPLOAD_FAILED", []error{ErrAttachmentUploadFailed}},
	{"MESSAGE_PERSIST_FAILED", []error{ErrMessagePersistFailed}},
	{"EMPTY_MESSAGE", []error{ErrEmptyMessage}},
	{"INVALID_PARTICIPANTS", []error{ErrInvalidParticipants}},
	{"CONVERSATION_NOT_FOUND", []error{ErrConversationNotFound}},
}

// ErrorReason names the taxonomy error err matches, or "" if none.
func ErrorReason(err error) string {
	for _, r := range errorReasons {
		if errors.Is(err, r.errs[len(r.errs)-1]) {
			return r.reason
		}
	}
	return ""
}

// ErrorsForReason returns the sentinels a reason stands for.
func ErrorsForReason(reason string) []error {
	for _, r := range errorReasons {
		if r.reason == reason {
			return append([]error(nil), r.errs...)
		}
	}
	return nil
}
