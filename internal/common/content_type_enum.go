package common

import (
	"path/filepath"
	"strings"
)

// MediaFileType classifies a stored attachment.
type MediaFileType string

const (
	MediaFileTypeImage    MediaFileType = "image"
	MediaFileTypeVideo    MediaFileType = "video"
	MediaFileTypeDocument MediaFileType = "document"
)

// String returns the string representation
func (mft MediaFileType) String() string {
	return string(mft)
}

// IsValid checks if the media file type is valid
func (mft MediaFileType) IsValid() bool {
	switch mft {
	case MediaFileTypeImage, MediaFileTypeVideo, MediaFileTypeDocument:
		return true
	}
	return false
}

func DetectFileType(mimeType string) MediaFileType {
	lowerMimeType := strings.ToLower(mimeType)
	if strings.HasPrefix(lowerMimeType, "image/") {
		return MediaFileTypeImage
	}
	if strings.HasPrefix(lowerMimeType, "video/") {
		return MediaFileTypeVideo
	}
	return MediaFileTypeDocument
}

// ContentTypeByName guesses a MIME type from the file extension.
func ContentTypeByName(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	case ".pdf":
		return "application/pdf"
	case ".txt":
		return "text/plain; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}
