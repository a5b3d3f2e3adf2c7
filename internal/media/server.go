// Package media serves stored chat attachments over HTTP. Attachment URLs
// produced by the uploader point at GET /media/{fileId}.
package media

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/golang/glog"
	"github.com/gorilla/mux"

	"gomarket/internal/common"
	"gomarket/internal/dbmongo"
)

// FileSource is satisfied by *dbmongo.MediaStorage.
type FileSource interface {
	DownloadFile(ctx context.Context, fileID string) (io.ReadCloser, *dbmongo.MediaFile, error)
}

type HTTPServer struct {
	source FileSource
	router *mux.Router
}

func NewHTTPServer(source FileSource) *HTTPServer {
	s := &HTTPServer{source: source, router: mux.NewRouter()}
	s.Register(s.router)
	s.router.HandleFunc("/health", s.health).Methods(http.MethodGet)
	return s
}

// Register mounts the media routes on r.
func (s *HTTPServer) Register(r *mux.Router) {
	r.HandleFunc("/media/{fileId}", s.serveFile).Methods(http.MethodGet, http.MethodHead)
}

func (s *HTTPServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *HTTPServer) serveFile(w http.ResponseWriter, r *http.Request) {
	fileID := mux.Vars(r)["fileId"]

	reader, file, err := s.source.DownloadFile(r.Context(), fileID)
	if err != nil {
		if errors.Is(err, dbmongo.ErrFileNotFound) {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		glog.Errorf("media: download %s: %v", fileID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	defer reader.Close()

	contentType := file.MimeType
	if contentType == "" {
		contentType = common.ContentTypeByName(file.Filename)
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.FormatInt(file.Size, 10))
	// ids are never reused
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.Header().Set("ETag", strconv.Quote(file.ID))

	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, reader); err != nil {
		glog.Warningf("media: streaming %s: %v", fileID, err)
	}
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
