// internal/media/uploads.go
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/config"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/errors"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/httpclient"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/logger"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/models"
)

// Upload kinds accepted by verification and gallery screens.
const (
	KindImage      = "image"
	KindVideo      = "video"
	KindAttachment = "attachment"
)

// ==========================
// STAGING
// ==========================

// Stage holds files the user picked but has not submitted yet. Staged
// entries live only in memory; abandoning the screen discards them without
// touching the media host.
type Stage struct {
	mu      sync.Mutex
	pending []models.PendingUpload
}

func NewStage() *Stage {
	return &Stage{}
}

// Add stages a picked file and returns its entry.
func (s *Stage) Add(localPath, kind string) models.PendingUpload {
	up := models.PendingUpload{
		ID:        uuid.New().String(),
		LocalPath: localPath,
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}
	s.mu.Lock()
	s.pending = append(s.pending, up)
	s.mu.Unlock()
	return up
}

// Remove drops one staged entry by id.
func (s *Stage) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, up := range s.pending {
		if up.ID == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// Pending returns a copy of the staged entries in pick order.
func (s *Stage) Pending() []models.PendingUpload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.PendingUpload(nil), s.pending...)
}

// Discard empties the stage.
func (s *Stage) Discard() {
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()
}

// ==========================
// UPLOADER
// ==========================

// Uploader pushes staged files to the media host and returns their hosted
// URLs. The host is independent of the platform API and takes unsigned
// uploads tagged with a preset.
type Uploader struct {
	cfg  config.MediaConfig
	http *httpclient.Client
	log  logger.Logger
}

func NewUploader(cfg config.MediaConfig, log logger.Logger) *Uploader {
	timeout := time.Duration(cfg.Timeout) * time.Millisecond
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Uploader{
		cfg:  cfg,
		http: httpclient.NewClient(timeout),
		log:  log,
	}
}

type uploadResponse struct {
	URL       string `json:"url"`
	SecureURL string `json:"secure_url"`
}

// Upload sends one staged file's content to the media host and returns the
// hosted URL.
func (u *Uploader) Upload(ctx context.Context, up models.PendingUpload, content io.Reader) (string, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	if err := form.WriteField("upload_preset", u.cfg.UploadPreset); err != nil {
		return "", errors.NewUploadFailedError(up.Kind, err)
	}
	part, err := form.CreateFormFile("file", filepath.Base(up.LocalPath))
	if err != nil {
		return "", errors.NewUploadFailedError(up.Kind, err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", errors.NewUploadFailedError(up.Kind, err)
	}
	if err := form.Close(); err != nil {
		return "", errors.NewUploadFailedError(up.Kind, err)
	}

	req, err := http.NewRequest(http.MethodPost, u.cfg.UploadURL, &body)
	if err != nil {
		return "", errors.NewUploadFailedError(up.Kind, err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := u.http.DoWithContext(ctx, req)
	if err != nil {
		return "", errors.NewUploadFailedError(up.Kind, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		u.log.Warn("media host rejected upload", map[string]interface{}{
			"kind":   up.Kind,
			"status": resp.StatusCode,
		})
		return "", errors.NewUploadFailedError(up.Kind, errors.NewAPIRejectedError("upload rejected"))
	}

	var decoded uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", errors.NewUploadFailedError(up.Kind, err)
	}
	if decoded.SecureURL != "" {
		return decoded.SecureURL, nil
	}
	return decoded.URL, nil
}

// UploadAll pushes every staged entry, reading each file through open. The
// first failure aborts the batch so a submission is never half-hosted.
func (u *Uploader) UploadAll(ctx context.Context, stage *Stage, open func(localPath string) (io.ReadCloser, error)) (map[string]string, error) {
	hosted := make(map[string]string)
	for _, up := range stage.Pending() {
		content, err := open(up.LocalPath)
		if err != nil {
			return nil, errors.NewUploadFailedError(up.Kind, err)
		}
		url, err := u.Upload(ctx, up, content)
		content.Close()
		if err != nil {
			return nil, err
		}
		hosted[up.ID] = url
	}
	return hosted, nil
}
