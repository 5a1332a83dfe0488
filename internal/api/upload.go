package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/MKhiriev/go-tieba/internal/adapter"
	"github.com/MKhiriev/go-tieba/models"
)

// UploadAPI wraps the /upload endpoints. Every file is checked against the
// current [models.UploadConfig] before anything is sent.
type UploadAPI struct {
	r Requester

	mu     sync.RWMutex
	limits models.UploadConfig
}

func NewUploadAPI(r Requester, limits models.UploadConfig) *UploadAPI {
	return &UploadAPI{r: r, limits: limits}
}

// SetLimits replaces the client-side upload limits.
func (u *UploadAPI) SetLimits(limits models.UploadConfig) {
	u.mu.Lock()
	u.limits = limits
	u.mu.Unlock()
}

// Limits returns the client-side upload limits.
func (u *UploadAPI) Limits() models.UploadConfig {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.limits
}

// Check converts f into a multipart part, rejecting it when it exceeds the
// size limit or its sniffed type is not allowed. Without an explicit Size the
// length comes from the reader (a Len method, or Stat for files); a stream
// whose length cannot be learned passes the size check.
func (u *UploadAPI) Check(f models.File) (adapter.FilePart, error) {
	part, err := filePart(f)
	if err != nil {
		return adapter.FilePart{}, err
	}

	limits := u.Limits()
	if limits.MaxSize > 0 && part.Size > limits.MaxSize {
		return adapter.FilePart{}, fmt.Errorf("%w: %q is %d bytes, limit is %d", ErrFileTooLarge, f.Name, part.Size, limits.MaxSize)
	}
	if !limits.Allows(part.ContentType) {
		return adapter.FilePart{}, fmt.Errorf("%w: %q is %s", ErrFileTypeNotAllowed, f.Name, part.ContentType)
	}

	return part, nil
}

func (u *UploadAPI) UploadImage(ctx context.Context, file models.File, progress adapter.ProgressFunc) (models.UploadResult, error) {
	return u.uploadOne(ctx, "/upload/image/", "image", file, progress)
}

// UploadImages sends every file under the images field of one request.
func (u *UploadAPI) UploadImages(ctx context.Context, files []models.File, progress adapter.ProgressFunc) (models.UploadBatchResult, error) {
	if len(files) == 0 {
		return models.UploadBatchResult{}, ErrNoFiles
	}

	form := adapter.NewForm().OnProgress(progress)
	for _, f := range files {
		part, err := u.Check(f)
		if err != nil {
			return models.UploadBatchResult{}, err
		}
		form.AddFile("images", part)
	}

	return post[models.UploadBatchResult](ctx, u.r, "/upload/images/", nil, adapter.WithMultipart(form))
}

func (u *UploadAPI) UploadAvatar(ctx context.Context, file models.File) (models.UploadResult, error) {
	return u.uploadOne(ctx, "/upload/avatar/", "avatar", file, nil)
}

func (u *UploadAPI) UploadTiebaAvatar(ctx context.Context, file models.File, tiebaID int64) (models.UploadResult, error) {
	return u.uploadOne(ctx, "/upload/tieba/avatar/", "avatar", file, nil, "tieba_id", formatID(tiebaID))
}

func (u *UploadAPI) UploadTiebaBanner(ctx context.Context, file models.File, tiebaID int64) (models.UploadResult, error) {
	return u.uploadOne(ctx, "/upload/tieba/banner/", "banner", file, nil, "tieba_id", formatID(tiebaID))
}

func (u *UploadAPI) UploadAttachment(ctx context.Context, file models.File) (models.UploadResult, error) {
	return u.uploadOne(ctx, "/upload/attachment/", "attachment", file, nil)
}

// DeleteFile removes a previously uploaded file by its URL.
func (u *UploadAPI) DeleteFile(ctx context.Context, fileURL string) (models.MessageResponse, error) {
	return call[models.MessageResponse](ctx, u.r, http.MethodDelete, "/upload/file/", map[string]string{"url": fileURL})
}

// GetUploadConfig reads the server-side upload limits.
func (u *UploadAPI) GetUploadConfig(ctx context.Context) (models.UploadConfig, error) {
	return get[models.UploadConfig](ctx, u.r, "/upload/config/")
}

// uploadOne sends file under field followed by the extra name/value pairs.
func (u *UploadAPI) uploadOne(ctx context.Context, path, field string, file models.File, progress adapter.ProgressFunc, extra ...string) (models.UploadResult, error) {
	part, err := u.Check(file)
	if err != nil {
		return models.UploadResult{}, err
	}

	form := adapter.NewForm().AddFile(field, part).OnProgress(progress)
	for i := 0; i+1 < len(extra); i += 2 {
		form.AddField(extra[i], extra[i+1])
	}

	return post[models.UploadResult](ctx, u.r, path, nil, adapter.WithMultipart(form))
}
