package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-tieba/models"
)

func testLimits() models.UploadConfig {
	return models.UploadConfig{
		MaxSize:      1 << 10,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/gif", "application/pdf"},
	}
}

func TestUploadAPI_Check(t *testing.T) {
	tests := []struct {
		name     string
		file     models.File
		wantErr  error
		wantType string
		wantSize int64
	}{
		{
			name:     "png within limit",
			file:     models.File{Name: "a.png", Content: bytes.NewReader(pngBytes())},
			wantType: "image/png",
			wantSize: int64(len(pngBytes())),
		},
		{
			name:    "declared size over limit",
			file:    models.File{Name: "big.png", Size: 2 << 10, Content: bytes.NewReader(pngBytes())},
			wantErr: ErrFileTooLarge,
		},
		{
			name:    "measured size over limit",
			file:    models.File{Name: "big.gif", Content: bytes.NewReader(append(gifBytes(), make([]byte, 2<<10)...))},
			wantErr: ErrFileTooLarge,
		},
		{
			name:    "text is not allowed",
			file:    models.File{Name: "a.txt", Content: strings.NewReader("just text")},
			wantErr: ErrFileTypeNotAllowed,
		},
		{
			name:    "nil content",
			file:    models.File{Name: "empty"},
			wantErr: ErrNilFileContent,
		},
		{
			name:     "pdf",
			file:     models.File{Name: "doc.pdf", Size: 100, Content: strings.NewReader("%PDF-1.4\n%...")},
			wantType: "application/pdf",
			wantSize: 100,
		},
	}

	upload := NewUploadAPI(nil, testLimits())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			part, err := upload.Check(tt.file)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, part.ContentType)
			assert.Equal(t, tt.wantSize, part.Size)
		})
	}
}

func writeTempFile(t *testing.T, name string, content []byte) *os.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestUploadAPI_CheckOpenFile(t *testing.T) {
	upload := NewUploadAPI(nil, testLimits())

	t.Run("over limit without declared size", func(t *testing.T) {
		f := writeTempFile(t, "big.png", append(pngBytes(), make([]byte, 2<<10)...))
		_, err := upload.Check(models.File{Name: "big.png", Content: f})
		assert.ErrorIs(t, err, ErrFileTooLarge)
	})

	t.Run("within limit is measured", func(t *testing.T) {
		f := writeTempFile(t, "a.png", pngBytes())
		part, err := upload.Check(models.File{Name: "a.png", Content: f})
		require.NoError(t, err)
		assert.Equal(t, int64(len(pngBytes())), part.Size)
		assert.Equal(t, "image/png", part.ContentType)
	})

	t.Run("partially read file counts the rest", func(t *testing.T) {
		content := append([]byte("skip"), pngBytes()...)
		f := writeTempFile(t, "tail.png", content)
		_, err := f.Seek(4, io.SeekStart)
		require.NoError(t, err)

		part, err := upload.Check(models.File{Name: "tail.png", Content: f})
		require.NoError(t, err)
		assert.Equal(t, int64(len(pngBytes())), part.Size)
	})
}

func TestUploadAPI_RejectsBeforeNetwork(t *testing.T) {
	client, backend := newTestRequester(t)
	upload := NewUploadAPI(client, testLimits())
	ctx := context.Background()

	_, err := upload.UploadImage(ctx, models.File{Name: "a.txt", Content: strings.NewReader("text")}, nil)
	assert.ErrorIs(t, err, ErrFileTypeNotAllowed)

	_, err = upload.UploadImages(ctx, []models.File{
		{Name: "ok.png", Content: bytes.NewReader(pngBytes())},
		{Name: "big.png", Size: 1 << 20, Content: bytes.NewReader(pngBytes())},
	}, nil)
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = upload.UploadImages(ctx, nil, nil)
	assert.ErrorIs(t, err, ErrNoFiles)

	assert.Equal(t, 0, backend.count())
}

func TestUploadAPI_SetLimits(t *testing.T) {
	upload := NewUploadAPI(nil, testLimits())
	text := models.File{Name: "a.txt", Content: strings.NewReader("text")}

	_, err := upload.Check(text)
	require.ErrorIs(t, err, ErrFileTypeNotAllowed)

	upload.SetLimits(models.UploadConfig{})
	_, err = upload.Check(models.File{Name: "a.txt", Content: strings.NewReader("text")})
	assert.NoError(t, err)
}

func TestUploadAPI_UploadImage(t *testing.T) {
	client, backend := newTestRequester(t)
	backend.respond(http.StatusOK, `{"url":"/media/a.png","name":"a.png","size":32}`)

	var (
		mu    sync.Mutex
		sent  int64
		total int64
	)
	progress := func(s, tot int64) {
		mu.Lock()
		sent, total = s, tot
		mu.Unlock()
	}

	res, err := NewUploadAPI(client, testLimits()).UploadImage(context.Background(),
		models.File{Name: "a.png", Content: bytes.NewReader(pngBytes())}, progress)

	require.NoError(t, err)
	assert.Equal(t, "/media/a.png", res.URL)

	req := backend.last(t)
	assert.Equal(t, "/api/upload/image/", req.Path)
	require.Len(t, req.Files["image"], 1)
	assert.Equal(t, "image/png", req.Files["image"][0].ContentType)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, int64(len(pngBytes())), total)
	assert.Equal(t, total, sent)
}

func TestUploadAPI_UploadImages(t *testing.T) {
	client, backend := newTestRequester(t)
	backend.respond(http.StatusOK, `{"files":[{"url":"/m/1.png"},{"url":"/m/2.gif"}]}`)

	res, err := NewUploadAPI(client, testLimits()).UploadImages(context.Background(), []models.File{
		{Name: "1.png", Content: bytes.NewReader(pngBytes())},
		{Name: "2.gif", Content: bytes.NewReader(gifBytes())},
	}, nil)

	require.NoError(t, err)
	assert.Len(t, res.Files, 2)

	req := backend.last(t)
	assert.Equal(t, "/api/upload/images/", req.Path)
	require.Len(t, req.Files["images"], 2)
	assert.Equal(t, "1.png", req.Files["images"][0].Name)
	assert.Equal(t, "2.gif", req.Files["images"][1].Name)
}

func TestUploadAPI_SingleFileEndpoints(t *testing.T) {
	client, backend := newTestRequester(t)
	backend.respond(http.StatusOK, `{"url":"/m/x"}`)
	upload := NewUploadAPI(client, testLimits())
	ctx := context.Background()
	file := func() models.File { return models.File{Name: "x.png", Content: bytes.NewReader(pngBytes())} }

	tests := []struct {
		name      string
		call      func() (models.UploadResult, error)
		path      string
		field     string
		wantTieba []string
	}{
		{"avatar", func() (models.UploadResult, error) { return upload.UploadAvatar(ctx, file()) }, "/api/upload/avatar/", "avatar", nil},
		{"tieba avatar", func() (models.UploadResult, error) { return upload.UploadTiebaAvatar(ctx, file(), 12) }, "/api/upload/tieba/avatar/", "avatar", []string{"12"}},
		{"tieba banner", func() (models.UploadResult, error) { return upload.UploadTiebaBanner(ctx, file(), 13) }, "/api/upload/tieba/banner/", "banner", []string{"13"}},
		{"attachment", func() (models.UploadResult, error) { return upload.UploadAttachment(ctx, file()) }, "/api/upload/attachment/", "attachment", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.call()
			require.NoError(t, err)
			assert.Equal(t, "/m/x", res.URL)

			req := backend.last(t)
			assert.Equal(t, tt.path, req.Path)
			assert.Len(t, req.Files[tt.field], 1)
			assert.Equal(t, tt.wantTieba, req.Fields["tieba_id"])
		})
	}
}

func TestUploadAPI_DeleteFileAndConfig(t *testing.T) {
	client, backend := newTestRequester(t)
	upload := NewUploadAPI(client, testLimits())
	ctx := context.Background()

	backend.respond(http.StatusOK, `{"message":"删除成功"}`)
	_, err := upload.DeleteFile(ctx, "/media/a.png")
	require.NoError(t, err)
	req := backend.last(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/api/upload/file/", req.Path)
	assert.Equal(t, map[string]any{"url": "/media/a.png"}, req.JSON)

	backend.respond(http.StatusOK, `{"max_size":5242880,"allowed_types":["image/png"]}`)
	cfg, err := upload.GetUploadConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5242880), cfg.MaxSize)
	assert.True(t, cfg.Allows("image/png"))
	assert.False(t, cfg.Allows("image/gif"))
}
