package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-tieba/internal/adapter"
	"github.com/MKhiriev/go-tieba/models"
)

// sniffLen is the number of leading bytes http.DetectContentType considers.
const sniffLen = 512

// filePart turns f into a multipart part. The content type is sniffed from
// the first bytes of the content, which are stitched back in front of the
// remaining stream.
func filePart(f models.File) (adapter.FilePart, error) {
	if f.Content == nil {
		return adapter.FilePart{}, fmt.Errorf("%w: %q", ErrNilFileContent, f.Name)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f.Content, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return adapter.FilePart{}, fmt.Errorf("error reading %q: %w", f.Name, err)
	}
	head = head[:n]

	size := f.Size
	if size <= 0 {
		size = knownSize(f.Content, n)
	}

	return adapter.FilePart{
		Name:        f.Name,
		ContentType: mediaType(http.DetectContentType(head)),
		Size:        size,
		Reader:      io.MultiReader(bytes.NewReader(head), f.Content),
	}, nil
}

func fileParts(files []models.File) ([]adapter.FilePart, error) {
	parts := make([]adapter.FilePart, 0, len(files))
	for _, f := range files {
		p, err := filePart(f)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	return parts, nil
}

// knownSize returns the total size when the remaining content reports its
// length, and 0 when it is unknown. consumed bytes were already read. Files
// are measured with Stat, relative to the current read offset.
func knownSize(r io.Reader, consumed int) int64 {
	switch v := r.(type) {
	case interface{ Len() int }:
		return int64(consumed + v.Len())
	case interface{ Stat() (fs.FileInfo, error) }:
		info, err := v.Stat()
		if err != nil || !info.Mode().IsRegular() {
			return 0
		}
		remaining := info.Size()
		if seeker, ok := r.(io.Seeker); ok {
			if pos, err := seeker.Seek(0, io.SeekCurrent); err == nil {
				remaining -= pos
			}
		}
		if remaining < 0 {
			remaining = 0
		}
		return int64(consumed) + remaining
	}
	return 0
}

// mediaType strips parameters such as "; charset=utf-8".
func mediaType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return contentType
	}
	return mt
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func addBool(form *adapter.Form, name string, v *bool) {
	if v != nil {
		form.AddField(name, strconv.FormatBool(*v))
	}
}
