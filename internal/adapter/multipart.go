package adapter

import (
	"io"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
)

const defaultFileContentType = "application/octet-stream"

// ProgressFunc reports upload progress. total is 0 when the size of some
// part is unknown.
type ProgressFunc func(sent, total int64)

// FilePart is a single file in a multipart [Form].
type FilePart struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type formPart struct {
	field string
	value string
	file  *FilePart
}

// Form is a multipart/form-data payload. Parts are sent in the order they
// were added; adding several files under one field name expands into one
// part per file.
type Form struct {
	parts    []formPart
	progress ProgressFunc
}

// NewForm returns an empty multipart form.
func NewForm() *Form {
	return &Form{}
}

// AddField appends a plain text field.
func (f *Form) AddField(name, value string) *Form {
	f.parts = append(f.parts, formPart{field: name, value: value})
	return f
}

// AddFile appends one file under field.
func (f *Form) AddFile(field string, file FilePart) *Form {
	if file.ContentType == "" {
		file.ContentType = defaultFileContentType
	}
	f.parts = append(f.parts, formPart{field: field, file: &file})
	return f
}

// AddFiles appends every file under the same field name.
func (f *Form) AddFiles(field string, files ...FilePart) *Form {
	for _, file := range files {
		f.AddFile(field, file)
	}
	return f
}

// OnProgress sets the callback invoked while file contents are sent.
func (f *Form) OnProgress(fn ProgressFunc) *Form {
	f.progress = fn
	return f
}

// Fields returns the values of every text field named name, in order.
func (f *Form) Fields(name string) []string {
	var values []string
	for _, p := range f.parts {
		if p.file == nil && p.field == name {
			values = append(values, p.value)
		}
	}
	return values
}

// Len returns the number of parts.
func (f *Form) Len() int {
	return len(f.parts)
}

func (f *Form) totalSize() int64 {
	var total int64
	for _, p := range f.parts {
		if p.file == nil {
			continue
		}
		size := p.file.Size
		if size <= 0 {
			if l, ok := p.file.Reader.(interface{ Len() int }); ok {
				size = int64(l.Len())
			}
		}
		if size <= 0 {
			return 0
		}
		total += size
	}
	return total
}

// apply attaches the form to req. Every part becomes a resty multipart field
// so the request is always sent as multipart/form-data, even without files.
func (f *Form) apply(req *resty.Request) {
	counter := &progressCounter{fn: f.progress, total: f.totalSize()}

	for _, p := range f.parts {
		if p.file == nil {
			req.SetMultipartField(p.field, "", "", strings.NewReader(p.value))
			continue
		}

		var r io.Reader = p.file.Reader
		if f.progress != nil {
			r = &progressReader{r: r, counter: counter}
		}
		req.SetMultipartField(p.field, p.file.Name, p.file.ContentType, r)
	}
}

type progressCounter struct {
	mu    sync.Mutex
	fn    ProgressFunc
	sent  int64
	total int64
}

func (c *progressCounter) add(n int) {
	c.mu.Lock()
	c.sent += int64(n)
	sent := c.sent
	c.mu.Unlock()

	c.fn(sent, c.total)
}

type progressReader struct {
	r       io.Reader
	counter *progressCounter
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.counter.add(n)
	}
	return n, err
}
