package models

// UploadResult describes a stored file.
type UploadResult struct {
	URL      string `json:"url"`
	Name     string `json:"name,omitempty"`
	Size     int64  `json:"size,omitempty"`
	MIMEType string `json:"content_type,omitempty"`
}

// UploadBatchResult is returned by the multi-image upload endpoint.
type UploadBatchResult struct {
	Files []UploadResult `json:"files"`
}

// UploadConfig constrains client-side uploads.
type UploadConfig struct {
	MaxSize      int64    `json:"max_size"`
	AllowedTypes []string `json:"allowed_types"`
}

// Allows reports whether mimeType is in the allow list. An empty list allows
// every type.
func (c UploadConfig) Allows(mimeType string) bool {
	if len(c.AllowedTypes) == 0 {
		return true
	}
	for _, t := range c.AllowedTypes {
		if t == mimeType {
			return true
		}
	}
	return false
}

// AppConfig is the client-wide configuration exposed by the session store.
type AppConfig struct {
	SiteName     string       `json:"site_name"`
	Version      string       `json:"version"`
	APIBaseURL   string       `json:"api_base_url"`
	UploadConfig UploadConfig `json:"upload_config"`
}
