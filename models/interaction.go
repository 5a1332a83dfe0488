package models

import "time"

// ContentType names the kind of object a like or report targets.
type ContentType string

const (
	ContentPost    ContentType = "post"
	ContentComment ContentType = "comment"
)

// ReportStatus is the moderation state of a report.
type ReportStatus string

const (
	ReportPending    ReportStatus = "pending"
	ReportProcessing ReportStatus = "processing"
	ReportResolved   ReportStatus = "resolved"
	ReportRejected   ReportStatus = "rejected"
)

type Like struct {
	ID          int64       `json:"id"`
	User        User        `json:"user"`
	ContentType ContentType `json:"content_type"`
	ObjectID    int64       `json:"object_id"`
	CreatedAt   time.Time   `json:"created_at"`
}

type Collection struct {
	ID        int64     `json:"id"`
	User      User      `json:"user"`
	Post      Post      `json:"post"`
	CreatedAt time.Time `json:"created_at"`
}

type Report struct {
	ID          int64        `json:"id"`
	Reporter    User         `json:"reporter"`
	ContentType ContentType  `json:"content_type"`
	ObjectID    int64        `json:"object_id"`
	Reason      string       `json:"reason"`
	Description string       `json:"description,omitempty"`
	Status      ReportStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// ReportData is the body of the post and comment report endpoints.
type ReportData struct {
	Reason      string `json:"reason"`
	Description string `json:"description,omitempty"`
}

// LikeResponse is returned by the like toggles.
type LikeResponse struct {
	Message   string `json:"message"`
	LikeCount int    `json:"like_count"`
	IsLiked   bool   `json:"is_liked"`
}

// CollectResponse is returned by the collect toggle.
type CollectResponse struct {
	Message      string `json:"message"`
	CollectCount int    `json:"collect_count"`
	IsCollected  bool   `json:"is_collected"`
}

// ReportResponse acknowledges a filed report.
type ReportResponse struct {
	Message string  `json:"message"`
	Report  *Report `json:"report,omitempty"`
}
