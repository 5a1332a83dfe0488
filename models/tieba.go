package models

import (
	"io"
	"time"
)

// Category groups boards by topic.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon,omitempty"`
	TiebaCount  int       `json:"tieba_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// Tieba is a topic-scoped discussion board.
type Tieba struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Avatar         string    `json:"avatar,omitempty"`
	Banner         string    `json:"banner,omitempty"`
	Category       Category  `json:"category"`
	Creator        User      `json:"creator"`
	MemberCount    int       `json:"member_count"`
	PostCount      int       `json:"post_count"`
	TodayPostCount int       `json:"today_post_count"`
	IsOfficial     bool      `json:"is_official"`
	IsPrivate      bool      `json:"is_private"`
	IsJoined       bool      `json:"is_joined"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MemberRole is the role a user holds inside a board.
type MemberRole string

const (
	RoleMember    MemberRole = "member"
	RoleModerator MemberRole = "moderator"
	RoleAdmin     MemberRole = "admin"
)

// TiebaMember is a user's membership in a board.
type TiebaMember struct {
	ID           int64      `json:"id"`
	User         User       `json:"user"`
	Tieba        Tieba      `json:"tieba"`
	Role         MemberRole `json:"role"`
	JoinedAt     time.Time  `json:"joined_at"`
	PostCount    int        `json:"post_count"`
	CommentCount int        `json:"comment_count"`
}

// TiebaAnnouncement is a moderator notice pinned to a board.
type TiebaAnnouncement struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    User      `json:"author"`
	Tieba     Tieba     `json:"tieba"`
	IsPinned  bool      `json:"is_pinned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TiebaCreate is the multipart body of POST /tieba/tiebas/create/.
// Avatar and Banner are optional.
type TiebaCreate struct {
	Name        string
	Description string
	Category    int64
	Avatar      *File
	Banner      *File
}

// TiebaCreateResponse is returned after a board has been created.
type TiebaCreateResponse struct {
	Message string `json:"message,omitempty"`
	Tieba   Tieba  `json:"tieba"`
}

// MembershipResponse acknowledges join/leave calls. Member is only set
// after a join.
type MembershipResponse struct {
	Message string       `json:"message"`
	Member  *TiebaMember `json:"member,omitempty"`
}

// HotTiebas is the payload of GET /tieba/hot/.
type HotTiebas struct {
	Tiebas []Tieba `json:"hot_tiebas"`
}

// RecommendedTiebas is the payload of GET /tieba/recommended/.
type RecommendedTiebas struct {
	Tiebas []Tieba `json:"recommended_tiebas"`
}

// TiebaListParams are the query parameters of GET /tieba/tiebas/.
type TiebaListParams struct {
	Query    string `url:"q,omitempty"`
	Category int64  `url:"category,omitempty"`
	PageParams
}

// File is an upload attachment: a named stream with an optional declared
// size. Content is read once when the request is sent. A zero Size is
// measured from Content when it is an in-memory reader or an open file.
type File struct {
	Name    string
	Size    int64
	Content io.Reader
}
