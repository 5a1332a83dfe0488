package models

import "time"

// Post is a thread inside a board.
type Post struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Author       User      `json:"author"`
	Tieba        Tieba     `json:"tieba"`
	IsAnonymous  bool      `json:"is_anonymous"`
	IsEssence    bool      `json:"is_essence"`
	IsPinned     bool      `json:"is_pinned"`
	IsLocked     bool      `json:"is_locked"`
	ViewCount    int       `json:"view_count"`
	LikeCount    int       `json:"like_count"`
	CommentCount int       `json:"comment_count"`
	CollectCount int       `json:"collect_count"`
	IsLiked      bool      `json:"is_liked"`
	IsCollected  bool      `json:"is_collected"`
	Images       []string  `json:"images,omitempty"`
	Attachments  []string  `json:"attachments,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PostSort orders post listings.
type PostSort string

const (
	PostSortLatest  PostSort = "latest"
	PostSortHot     PostSort = "hot"
	PostSortEssence PostSort = "essence"
)

// PostListParams are the query parameters of GET /posts/posts/.
type PostListParams struct {
	Tieba  int64    `url:"tieba,omitempty"`
	Author int64    `url:"author,omitempty"`
	Query  string   `url:"q,omitempty"`
	Sort   PostSort `url:"sort,omitempty"`
	PageParams
}

// PostCreate is the multipart body of POST /posts/posts/create/.
type PostCreate struct {
	Title       string
	Content     string
	Tieba       int64
	IsAnonymous *bool
	Images      []File
	Attachments []File
}

// PostUpdate is the partial JSON body of PUT /posts/posts/{id}/update/.
type PostUpdate struct {
	Title       *string `json:"title,omitempty"`
	Content     *string `json:"content,omitempty"`
	IsAnonymous *bool   `json:"is_anonymous,omitempty"`
}

// PostResponse wraps a created or updated post.
type PostResponse struct {
	Message string `json:"message,omitempty"`
	Post    Post   `json:"post"`
}

// HotPosts is the payload of GET /posts/hot/.
type HotPosts struct {
	Posts []Post `json:"hot_posts"`
}

// RecommendedPosts is the payload of GET /posts/recommended/.
type RecommendedPosts struct {
	Posts []Post `json:"recommended_posts"`
}
