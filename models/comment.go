package models

import "time"

// Comment is a reply to a post, optionally nested under another comment.
type Comment struct {
	ID          int64     `json:"id"`
	Content     string    `json:"content"`
	Author      User      `json:"author"`
	Post        *Post     `json:"post,omitempty"`
	Parent      *Comment  `json:"parent,omitempty"`
	IsAnonymous bool      `json:"is_anonymous"`
	LikeCount   int       `json:"like_count"`
	ReplyCount  int       `json:"reply_count"`
	IsLiked     bool      `json:"is_liked"`
	Images      []string  `json:"images,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CommentCreate is the multipart body of POST /comments/comments/create/.
type CommentCreate struct {
	Content     string
	Post        int64
	ParentID    int64
	IsAnonymous *bool
	Images      []File
}

// CommentUpdate is the partial JSON body of PUT /comments/comments/{id}/update/.
type CommentUpdate struct {
	Content     *string `json:"content,omitempty"`
	IsAnonymous *bool   `json:"is_anonymous,omitempty"`
}

// CommentResponse wraps a created or updated comment.
type CommentResponse struct {
	Message string  `json:"message,omitempty"`
	Comment Comment `json:"comment"`
}
