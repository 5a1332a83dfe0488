// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-tieba/internal/session"
	"github.com/MKhiriev/go-tieba/models"
)

// Session is the part of the session store the screens use.
type Session interface {
	Snapshot() session.Snapshot
	Subscribe(fn func(session.Snapshot)) (unsubscribe func())
	Login(ctx context.Context, creds models.LoginCredentials) (models.User, error)
	Register(ctx context.Context, data models.RegisterData) (models.RegisterResponse, error)
	Logout(ctx context.Context)
}

// Boards lists and opens boards.
type Boards interface {
	GetTiebaList(ctx context.Context, params models.TiebaListParams) (models.Page[models.Tieba], error)
	GetTiebaDetail(ctx context.Context, tiebaID int64) (models.Tieba, error)
	JoinTieba(ctx context.Context, tiebaID int64) (models.MembershipResponse, error)
	LeaveTieba(ctx context.Context, tiebaID int64) (models.MembershipResponse, error)
}

// Posts lists and opens posts.
type Posts interface {
	GetHotPosts(ctx context.Context) ([]models.Post, error)
	GetPostList(ctx context.Context, params models.PostListParams) (models.Page[models.Post], error)
	GetPostDetail(ctx context.Context, postID int64) (models.Post, error)
	LikePost(ctx context.Context, postID int64) (models.LikeResponse, error)
}

// Comments lists the comments of a post.
type Comments interface {
	GetCommentList(ctx context.Context, postID int64, page models.PageParams) (models.Page[models.Comment], error)
}

// Searcher runs the combined keyword search.
type Searcher interface {
	SearchAll(ctx context.Context, params models.SearchParams) (models.SearchAllResult, error)
}

// Profiles loads user profiles.
type Profiles interface {
	GetUserDetail(ctx context.Context, userID int64) (models.UserProfile, error)
}

// Deps groups everything the screens talk to.
type Deps struct {
	Session  Session
	Boards   Boards
	Posts    Posts
	Comments Comments
	Search   Searcher
	Users    Profiles

	// SiteURL is the origin post links are built from.
	SiteURL string
}
