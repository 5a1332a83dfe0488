package models

import "time"

// User is the public account record returned by the backend for the current
// user, profile pages, follower lists and search results.
type User struct {
	ID             int64      `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	Nickname       string     `json:"nickname"`
	Avatar         string     `json:"avatar,omitempty"`
	Bio            string     `json:"bio,omitempty"`
	Level          int        `json:"level"`
	Experience     int        `json:"experience"`
	IsActive       bool       `json:"is_active"`
	DateJoined     time.Time  `json:"date_joined"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
	FollowersCount int        `json:"followers_count"`
	FollowingCount int        `json:"following_count"`
	PostsCount     int        `json:"posts_count"`
	CommentsCount  int        `json:"comments_count"`
}

// DisplayName returns the nickname when set and the username otherwise.
func (u User) DisplayName() string {
	if u.Nickname != "" {
		return u.Nickname
	}
	return u.Username
}

// Gender values accepted by the profile endpoint.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// SocialLinks holds optional third-party account handles.
type SocialLinks struct {
	WeChat string `json:"wechat,omitempty"`
	QQ     string `json:"qq,omitempty"`
	Weibo  string `json:"weibo,omitempty"`
	GitHub string `json:"github,omitempty"`
}

// UserProfile extends [User] with the fields visible only on the owner's
// profile page.
type UserProfile struct {
	User
	Phone       string       `json:"phone,omitempty"`
	Gender      Gender       `json:"gender,omitempty"`
	Birthday    string       `json:"birthday,omitempty"`
	Location    string       `json:"location,omitempty"`
	Website     string       `json:"website,omitempty"`
	SocialLinks *SocialLinks `json:"social_links,omitempty"`
}

// UserStats aggregates activity counters of a user.
type UserStats struct {
	TotalPosts       int `json:"total_posts"`
	TotalComments    int `json:"total_comments"`
	TotalLikes       int `json:"total_likes"`
	TotalCollections int `json:"total_collections"`
	TotalFollowers   int `json:"total_followers"`
	TotalFollowing   int `json:"total_following"`
}

// FollowRelationship links a follower to the user being followed.
type FollowRelationship struct {
	ID        int64     `json:"id"`
	Follower  User      `json:"follower"`
	Following User      `json:"following"`
	CreatedAt time.Time `json:"created_at"`
}

// FollowResponse acknowledges follow and unfollow calls. FollowRelation is
// only set after a follow.
type FollowResponse struct {
	Message        string              `json:"message"`
	FollowRelation *FollowRelationship `json:"follow_relation,omitempty"`
}
