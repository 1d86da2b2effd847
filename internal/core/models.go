package core

import "net/http"

// User is a read-only copy of a user record as the API returns it.
// Followings is a client-side cache of who the user follows, kept up
// to date by the session store's FOLLOW/UNFOLLOW transitions.
type User struct {
	UserID         int64  `json:"user_id"`
	UserName       string `json:"user_name"`
	FirstName      string `json:"first_name,omitempty"`
	LastName       string `json:"last_name,omitempty"`
	DateOfBirth    string `json:"date_of_birth,omitempty"`
	Email          string `json:"email,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	CoverPicture   string `json:"cover_picture,omitempty"`

	Followings []int64 `json:"followings,omitempty"`
}

// Post is a post record as the API returns it.
type Post struct {
	PostID           int64     `json:"post_id"`
	UserID           int64     `json:"user_id"`
	ContentText      string    `json:"content_text"`
	ContentImagePath []string  `json:"content_image_path"`
	CreatedAt        string    `json:"created_at"`
	Comments         []Comment `json:"comments"`
	UsersLiked       []int64   `json:"users_liked"`
}

type Comment struct {
	CommentID   int64  `json:"comment_id"`
	UserID      int64  `json:"user_id"`
	PostID      int64  `json:"post_id"`
	ContentText string `json:"content_text"`
}

// Session is the one record that survives a process restart: the
// authenticated user plus the credential cookies the server set on
// login.
type Session struct {
	User    *User          `json:"user"`
	Cookies []*http.Cookie `json:"cookies,omitempty"`
}
