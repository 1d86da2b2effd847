package cmd

import (
	"fmt"
	"strings"

	"github.com/k0kubun/pp"

	"socialite/internal/core"
	"socialite/internal/friends"
)

func dump(v any) {
	pp.Println(v) //nolint:errcheck
}

func renderPosts(cfg *core.Config, posts []*core.Post) {
	for _, p := range posts {
		fmt.Printf("post %d by user %d at %s\n", p.PostID, p.UserID, p.CreatedAt)
		fmt.Printf("  %s\n", p.ContentText)
		for _, img := range p.ContentImagePath {
			fmt.Printf("  image: %s\n", imageURL(cfg, img))
		}
		fmt.Printf("  %d likes, %d comments\n\n", len(p.UsersLiked), len(p.Comments))
	}
	if len(posts) == 0 {
		fmt.Println("no posts")
	}
}

func renderPanel(cfg *core.Config, targetID int64, panel *friends.Panel) {
	fmt.Printf("user %d: %d followers, followed by you: %t\n", targetID, len(panel.Followers), panel.Followed)
	for _, u := range panel.Followers {
		fmt.Printf("  %s (user %d) %s\n", u.UserName, u.UserID, profilePicture(cfg, u))
	}
}

// profilePicture falls back to the stock avatar under the public asset
// base when the user has none.
func profilePicture(cfg *core.Config, u *core.User) string {
	if u.ProfilePicture != "" {
		return u.ProfilePicture
	}
	return cfg.AssetServer + "/person/noAvatar.jpeg"
}

// imageURL resolves a stored image reference against the public asset
// base. Uploaded images carry an absolute URL and pass through.
func imageURL(cfg *core.Config, ref string) string {
	if strings.Contains(ref, "://") {
		return ref
	}
	return cfg.AssetServer + "/" + strings.TrimPrefix(ref, "/")
}
