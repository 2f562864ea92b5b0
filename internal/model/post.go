// internal/model/post.go
package model

type Platform string

const (
    PlatformLinkedIn  Platform = "linkedin"
    PlatformTwitter   Platform = "twitter"
    PlatformInstagram Platform = "instagram"
)

// Label is the display name used on buttons and selects.
func (p Platform) Label() string {
    switch p {
    case PlatformLinkedIn:
        return "LinkedIn"
    case PlatformTwitter:
        return "X (Twitter)"
    case PlatformInstagram:
        return "Instagram"
    }
    return string(p)
}

type Author struct {
    Name     string `json:"name"`
    Username string `json:"username"`
    Avatar   string `json:"avatar"`
    Title    string `json:"title,omitempty"`
}

type SocialPost struct {
    ID        int      `json:"id"`
    Platform  Platform `json:"platform"`
    Author    Author   `json:"author"`
    Content   string   `json:"content"`
    Image     string   `json:"image,omitempty"`
    Timestamp string   `json:"timestamp"`
    Likes     int      `json:"likes"`
    Comments  int      `json:"comments"`
    Shares    int      `json:"shares"`
    Liked     bool     `json:"liked"`
}

// ToggleLike flips Liked and moves Likes by exactly one.
func (p *SocialPost) ToggleLike() {
    if p.Liked {
        p.Likes--
    } else {
        p.Likes++
    }
    p.Liked = !p.Liked
}
