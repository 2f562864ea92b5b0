// internal/service/feed_service.go
package service

import (
	"fmt"
	"sync"

	appErrors "github.com/unclebandit/ambassador-campaign/internal/errors"
	"github.com/unclebandit/ambassador-campaign/internal/model"
	"github.com/unclebandit/ambassador-campaign/internal/repository"
)

type FeedFilter string

const (
	FilterAll      FeedFilter = "all"
	FilterLinkedIn FeedFilter = FeedFilter(model.PlatformLinkedIn)
	FilterTwitter  FeedFilter = FeedFilter(model.PlatformTwitter)
)

// FeedFilters in the order the filter bar shows them.
var FeedFilters = []FeedFilter{FilterAll, FilterLinkedIn, FilterTwitter}

// ParseFeedFilter accepts "", "all", "linkedin" and "twitter".
func ParseFeedFilter(s string) (FeedFilter, error) {
	switch FeedFilter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterLinkedIn, FilterTwitter:
		return FeedFilter(s), nil
	}
	return "", fmt.Errorf("%w: %q", appErrors.ErrInvalidFilter, s)
}

func (f FeedFilter) Label() string {
	if f == FilterAll {
		return "All Posts"
	}
	return model.Platform(f).Label()
}

// Feed is one visitor's copy of the mock feed.
type Feed struct {
	mu    sync.Mutex
	posts []model.SocialPost
}

func NewFeed(posts []model.SocialPost) *Feed {
	return &Feed{posts: posts}
}

// ListPosts returns copies of the posts matching filter, in seed order.
func (f *Feed) ListPosts(filter FeedFilter) []model.SocialPost {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := []model.SocialPost{}
	for _, p := range f.posts {
		if filter == FilterAll || FeedFilter(p.Platform) == filter {
			out = append(out, p)
		}
	}
	return out
}

// ToggleLike flips the liked flag of postID and returns the updated post.
func (f *Feed) ToggleLike(postID int) (model.SocialPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.posts {
		if f.posts[i].ID == postID {
			f.posts[i].ToggleLike()
			return f.posts[i], nil
		}
	}
	return model.SocialPost{}, appErrors.NewPostNotFound(postID)
}

type FeedService struct {
	PostRepo repository.PostRepositoryInterface
	Feeds    *repository.SessionStore[*Feed]
}

// OpenFeed seeds a fresh feed and returns its id.
func (s *FeedService) OpenFeed() (string, *Feed) {
	feed := NewFeed(s.PostRepo.Seed())
	return s.Feeds.Create(feed), feed
}

func (s *FeedService) GetFeed(feedID string) (*Feed, error) {
	feed, ok := s.Feeds.Get(feedID)
	if !ok {
		return nil, appErrors.ErrFeedNotFound
	}
	return feed, nil
}

func (s *FeedService) ListPosts(feedID string, filter FeedFilter) ([]model.SocialPost, error) {
	feed, err := s.GetFeed(feedID)
	if err != nil {
		return nil, err
	}
	return feed.ListPosts(filter), nil
}

func (s *FeedService) ToggleLike(feedID string, postID int) (model.SocialPost, error) {
	feed, err := s.GetFeed(feedID)
	if err != nil {
		return model.SocialPost{}, err
	}
	return feed.ToggleLike(postID)
}
