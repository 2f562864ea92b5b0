package repository

import (
	"github.com/unclebandit/ambassador-campaign/internal/model"
)

// PostRepositoryInterface defines where a new feed gets its posts from
type PostRepositoryInterface interface {
	Seed() []model.SocialPost
}

// PostRepository serves the fixed mock feed
type PostRepository struct{}

var mockPosts = []model.SocialPost{
	{
		ID:       1,
		Platform: model.PlatformLinkedIn,
		Author: model.Author{
			Name:     "Sarah Chen",
			Username: "sarahchen_ai",
			Avatar:   "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=2",
			Title:    "Computer Science Student at MIT",
		},
		Content:   "Just finished building an AI-powered study assistant using Google Gemini! 🤖✨ It helps me summarize complex research papers and generates practice questions. The future of education is here! #GoogleGemini #PingNetwork #GoogleStudentAmbassador #AIEducation",
		Image:     "https://images.pexels.com/photos/8386440/pexels-photo-8386440.jpeg?auto=compress&cs=tinysrgb&w=800",
		Timestamp: "2 hours ago",
		Likes:     127,
		Comments:  23,
		Shares:    15,
		Liked:     false,
	},
	{
		ID:       2,
		Platform: model.PlatformTwitter,
		Author: model.Author{
			Name:     "Alex Rodriguez",
			Username: "alexr_creates",
			Avatar:   "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=2",
		},
		Content:   "Created this amazing digital art piece with AI assistance! Google Gemini helped me brainstorm concepts and refine my creative process. Technology + creativity = magic ✨🎨 #GoogleGemini #PingNetwork #GoogleStudentAmbassador #CreativeAI",
		Image:     "https://images.pexels.com/photos/1762851/pexels-photo-1762851.jpeg?auto=compress&cs=tinysrgb&w=800",
		Timestamp: "4 hours ago",
		Likes:     89,
		Comments:  12,
		Shares:    34,
		Liked:     true,
	},
	{
		ID:       3,
		Platform: model.PlatformLinkedIn,
		Author: model.Author{
			Name:     "Maya Patel",
			Username: "mayapatel_dev",
			Avatar:   "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=2",
			Title:    "Data Science Student at Stanford",
		},
		Content:   "Excited to share my latest project: an AI chatbot that helps students with mental health resources! 🧠💚 Using Google Gemini to provide empathetic responses and connect students with appropriate support. AI for social good! #GoogleGemini #PingNetwork #GoogleStudentAmbassador #AIForGood",
		Timestamp: "6 hours ago",
		Likes:     203,
		Comments:  45,
		Shares:    28,
		Liked:     false,
	},
	{
		ID:       4,
		Platform: model.PlatformTwitter,
		Author: model.Author{
			Name:     "Jordan Kim",
			Username: "jordankim_tech",
			Avatar:   "https://images.pexels.com/photos/1681010/pexels-photo-1681010.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=2",
		},
		Content:   "Thread 🧵: How I use Google Gemini as my coding buddy! From debugging to code optimization, AI has transformed my development workflow. Here are 5 ways it boosted my productivity... #GoogleGemini #PingNetwork #GoogleStudentAmbassador #CodingLife",
		Timestamp: "8 hours ago",
		Likes:     156,
		Comments:  31,
		Shares:    67,
		Liked:     true,
	},
}

// Seed returns a fresh copy of the mock feed; every feed mutates its own copy.
func (r *PostRepository) Seed() []model.SocialPost {
	return append([]model.SocialPost(nil), mockPosts...)
}

var _ PostRepositoryInterface = (*PostRepository)(nil)
