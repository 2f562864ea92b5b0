package repository

import (
	"github.com/unclebandit/ambassador-campaign/internal/model"
)

// ContentRepositoryInterface serves the fixed campaign copy used by the static pages
type ContentRepositoryInterface interface {
	Phases() []model.CampaignPhase
	Guidelines() []model.Guideline
	Rewards() []model.RewardTier
	SampleCampaigns() []model.SampleCampaign
	Instructions() []model.Instruction
}

// ContentRepository hands out copies of the tables below so callers can't
// mutate the shared copy.
type ContentRepository struct{}

var phases = []model.CampaignPhase{
	{
		Title:       "Awareness Phase",
		Description: "Spread the word about Google AI tools and their impact on education and creativity.",
		Color:       "blue",
		Goals: []string{
			"Create educational content about Google AI",
			"Share personal experiences with AI tools",
			"Reach minimum 100 impressions per post",
			"Use required hashtags consistently",
		},
	},
	{
		Title:       "Engagement Phase",
		Description: "Build meaningful connections and foster discussions around AI innovation.",
		Color:       "green",
		Goals: []string{
			"Generate meaningful conversations",
			"Respond to comments and questions",
			"Collaborate with other ambassadors",
			"Achieve 50+ engagements per post",
		},
	},
	{
		Title:       "Rewards Phase",
		Description: "Earn recognition and rewards based on your contribution and impact.",
		Color:       "purple",
		Goals: []string{
			"Qualify for exclusive Google swag",
			"Get featured on official channels",
			"Receive certificates of participation",
			"Access to exclusive AI workshops",
		},
	},
}

var guidelines = []model.Guideline{
	"All content must be original and authentic",
	"Include required hashtags: #GoogleGemini #PingNetwork #GoogleStudentAmbassador",
	"Post consistently (minimum 2 posts per week)",
	"Engage respectfully with the community",
	"Follow platform-specific community guidelines",
	"Submit post links within 24 hours of publishing",
}

var rewards = []model.RewardTier{
	{
		Tier:        "Bronze Ambassador",
		Requirement: "5+ approved posts",
		Benefits:    []string{"Digital certificate", "LinkedIn badge", "Community access"},
	},
	{
		Tier:        "Silver Ambassador",
		Requirement: "15+ approved posts with high engagement",
		Benefits:    []string{"Google swag package", "Featured spotlight", "Mentorship opportunity"},
	},
	{
		Tier:        "Gold Ambassador",
		Requirement: "25+ approved posts with exceptional impact",
		Benefits:    []string{"Exclusive workshop access", "Google campus visit", "Recommendation letter"},
		Featured:    true,
	},
}

var sampleCampaigns = []model.SampleCampaign{
	{
		Title:       "AI in Education",
		Description: "Share how Google AI tools are transforming learning experiences in your field of study.",
		Hashtags:    "#GoogleGemini #AIEducation #StudentLife",
		Color:       "blue",
	},
	{
		Title:       "Creative AI Projects",
		Description: "Showcase your creative projects using Google AI tools - art, music, writing, or coding.",
		Hashtags:    "#GoogleGemini #CreativeAI #Innovation",
		Color:       "purple",
	},
	{
		Title:       "AI for Social Good",
		Description: "Highlight how AI can solve real-world problems in your community or globally.",
		Hashtags:    "#GoogleGemini #AIForGood #SocialImpact",
		Color:       "green",
	},
	{
		Title:       "Study Buddy AI",
		Description: "Document your experience using AI as a study companion and learning assistant.",
		Hashtags:    "#GoogleGemini #StudyTips #AILearning",
		Color:       "orange",
	},
}

var instructions = []model.Instruction{
	{Step: 1, Title: "Choose Your Campaign", Description: "Select from our sample campaigns or create your own unique content idea."},
	{Step: 2, Title: "Create & Share", Description: "Post your content on LinkedIn, Instagram, or X with the required hashtags."},
	{Step: 3, Title: "Submit Your Link", Description: "Use our submission form to track your posts and engagement."},
}

func (r *ContentRepository) Phases() []model.CampaignPhase {
	out := make([]model.CampaignPhase, len(phases))
	for i, p := range phases {
		p.Goals = append([]string(nil), p.Goals...)
		out[i] = p
	}
	return out
}

func (r *ContentRepository) Guidelines() []model.Guideline {
	return append([]model.Guideline(nil), guidelines...)
}

func (r *ContentRepository) Rewards() []model.RewardTier {
	out := make([]model.RewardTier, len(rewards))
	for i, t := range rewards {
		t.Benefits = append([]string(nil), t.Benefits...)
		out[i] = t
	}
	return out
}

func (r *ContentRepository) SampleCampaigns() []model.SampleCampaign {
	return append([]model.SampleCampaign(nil), sampleCampaigns...)
}

func (r *ContentRepository) Instructions() []model.Instruction {
	return append([]model.Instruction(nil), instructions...)
}

var _ ContentRepositoryInterface = (*ContentRepository)(nil)
