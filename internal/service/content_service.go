// internal/service/content_service.go
package service

import (
	"github.com/unclebandit/ambassador-campaign/internal/model"
	"github.com/unclebandit/ambassador-campaign/internal/repository"
)

type ContentService struct {
	ContentRepo repository.ContentRepositoryInterface
}

type SampleCard struct {
	model.SampleCampaign
	Tags []string `json:"tags"`
}

type HomeContent struct {
	Instructions []model.Instruction `json:"instructions"`
	Samples      []SampleCard        `json:"samples"`
}

type CampaignContent struct {
	Phases           []model.CampaignPhase `json:"phases"`
	Guidelines       []model.Guideline     `json:"guidelines"`
	Rewards          []model.RewardTier    `json:"rewards"`
	RequiredHashtags []string              `json:"required_hashtags"`
}

func (s *ContentService) Home() HomeContent {
	samples := s.ContentRepo.SampleCampaigns()
	cards := make([]SampleCard, 0, len(samples))
	for _, c := range samples {
		cards = append(cards, SampleCard{SampleCampaign: c, Tags: c.TagList()})
	}
	return HomeContent{
		Instructions: s.ContentRepo.Instructions(),
		Samples:      cards,
	}
}

func (s *ContentService) Campaign() CampaignContent {
	return CampaignContent{
		Phases:           s.ContentRepo.Phases(),
		Guidelines:       s.ContentRepo.Guidelines(),
		Rewards:          s.ContentRepo.Rewards(),
		RequiredHashtags: append([]string(nil), model.RequiredHashtags...),
	}
}
