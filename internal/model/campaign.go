// internal/model/campaign.go
package model

import "strings"

// Hashtags every campaign post has to carry.
var RequiredHashtags = []string{"#GoogleGemini", "#PingNetwork", "#GoogleStudentAmbassador"}

type CampaignPhase struct {
    Title       string   `json:"title"`
    Description string   `json:"description"`
    Color       string   `json:"color"`
    Goals       []string `json:"goals"`
}

type Guideline string

type RewardTier struct {
    Tier        string   `json:"tier"`
    Requirement string   `json:"requirement"`
    Benefits    []string `json:"benefits"`
    Featured    bool     `json:"featured"`
}

type SampleCampaign struct {
    Title       string `json:"title"`
    Description string `json:"description"`
    Hashtags    string `json:"hashtags"`
    Color       string `json:"color"`
}

// TagList splits the campaign hashtags and appends the network-wide tags
// shown on every sample card.
func (s SampleCampaign) TagList() []string {
    tags := strings.Fields(s.Hashtags)
    return append(tags, "#PingNetwork", "#GoogleStudentAmbassador")
}

type Instruction struct {
    Step        int    `json:"step"`
    Title       string `json:"title"`
    Description string `json:"description"`
}
