package models

import "time"

// Ad request statuses
const (
	AdRequestStatusPending  = "Pending"
	AdRequestStatusAccepted = "Accepted"
	AdRequestStatusRejected = "Rejected"
)

// Valid state transitions: from -> []to
var ValidAdRequestTransitions = map[string][]string{
	AdRequestStatusPending:  {AdRequestStatusAccepted, AdRequestStatusRejected},
	AdRequestStatusAccepted: {},
	AdRequestStatusRejected: {},
}

func IsValidTransition(from, to string) bool {
	allowed, ok := ValidAdRequestTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

type AdRequest struct {
	ID            int64     `json:"id"`
	CampaignID    int64     `json:"campaign_id"`
	InfluencerID  int64     `json:"influencer_id"`
	Messages      *string   `json:"messages,omitempty"`
	Requirements  *string   `json:"requirements,omitempty"`
	PaymentAmount float64   `json:"payment_amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AdRequestWithCampaign embeds AdRequest and adds campaign info to avoid N+1 queries.
type AdRequestWithCampaign struct {
	AdRequest
	CampaignName   string `json:"campaign_name"`
	SponsorID      int64  `json:"sponsor_id"`
	InfluencerName string `json:"influencer_name,omitempty"`
}
