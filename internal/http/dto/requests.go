package dto

// Registration and login accept classic HTML form bodies as well as JSON,
// so every field carries both tags.

type RegisterRequest struct {
	Name     string `json:"name" form:"name"`
	Role     string `json:"role" form:"role"`
	Pwd      string `json:"pwd" form:"pwd"`
	Email    string `json:"email" form:"email"`
	Industry string `json:"industry" form:"industry"`
}

type LoginRequest struct {
	Email string `json:"email" form:"email"`
	Pwd   string `json:"pwd" form:"pwd"`
}

type AdminLoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type CreateCampaignRequest struct {
	CampaignName string  `json:"campaignName" form:"campaignName"`
	Description  string  `json:"description" form:"description"`
	StartDate    string  `json:"startDate" form:"startDate"` // 2006-01-02
	EndDate      string  `json:"endDate" form:"endDate"`     // 2006-01-02
	Budget       float64 `json:"budget" form:"budget"`
	Visibility   string  `json:"visibility" form:"visibility"`
	Goals        string  `json:"goals" form:"goals"`
}

type CreateAdRequestRequest struct {
	CampaignID    int64   `json:"campaign_id" form:"campaign_id"`
	InfluencerID  int64   `json:"influencer_id" form:"influencer_id"`
	Messages      *string `json:"messages,omitempty" form:"messages"`
	Requirements  *string `json:"requirements,omitempty" form:"requirements"`
	PaymentAmount float64 `json:"payment_amount" form:"payment_amount"`
}
