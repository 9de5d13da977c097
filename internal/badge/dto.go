package badge

type ClaimRequest struct {
	BadgeID string `json:"badge_id" validate:"required"`
}

type Animation struct {
	Type     string `json:"type"`
	Duration int    `json:"duration"`
}

var claimAnimation = Animation{Type: "celebration", Duration: 3000}

type ClaimResponse struct {
	Badge     *Badge    `json:"badge"`
	Animation Animation `json:"animation"`
}
