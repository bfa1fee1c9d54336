package handler

// Response is the common response envelope.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Pagination carries paging metadata on list responses.
type Pagination struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"pageSize"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"totalPage"`
}

// CreateCampaignRequest creates a campaign and its escrow.
type CreateCampaignRequest struct {
	Creator     string `json:"creator" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	AmountGoal  uint64 `json:"amount_goal"`
}

// AddMilestoneRequest appends a milestone to a campaign.
type AddMilestoneRequest struct {
	Caller      string `json:"caller" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Amount      uint64 `json:"amount"`
}

// DonateRequest deposits value into a campaign's escrow.
type DonateRequest struct {
	Donor  string `json:"donor" binding:"required"`
	Amount uint64 `json:"amount"`
}

// VerifyMilestoneRequest certifies a milestone complete.
type VerifyMilestoneRequest struct {
	Verifier string `json:"verifier" binding:"required"`
	Proof    string `json:"proof" binding:"required"`
}

// RefundRequest returns value from escrow to a donor.
type RefundRequest struct {
	Donor  string `json:"donor" binding:"required"`
	Amount uint64 `json:"amount"`
}

// ProvisionAccountRequest opens a ledger account.
type ProvisionAccountRequest struct {
	Address string `json:"address" binding:"required"`
	Balance uint64 `json:"balance"`
}
