package domain

var (
	MessageSuccessListFaq       = "faq entries retrieved successfully"
	MessageSuccessFaqCategories = "faq categories retrieved successfully"

	MessageFailedListFaq       = "failed to retrieve faq entries"
	MessageFailedFaqCategories = "failed to retrieve faq categories"
)

type (
	FaqItemResponse struct {
		FaqID     int64  `json:"faq_id"`
		Question  string `json:"question"`
		Answer    string `json:"answer"`
		Category  string `json:"category,omitempty"`
		CreatedAt string `json:"created_at"`
		UpdatedAt string `json:"updated_at"`
	}

	FaqListResponse struct {
		Count int               `json:"count"`
		Items []FaqItemResponse `json:"items"`
	}
)
