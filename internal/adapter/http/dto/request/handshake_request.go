package request

type IssueCodeRequest struct {
	Regenerate bool `json:"regenerate"`
}

type VerifyCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
