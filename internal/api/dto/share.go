package dto

// RecordShareRequest is the payload for recording a social share
type RecordShareRequest struct {
	ResponseID int64  `json:"response_id" validate:"required"`
	Platform   string `json:"platform" validate:"required,max=50"`
	Caption    string `json:"caption" validate:"max=2000"`
}
