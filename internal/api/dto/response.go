package dto

// SubmitResponseRequest is the public form submission payload. Which
// answer field is required depends on the form's question type.
type SubmitResponseRequest struct {
	RespondentName  string `json:"respondent_name" validate:"max=255"`
	RespondentEmail string `json:"respondent_email" validate:"omitempty,email"`
	RequestToken    string `json:"request_token" validate:"max=64"`
	Rating          *int   `json:"rating"`
	NPSScore        *int   `json:"nps_score"`
	YesNo           *bool  `json:"yes_no"`
	Text            string `json:"text" validate:"max=5000"`
}
