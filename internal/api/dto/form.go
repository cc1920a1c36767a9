package dto

// CreateFormRequest is the form creation payload
type CreateFormRequest struct {
	Title        string `json:"title" validate:"required,max=255"`
	Intro        string `json:"intro" validate:"max=2000"`
	QuestionType string `json:"question_type" validate:"required,oneof=rating text nps yesno"`
}

// UpdateFormRequest is the form update payload
type UpdateFormRequest struct {
	Title  string `json:"title" validate:"required,max=255"`
	Intro  string `json:"intro" validate:"max=2000"`
	Active *bool  `json:"active" validate:"required"`
}
