package entity

// QuizQuestionView is a question as shown to the player: no correct index,
// no explanation.
type QuizQuestionView struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type QuizSessionResponse struct {
	SessionID string            `json:"session_id"`
	State     string            `json:"state"`
	Index     int               `json:"index"`
	Total     int               `json:"total"`
	Score     int               `json:"score"`
	Question  *QuizQuestionView `json:"question,omitempty"`
}

type QuizAnswerRequest struct {
	Option *int `json:"option" validate:"required,min=0,max=3"`
}

type QuizAnswerResponse struct {
	Accepted     bool   `json:"accepted"`
	Correct      bool   `json:"correct"`
	CorrectIndex int    `json:"correct_index"`
	Explanation  string `json:"explanation"`
	Score        int    `json:"score"`
	State        string `json:"state"`
}

type QuizProgressResponse struct {
	State      string            `json:"state"`
	Index      int               `json:"index"`
	Total      int               `json:"total"`
	Score      int               `json:"score"`
	Percentage int               `json:"percentage"`
	Question   *QuizQuestionView `json:"question,omitempty"`
}
