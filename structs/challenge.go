package structs

type CreateChallengeRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Category    string  `json:"category" binding:"required,oneof=energy waste transport water food other"`
	Difficulty  string  `json:"difficulty" binding:"required,oneof=easy medium hard"`
	Points      int     `json:"points" binding:"omitempty,min=1"`
	Duration    int     `json:"duration" binding:"omitempty,min=1"`
	Target      float64 `json:"target" binding:"omitempty,min=1"`
	Unit        string  `json:"unit"`
	ImageURL    string  `json:"imageUrl"`
}

type UpdateProgressRequest struct {
	Progress *float64 `json:"progress" binding:"required"`
}

type SubmitQuizRequest struct {
	Answers map[string]int `json:"answers" binding:"required"`
}

type CreateContentRequest struct {
	ContentID string `json:"contentId" binding:"required"`
	SectionID string `json:"sectionId" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Order     int    `json:"order"`
}

type UpdateContentRequest struct {
	SectionID *string `json:"sectionId"`
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Order     *int    `json:"order"`
}
