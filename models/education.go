package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EducationalContent is a single article within a learning section
type EducationalContent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ContentID string             `bson:"contentId" json:"id"`
	SectionID string             `bson:"sectionId" json:"sectionId"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Order     int                `bson:"order" json:"order"`
	IsActive  bool               `bson:"isActive" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"-"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"-"`
}

// QuizQuestion is a multiple-choice question within a quiz
type QuizQuestion struct {
	QuestionID    string   `bson:"questionId" json:"questionId"`
	Question      string   `bson:"question" json:"question"`
	Options       []string `bson:"options" json:"options"`
	CorrectAnswer int      `bson:"correctAnswer" json:"correctAnswer"`
	Explanation   string   `bson:"explanation" json:"explanation"`
}

// Quiz is an educational quiz worth a fixed number of points
type Quiz struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	QuizID     string             `bson:"quizId" json:"quizId"`
	Title      string             `bson:"title" json:"title"`
	Category   string             `bson:"category" json:"category"`
	Difficulty string             `bson:"difficulty" json:"difficulty"`
	Points     int                `bson:"points" json:"points"`
	Questions  []QuizQuestion     `bson:"questions" json:"questions"`
	IsActive   bool               `bson:"isActive" json:"-"`
	CreatedAt  time.Time          `bson:"createdAt" json:"-"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"-"`
}

// QuizAnswer records one answered question in a submission
type QuizAnswer struct {
	QuestionID     string `bson:"questionId" json:"questionId"`
	SelectedAnswer int    `bson:"selectedAnswer" json:"selectedAnswer"`
	IsCorrect      bool   `bson:"isCorrect" json:"isCorrect"`
}

// QuizProgress records a user's completed quiz attempt
type QuizProgress struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	QuizID         string             `bson:"quizId" json:"quizId"`
	Score          int                `bson:"score" json:"score"` // percentage
	TotalQuestions int                `bson:"totalQuestions" json:"totalQuestions"`
	CorrectAnswers int                `bson:"correctAnswers" json:"correctAnswers"`
	PointsEarned   int                `bson:"pointsEarned" json:"pointsEarned"`
	CompletedAt    time.Time          `bson:"completedAt" json:"completedAt"`
	Answers        []QuizAnswer       `bson:"answers" json:"answers"`
}

// Grade scores the submitted answers against the quiz. Points are earned in
// full only when every question is answered correctly, otherwise pro-rated.
func (q *Quiz) Grade(selected map[string]int, completedAt time.Time) QuizProgress {
	progress := QuizProgress{
		QuizID:         q.QuizID,
		TotalQuestions: len(q.Questions),
		CompletedAt:    completedAt,
	}

	for _, question := range q.Questions {
		answer, answered := selected[question.QuestionID]
		correct := answered && answer == question.CorrectAnswer
		if correct {
			progress.CorrectAnswers++
		}
		progress.Answers = append(progress.Answers, QuizAnswer{
			QuestionID:     question.QuestionID,
			SelectedAnswer: answer,
			IsCorrect:      correct,
		})
	}

	if progress.TotalQuestions > 0 {
		progress.Score = progress.CorrectAnswers * 100 / progress.TotalQuestions
		progress.PointsEarned = q.Points * progress.CorrectAnswers / progress.TotalQuestions
	}
	return progress
}
