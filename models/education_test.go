package models

import (
	"testing"
	"time"
)

func sampleQuiz() Quiz {
	return Quiz{
		QuizID: "sample-quiz",
		Points: 10,
		Questions: []QuizQuestion{
			{QuestionID: "q1", CorrectAnswer: 1},
			{QuestionID: "q2", CorrectAnswer: 2},
			{QuestionID: "q3", CorrectAnswer: 0},
			{QuestionID: "q4", CorrectAnswer: 3},
		},
	}
}

func TestGradePerfectScore(t *testing.T) {
	quiz := sampleQuiz()
	now := time.Now()

	progress := quiz.Grade(map[string]int{"q1": 1, "q2": 2, "q3": 0, "q4": 3}, now)

	if progress.Score != 100 {
		t.Errorf("Expected score 100, got %d", progress.Score)
	}
	if progress.CorrectAnswers != 4 {
		t.Errorf("Expected 4 correct answers, got %d", progress.CorrectAnswers)
	}
	if progress.PointsEarned != 10 {
		t.Errorf("Expected full 10 points, got %d", progress.PointsEarned)
	}
	if !progress.CompletedAt.Equal(now) {
		t.Error("Expected completion time to be recorded")
	}
}

func TestGradePartialScore(t *testing.T) {
	quiz := sampleQuiz()

	progress := quiz.Grade(map[string]int{"q1": 1, "q2": 0, "q3": 0}, time.Now())

	if progress.CorrectAnswers != 2 {
		t.Errorf("Expected 2 correct answers, got %d", progress.CorrectAnswers)
	}
	if progress.Score != 50 {
		t.Errorf("Expected score 50, got %d", progress.Score)
	}
	// points are pro-rated by correct answers
	if progress.PointsEarned != 5 {
		t.Errorf("Expected 5 points, got %d", progress.PointsEarned)
	}
	if len(progress.Answers) != 4 {
		t.Errorf("Expected an answer entry per question, got %d", len(progress.Answers))
	}
}

func TestGradeUnanswered(t *testing.T) {
	quiz := sampleQuiz()

	progress := quiz.Grade(map[string]int{}, time.Now())

	if progress.Score != 0 || progress.PointsEarned != 0 {
		t.Errorf("Expected zero score and points, got %d and %d", progress.Score, progress.PointsEarned)
	}
	for _, answer := range progress.Answers {
		if answer.IsCorrect {
			t.Errorf("Expected %s to be marked incorrect", answer.QuestionID)
		}
	}
}
