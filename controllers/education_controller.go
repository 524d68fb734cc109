package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/SE-Y3S1-SE-50/GreenStepBackend/db"
	"github.com/SE-Y3S1-SE-50/GreenStepBackend/middlewares"
	"github.com/SE-Y3S1-SE-50/GreenStepBackend/models"
	"github.com/SE-Y3S1-SE-50/GreenStepBackend/services"
	"github.com/SE-Y3S1-SE-50/GreenStepBackend/structs"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAllContent returns active educational content grouped by section
func GetAllContent(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "sectionId", Value: 1},
		{Key: "order", Value: 1},
	})
	cursor, err := db.GetCollection("educational_content").Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch content"})
		return
	}
	defer cursor.Close(ctx)

	var items []models.EducationalContent
	if err := cursor.All(ctx, &items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode content"})
		return
	}

	sections := make(map[string][]models.EducationalContent)
	for _, item := range items {
		sections[item.SectionID] = append(sections[item.SectionID], item)
	}

	c.JSON(http.StatusOK, gin.H{"content": sections})
}

// GetContentByID returns a single active content item
func GetContentByID(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var content models.EducationalContent
	err := db.GetCollection("educational_content").FindOne(ctx,
		bson.M{"contentId": c.Param("contentId"), "isActive": true}).Decode(&content)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch content"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": content})
}

// CreateContent inserts a content item (admin only)
func CreateContent(c *gin.Context) {
	var req structs.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	now := time.Now()
	content := models.EducationalContent{
		ID:        primitive.NewObjectID(),
		ContentID: req.ContentID,
		SectionID: req.SectionID,
		Title:     req.Title,
		Content:   req.Content,
		Order:     req.Order,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := db.GetCollection("educational_content").InsertOne(ctx, content); err != nil {
		log.Printf("Error creating content: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create content"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Content created successfully",
		"content": content,
	})
}

// BulkCreateContent inserts multiple content items at once (admin only)
func BulkCreateContent(c *gin.Context) {
	var reqs []structs.CreateContentRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if len(reqs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No content provided"})
		return
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(reqs))
	for _, req := range reqs {
		docs = append(docs, models.EducationalContent{
			ID:        primitive.NewObjectID(),
			ContentID: req.ContentID,
			SectionID: req.SectionID,
			Title:     req.Title,
			Content:   req.Content,
			Order:     req.Order,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := db.GetCollection("educational_content").InsertMany(ctx, docs); err != nil {
		log.Printf("Error bulk creating content: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create content"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Content created successfully",
		"count":   len(docs),
	})
}

// UpdateContent modifies an existing content item (admin only)
func UpdateContent(c *gin.Context) {
	var req structs.UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	if req.SectionID != nil {
		update["sectionId"] = *req.SectionID
	}
	if req.Title != nil {
		update["title"] = *req.Title
	}
	if req.Content != nil {
		update["content"] = *req.Content
	}
	if req.Order != nil {
		update["order"] = *req.Order
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var content models.EducationalContent
	err := db.GetCollection("educational_content").FindOneAndUpdate(ctx,
		bson.M{"contentId": c.Param("contentId")},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&content)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update content"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Content updated successfully",
		"content": content,
	})
}

// DeactivateContent soft deletes a content item (admin only)
func DeactivateContent(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := db.GetCollection("educational_content").UpdateOne(ctx,
		bson.M{"contentId": c.Param("contentId")},
		bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete content"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content deleted successfully"})
}

// GetAllQuizzes lists active quizzes without the answer keys
func GetAllQuizzes(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := db.GetCollection("quizzes").Find(ctx, bson.M{"isActive": true})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch quizzes"})
		return
	}
	defer cursor.Close(ctx)

	var quizzes []models.Quiz
	if err := cursor.All(ctx, &quizzes); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode quizzes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"quizzes": stripAnswers(quizzes)})
}

// GetQuizByID returns a single quiz without its answer key
func GetQuizByID(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var quiz models.Quiz
	err := db.GetCollection("quizzes").FindOne(ctx,
		bson.M{"quizId": c.Param("quizId"), "isActive": true}).Decode(&quiz)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch quiz"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"quiz": stripAnswers([]models.Quiz{quiz})[0]})
}

// quizView mirrors a quiz with the answer keys removed
type quizView struct {
	QuizID     string             `json:"quizId"`
	Title      string             `json:"title"`
	Category   string             `json:"category"`
	Difficulty string             `json:"difficulty"`
	Points     int                `json:"points"`
	Questions  []quizQuestionView `json:"questions"`
}

type quizQuestionView struct {
	QuestionID string   `json:"questionId"`
	Question   string   `json:"question"`
	Options    []string `json:"options"`
}

func stripAnswers(quizzes []models.Quiz) []quizView {
	views := make([]quizView, 0, len(quizzes))
	for _, quiz := range quizzes {
		view := quizView{
			QuizID:     quiz.QuizID,
			Title:      quiz.Title,
			Category:   quiz.Category,
			Difficulty: quiz.Difficulty,
			Points:     quiz.Points,
		}
		for _, q := range quiz.Questions {
			view.Questions = append(view.Questions, quizQuestionView{
				QuestionID: q.QuestionID,
				Question:   q.Question,
				Options:    q.Options,
			})
		}
		views = append(views, view)
	}
	return views
}

// SubmitQuiz grades a submission, stores the attempt and awards earned points
func SubmitQuiz(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req structs.SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var quiz models.Quiz
	err := db.GetCollection("quizzes").FindOne(ctx,
		bson.M{"quizId": c.Param("quizId"), "isActive": true}).Decode(&quiz)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch quiz"})
		}
		return
	}

	progress := quiz.Grade(req.Answers, time.Now())
	progress.ID = primitive.NewObjectID()
	progress.UserID = userID

	if _, err := db.GetCollection("quiz_progress").InsertOne(ctx, progress); err != nil {
		log.Printf("Error saving quiz progress: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save quiz result"})
		return
	}

	rewardInfo, err := services.AwardQuizPoints(ctx, userID, progress.PointsEarned)
	if err != nil {
		log.Printf("Error awarding quiz points to user %s: %v", userID.Hex(), err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Quiz submitted successfully",
		"result":  progress,
		"rewards": rewardInfo,
	})
}

// GetUserQuizProgress lists the user's quiz attempts, newest first
func GetUserQuizProgress(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "completedAt", Value: -1}})
	cursor, err := db.GetCollection("quiz_progress").Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch quiz progress"})
		return
	}
	defer cursor.Close(ctx)

	var attempts []models.QuizProgress
	if err := cursor.All(ctx, &attempts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode quiz progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": attempts})
}
