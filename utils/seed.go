package utils

import (
	"context"
	"log"
	"time"

	"github.com/SE-Y3S1-SE-50/GreenStepBackend/db"
	"github.com/SE-Y3S1-SE-50/GreenStepBackend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SeedDatabase inserts starter challenges and educational content when the
// collections are empty. Existing data is never modified.
func SeedDatabase() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seedUsers(ctx)
	seedChallenges(ctx)
	seedEducationalContent(ctx)
	seedQuizzes(ctx)
}

func seedUsers(ctx context.Context) {
	collection := db.GetCollection("users")
	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil || count > 0 {
		return
	}

	hashed, err := HashPassword("password123")
	if err != nil {
		log.Printf("Error hashing seed password: %v", err)
		return
	}

	now := time.Now()
	users := []interface{}{
		models.User{
			ID:          primitive.NewObjectID(),
			Username:    "johndoe",
			Password:    hashed,
			FirstName:   "John",
			LastName:    "Doe",
			Email:       "john@example.com",
			PhoneNumber: "+1234567890",
			Role:        "user",
			Level:       1,
			CreatedAt:   now,
		},
		models.User{
			ID:          primitive.NewObjectID(),
			Username:    "janesmith",
			Password:    hashed,
			FirstName:   "Jane",
			LastName:    "Smith",
			Email:       "jane@example.com",
			PhoneNumber: "+1234567891",
			Role:        "user",
			Level:       1,
			CreatedAt:   now,
		},
		models.User{
			ID:        primitive.NewObjectID(),
			Username:  "admin",
			Password:  hashed,
			FirstName: "Site",
			LastName:  "Admin",
			Email:     "admin@example.com",
			Role:      "admin",
			Level:     1,
			CreatedAt: now,
		},
	}

	if _, err := collection.InsertMany(ctx, users); err != nil {
		log.Printf("Error seeding users: %v", err)
		return
	}
	log.Printf("Seeded %d users", len(users))
}

func seedChallenges(ctx context.Context) {
	collection := db.GetCollection("challenges")
	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil || count > 0 {
		return
	}

	now := time.Now()
	challenges := []interface{}{
		models.Challenge{
			ID:           primitive.NewObjectID(),
			Title:        "Plant Your First Tree",
			Description:  "Plant a tree and register it to start your green journey",
			Category:     models.CategoryOther,
			Difficulty:   "easy",
			Points:       50,
			Duration:     7,
			Target:       1,
			Unit:         "trees",
			IsActive:     true,
			Participants: []models.Participant{},
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		models.Challenge{
			ID:           primitive.NewObjectID(),
			Title:        "Water Saver Week",
			Description:  "Reduce your daily water usage for a full week",
			Category:     models.CategoryWater,
			Difficulty:   "medium",
			Points:       100,
			Duration:     7,
			Target:       7,
			Unit:         "days",
			IsActive:     true,
			Participants: []models.Participant{},
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		models.Challenge{
			ID:           primitive.NewObjectID(),
			Title:        "Bike to Work",
			Description:  "Swap your commute for a bicycle ride ten times",
			Category:     models.CategoryTransport,
			Difficulty:   "hard",
			Points:       200,
			Duration:     30,
			Target:       10,
			Unit:         "rides",
			IsActive:     true,
			Participants: []models.Participant{},
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}

	if _, err := collection.InsertMany(ctx, challenges); err != nil {
		log.Printf("Error seeding challenges: %v", err)
		return
	}
	log.Printf("Seeded %d challenges", len(challenges))
}

func seedEducationalContent(ctx context.Context) {
	collection := db.GetCollection("educational_content")
	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil || count > 0 {
		return
	}

	now := time.Now()
	items := []interface{}{
		models.EducationalContent{
			ID:        primitive.NewObjectID(),
			ContentID: "what-is-reforestation",
			SectionID: "basics",
			Title:     "What is Reforestation?",
			Content: "Reforestation is the process of replanting trees in areas where forests " +
				"have been depleted, damaged, or destroyed. It restores degraded ecosystems, " +
				"sequesters carbon, prevents soil erosion and creates habitat for wildlife. " +
				"It differs from afforestation, which plants trees in areas that were not " +
				"previously forested.",
			Order:     1,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		models.EducationalContent{
			ID:        primitive.NewObjectID(),
			ContentID: "importance-trees",
			SectionID: "basics",
			Title:     "Importance of Trees & Forests",
			Content: "Trees produce oxygen through photosynthesis, absorb and store carbon " +
				"dioxide, purify the air, regulate the water cycle and provide habitat for " +
				"wildlife. For people they offer timber, recreation, natural cooling and " +
				"protection from floods and landslides.",
			Order:     2,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		models.EducationalContent{
			ID:        primitive.NewObjectID(),
			ContentID: "local-vs-native",
			SectionID: "species-planting",
			Title:     "Local vs. Non-native Species",
			Content: "Native species are adapted to local climate and soil, support local " +
				"wildlife and need less maintenance and water. Non-native species may grow " +
				"faster but risk becoming invasive and displacing native plants. Research the " +
				"historical vegetation of your area before choosing what to plant.",
			Order:     1,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if _, err := collection.InsertMany(ctx, items); err != nil {
		log.Printf("Error seeding educational content: %v", err)
		return
	}
	log.Printf("Seeded %d content items", len(items))
}

func seedQuizzes(ctx context.Context) {
	collection := db.GetCollection("quizzes")
	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil || count > 0 {
		return
	}

	now := time.Now()
	quizzes := []interface{}{
		models.Quiz{
			ID:         primitive.NewObjectID(),
			QuizID:     "reforestation-basics-quiz",
			Title:      "Reforestation Basics Quiz",
			Category:   "basics",
			Difficulty: "easy",
			Points:     10,
			Questions: []models.QuizQuestion{
				{
					QuestionID: "q1",
					Question:   "What is reforestation?",
					Options: []string{
						"Cutting down trees",
						"Replanting trees in depleted areas",
						"Building new forests in cities",
						"Moving forests to new locations",
					},
					CorrectAnswer: 1,
					Explanation:   "Reforestation is the process of replanting trees in areas where forests have been depleted or destroyed.",
				},
				{
					QuestionID: "q2",
					Question:   "Which of the following is a benefit of reforestation?",
					Options: []string{
						"Increased air pollution",
						"Soil erosion",
						"Carbon sequestration",
						"Habitat destruction",
					},
					CorrectAnswer: 2,
					Explanation:   "Carbon sequestration is a major benefit of reforestation, helping to combat climate change.",
				},
				{
					QuestionID: "q3",
					Question:   "What is the difference between reforestation and afforestation?",
					Options: []string{
						"There is no difference",
						"Reforestation replants in previously forested areas, afforestation plants in new areas",
						"Afforestation is only done in cities",
						"Reforestation uses only native species",
					},
					CorrectAnswer: 1,
					Explanation:   "Reforestation replants previously forested areas, afforestation plants areas that were not forested before.",
				},
			},
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		models.Quiz{
			ID:         primitive.NewObjectID(),
			QuizID:     "tree-species-quiz",
			Title:      "Tree Species Selection Quiz",
			Category:   "species-planting",
			Difficulty: "medium",
			Points:     15,
			Questions: []models.QuizQuestion{
				{
					QuestionID: "q1",
					Question:   "Why should native species be prioritized in reforestation?",
					Options: []string{
						"They are cheaper",
						"They are adapted to local conditions and support local wildlife",
						"They grow faster than other species",
						"They require more maintenance",
					},
					CorrectAnswer: 1,
					Explanation:   "Native species are adapted to local climate and soil and support local wildlife better.",
				},
				{
					QuestionID: "q2",
					Question:   "What is a risk of planting non-native species?",
					Options: []string{
						"They always grow too slowly",
						"They become invasive and displace native plants",
						"They produce too much oxygen",
						"They are always expensive",
					},
					CorrectAnswer: 1,
					Explanation:   "Non-native species can become invasive and disrupt local ecosystems.",
				},
			},
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if _, err := collection.InsertMany(ctx, quizzes); err != nil {
		log.Printf("Error seeding quizzes: %v", err)
		return
	}
	log.Printf("Seeded %d quizzes", len(quizzes))
}
