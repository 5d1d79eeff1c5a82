package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/loopfz/gadgeto/tonic"

	api "github.com/quillforge/creator-api/pkg/creator_api"
	"github.com/quillforge/creator-api/pkg/creator_api/database"
	"github.com/quillforge/creator-api/pkg/creator_api/handler"
	problem "github.com/quillforge/creator-api/pkg/creator_api/helpers/problem"
	"github.com/quillforge/creator-api/pkg/creator_api/providers"
	"github.com/quillforge/creator-api/pkg/creator_api/repositories"
	"github.com/quillforge/creator-api/pkg/creator_api/services"
	"github.com/quillforge/creator-api/pkg/jobs"
)

const apiVersion = "1.0.0"

func invalidParamsFromBinding(err error) []problem.InvalidParam {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []problem.InvalidParam{{Name: "body", Reason: err.Error()}}
	}

	out := make([]problem.InvalidParam, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, problem.InvalidParam{
			Name:   fe.Field(),
			Reason: humanReason(fe),
		})
	}
	return out
}

func humanReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	default:
		return fe.Error()
	}
}

func init() {
	tonic.SetErrorHook(func(c *gin.Context, err error) (int, interface{}) {
		// Bind/validate errors: 400 with the offending params.
		var be tonic.BindError
		if errors.As(err, &be) || isValidationErr(err) {
			apiErr := problem.NewBadRequest("body", "Invalid input", invalidParamsFromBinding(err)...)
			c.Header("Content-Type", "application/problem+json")
			return apiErr.Status, apiErr
		}

		// Our own APIError: pass-through.
		if apiErr, ok := err.(problem.APIError); ok {
			c.Header("Content-Type", "application/problem+json")
			return apiErr.Status, apiErr
		}

		// Anything else is internal. Detail stays in the log.
		log.Printf("[error] %s %s: %v", c.Request.Method, c.FullPath(), err)
		internal := problem.NewInternalServerError()
		c.Header("Content-Type", "application/problem+json")
		return internal.Status, internal
	})
}

func isValidationErr(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}

func main() {
	_ = godotenv.Load()

	dbcon := "postgres://" +
		os.Getenv("DB_USERNAME") + ":" +
		os.Getenv("DB_PASSWORD") + "@" +
		os.Getenv("DB_HOSTNAME") + "/" +
		os.Getenv("DB_DBNAME")
	db, err := database.Connect(dbcon)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	text, err := providers.NewOpenAIText(providers.TextConfig{
		APIKey:  os.Getenv("TEXT_API_KEY"),
		BaseURL: os.Getenv("TEXT_BASE_URL"),
		Model:   os.Getenv("TEXT_MODEL"),
	})
	if err != nil {
		log.Fatalf("text provider: %v", err)
	}
	reviewer, err := providers.NewRestReviewer(providers.ReviewConfig{
		APIKey:  os.Getenv("REVIEW_API_KEY"),
		BaseURL: os.Getenv("REVIEW_BASE_URL"),
		Model:   os.Getenv("REVIEW_MODEL"),
	})
	if err != nil {
		log.Fatalf("review provider: %v", err)
	}
	images, err := providers.NewRestImageGenerator(providers.ImageConfig{
		APIKey: os.Getenv("IMAGE_API_KEY"),
		URL:    os.Getenv("IMAGE_API_URL"),
	})
	if err != nil {
		log.Fatalf("image provider: %v", err)
	}
	media, err := providers.NewRestMediaStore(providers.MediaConfig{
		CloudName:   os.Getenv("MEDIA_CLOUD_NAME"),
		APIKey:      os.Getenv("MEDIA_API_KEY"),
		UploadURL:   os.Getenv("MEDIA_UPLOAD_URL"),
		DeliveryURL: os.Getenv("MEDIA_DELIVERY_URL"),
	})
	if err != nil {
		log.Fatalf("media store: %v", err)
	}

	creationRepo := repositories.NewCreationRepository(db)
	statsRepo := repositories.NewStatsRepository(db)

	creationService := services.NewCreationService(creationRepo)
	generationService := services.NewGenerationService(creationRepo, text, reviewer, images, media)
	statsService := services.NewStatsService(statsRepo)

	jobs.ScheduleDailyAudit(context.Background(), creationService)

	router := api.NewRouter(apiVersion, api.Controllers{
		Creations:  handler.NewCreationsController(creationService),
		Generation: handler.NewGenerationController(generationService),
		Statistics: handler.NewStatisticsController(statsService),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Println("Server is running on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
