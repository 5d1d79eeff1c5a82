package creator_api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/loopfz/gadgeto/tonic"
	"github.com/quillforge/creator-api/pkg/creator_api/handler"
	"github.com/quillforge/creator-api/pkg/creator_api/middleware"
	"github.com/wI2L/fizz"
	"github.com/wI2L/fizz/openapi"
)

var apiVersionHeader = fizz.Header(
	"API-Version",
	"The API version of the response",
	"",
)

// Controllers bundles everything the router needs.
type Controllers struct {
	Creations  *handler.CreationsController
	Generation *handler.GenerationController
	Statistics *handler.StatisticsController
}

func NewRouter(apiVersion string, c Controllers) *fizz.Fizz {
	g := gin.Default()
	g.Use(cors.Default())
	g.Use(APIVersionMiddleware(apiVersion))
	f := fizz.NewFromEngine(g)

	info := &openapi.Info{
		Title:       "Creator API v1",
		Description: "AI content generation with a community feed of published creations",
		Version:     apiVersion,
	}

	root := f.Group("/v1", "API v1", "Creator API v1 routes", middleware.RequireAuth())

	// Creation lifecycle: private history, community feed, like toggle.
	creations := root.Group("", "Creations", "Reading and curating creations")
	creations.GET("/creations",
		[]fizz.OperationOption{
			fizz.Summary("List the caller's own creations"),
			apiVersionHeader,
		},
		tonic.Handler(c.Creations.ListOwnCreations, 200),
	)
	creations.GET("/creations/published",
		[]fizz.OperationOption{
			fizz.Summary("List the community feed of published creations"),
			apiVersionHeader,
		},
		tonic.Handler(c.Creations.ListPublishedCreations, 200),
	)
	creations.GET("/creations/:id",
		[]fizz.OperationOption{
			fizz.Summary("Retrieve a single creation"),
			apiVersionHeader,
		},
		tonic.Handler(c.Creations.RetrieveCreation, 200),
	)
	creations.POST("/creations/:id/like",
		[]fizz.OperationOption{
			fizz.Summary("Toggle the caller's like on a creation"),
			apiVersionHeader,
		},
		tonic.Handler(c.Creations.ToggleLike, 200),
	)
	creations.PATCH("/creations/:id/publish",
		[]fizz.OperationOption{
			fizz.Summary("Publish or unpublish an owned creation"),
			apiVersionHeader,
		},
		tonic.Handler(c.Creations.TogglePublish, 200),
	)

	// Provider-backed generation.
	generate := root.Group("", "Generation", "AI generation and transformation")
	generate.POST("/generate/article",
		[]fizz.OperationOption{
			fizz.Summary("Generate an article for a topic"),
			apiVersionHeader,
		},
		tonic.Handler(c.Generation.GenerateArticle, 200),
	)
	generate.POST("/generate/blog-title",
		[]fizz.OperationOption{
			fizz.Summary("Generate a blog title for a keyword"),
			apiVersionHeader,
		},
		tonic.Handler(c.Generation.GenerateTitle, 200),
	)
	generate.POST("/generate/image",
		[]fizz.OperationOption{
			fizz.Summary("Generate an image for a prompt (premium)"),
			apiVersionHeader,
		},
		tonic.Handler(c.Generation.GenerateImage, 200),
	)
	generate.POST("/image/remove-background",
		[]fizz.OperationOption{
			fizz.Summary("Remove the background from an image (premium)"),
			apiVersionHeader,
		},
		tonic.Handler(c.Generation.RemoveBackground, 200),
	)
	generate.POST("/image/remove-object",
		[]fizz.OperationOption{
			fizz.Summary("Remove an object from an image (premium)"),
			apiVersionHeader,
		},
		tonic.Handler(c.Generation.RemoveObject, 200),
	)
	generate.POST("/resume/review",
		[]fizz.OperationOption{
			fizz.Summary("Review an uploaded resume (premium)"),
			apiVersionHeader,
		},
		tonic.Handler(c.Generation.ReviewResume, 200),
	)

	// Read-only aggregates.
	stats := root.Group("", "Statistics", "Usage statistics")
	stats.GET("/statistics/usage",
		[]fizz.OperationOption{
			fizz.Summary("Per-kind creation and like totals"),
			apiVersionHeader,
		},
		tonic.Handler(c.Statistics.GetUsage, 200),
	)
	stats.GET("/statistics/top",
		[]fizz.OperationOption{
			fizz.Summary("Top liked published creations"),
			apiVersionHeader,
		},
		tonic.Handler(c.Statistics.GetTopCreations, 200),
	)

	f.GET("/v1/openapi.json", []fizz.OperationOption{}, f.OpenAPI(info, "json"))

	return f
}

type apiVersionWriter struct {
	gin.ResponseWriter
	version string
}

func (w *apiVersionWriter) WriteHeader(code int) {
	if code >= 200 && code < 300 {
		w.Header().Set("API-Version", w.version)
	}
	w.ResponseWriter.WriteHeader(code)
}

func APIVersionMiddleware(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer = &apiVersionWriter{c.Writer, version}
		c.Next()
	}
}
