package routes

import (
	"time"

	"contentcal/handlers"
	"contentcal/middleware"
	"contentcal/storage"
	"contentcal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps are everything the router needs; stores and storage are interfaces
// so tests wire fakes.
type Deps struct {
	Users     store.UserStore
	Posts     store.PostStore
	Notes     store.NoteStore
	Images    storage.ImageStorage
	JWTSecret string
}

func SetupRouter(deps Deps) *gin.Engine {
	router := gin.Default()

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Content Calendar API is running",
			"time":    time.Now().Unix(),
		})
	})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	limiter := middleware.NewIPRateLimiter(60, time.Minute)
	router.Use(middleware.RateLimitMiddleware(limiter))

	auth := &handlers.AuthHandler{Users: deps.Users, JWTSecret: deps.JWTSecret}
	posts := &handlers.PostHandler{Posts: deps.Posts}
	notes := &handlers.NoteHandler{Notes: deps.Notes}
	images := &handlers.ImageHandler{Images: deps.Images}

	// Public routes (no auth required)
	router.POST("/api/signup", auth.Signup)
	router.POST("/api/login", auth.Login)

	// Protected routes group
	protected := router.Group("/api")
	protected.Use(middleware.JWTAuthMiddleware(deps.JWTSecret))

	// Session
	protected.POST("/logout", auth.Logout)

	// Posts
	protected.POST("/posts", posts.Create)
	protected.GET("/posts", posts.List)
	protected.PUT("/posts/:id", posts.Update)
	protected.DELETE("/posts/:id", posts.Delete)
	protected.POST("/posts/:id/reschedule", posts.Reschedule)

	// Calendar grid
	protected.GET("/calendar", posts.Calendar)

	// Notes
	protected.POST("/notes", notes.Create)
	protected.GET("/notes", notes.List)
	protected.PUT("/notes/:id", notes.Update)
	protected.DELETE("/notes/:id", notes.Delete)

	// Post images
	protected.POST("/upload-image", images.Upload)
	protected.DELETE("/images", images.Delete)

	router.NoRoute(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(404, gin.H{
				"error": "Endpoint not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		c.Next()
	})

	return router
}
