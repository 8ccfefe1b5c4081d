package handlers

import (
	"log"
	"net/http"
	"time"

	"contentcal/calendar"
	"contentcal/models"
	"contentcal/planner"
	"contentcal/store"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	Posts store.PostStore
}

type CreatePostRequest struct {
	Title         string          `json:"title"`
	ImageURLs     []string        `json:"imageUrls"`
	Platform      models.Platform `json:"platform" binding:"required"`
	ScheduledDate time.Time       `json:"scheduledDate" binding:"required"`
	Status        models.Status   `json:"status" binding:"required"`
}

type UpdatePostRequest struct {
	Title         *string          `json:"title"`
	ImageURLs     *[]string        `json:"imageUrls"`
	Platform      *models.Platform `json:"platform"`
	ScheduledDate *time.Time       `json:"scheduledDate"`
	Status        *models.Status   `json:"status"`
}

func (h *PostHandler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := planner.ValidatePost(req.Title, req.ImageURLs, req.Platform, req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	post, err := h.Posts.Create(ctx, models.Post{
		UserID:        userID,
		Title:         req.Title,
		ImageURLs:     req.ImageURLs,
		Platform:      req.Platform,
		ScheduledDate: req.ScheduledDate,
		Status:        req.Status,
	})
	if err != nil {
		log.Printf("CreatePost error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	posts, err := h.Posts.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("ListPosts error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}

	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Platform != nil && !req.Platform.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown platform"})
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	post, err := h.Posts.Update(ctx, userID, id, store.PostChange{
		Title:         req.Title,
		ImageURLs:     req.ImageURLs,
		Platform:      req.Platform,
		ScheduledDate: req.ScheduledDate,
		Status:        req.Status,
	})
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		log.Printf("UpdatePost error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	err := h.Posts.Delete(ctx, userID, id)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		log.Printf("DeletePost error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

type RescheduleRequest struct {
	// Target calendar day; the post keeps its original time-of-day.
	Date string `json:"date" binding:"required"`
}

// Reschedule is the drop half of drag-to-reschedule: move the post onto the
// target day, preserve the clock, persist through the update path.
func (h *PostHandler) Reschedule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	target, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be YYYY-MM-DD"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	post, err := h.Posts.Get(ctx, userID, id)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		log.Printf("Reschedule fetch error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}

	moved := calendar.Reschedule(post.ScheduledDate, target)
	updated, err := h.Posts.Update(ctx, userID, id, store.PostChange{ScheduledDate: &moved})
	if err != nil {
		log.Printf("Reschedule update error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reschedule post"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Calendar returns the month grid around ?month=YYYY-MM (default: current
// month) with the user's posts bucketed per day. Week and day views are
// accepted but render the month grid.
func (h *PostHandler) Calendar(c *gin.Context) {
	ref := time.Now()
	if month := c.Query("month"); month != "" {
		parsed, err := time.Parse("2006-01", month)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Month must be YYYY-MM"})
			return
		}
		ref = parsed
	}

	view := models.CalendarView(c.DefaultQuery("view", string(models.ViewMonth)))
	if !view.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown view"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	posts, err := h.Posts.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("Calendar error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	days := calendar.Bucket(calendar.MonthDays(ref), posts)
	c.JSON(http.StatusOK, gin.H{
		"month": ref.Format("2006-01"),
		"view":  view,
		"days":  days,
	})
}
