package handlers

import (
	"net/http"

	"nexus/api/middleware"
	"nexus/db"
	"nexus/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type PostHandler struct {
	store *db.Store
}

func NewPostHandler(store *db.Store) *PostHandler {
	return &PostHandler{store: store}
}

// List returns the feed newest-first. An optional ?type= query narrows it
// to one post type; no matches is an empty array, not an error.
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.store.ListPosts(c.Request.Context(), c.Query("type"))
	if err != nil {
		logrus.WithError(err).Error("failed to list posts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

type CreatePostRequest struct {
	UserID  int64   `json:"user_id" binding:"required"`
	Content string  `json:"content" binding:"required"`
	Image   *string `json:"image"`
	Type    string  `json:"type"`
}

// Create inserts a new post and returns its assigned id. An absent or
// empty type falls back to "social".
func (h *PostHandler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Type == "" {
		req.Type = string(models.SOCIAL)
	}

	post := &models.Post{
		UserID:  req.UserID,
		Content: req.Content,
		Image:   req.Image,
		Type:    models.PostType(req.Type),
	}
	if err := h.store.CreatePost(c.Request.Context(), post); err != nil {
		logrus.WithError(err).Error("failed to create post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	middleware.RecordPostCreated(req.Type)
	c.JSON(http.StatusOK, gin.H{"id": post.ID})
}
