package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"tripdraft/internal/model"
	"tripdraft/pkg/search"

	"github.com/gin-gonic/gin"
)

const defaultMinimumLinks = 2

type GuideStore interface {
	SaveRequest(guide *model.Guide) error
	GetByID(id int64) (*model.Guide, error)
	GetVerdictByGuideID(guideID int64) (*model.GuideVerdict, error)
	GetFeed(limit, offset int) ([]model.Guide, error)
	GetFeedTotal() (int, error)
}

type GuideQueue interface {
	Push(guideID int64) error
}

type GuideHandler struct {
	repository GuideStore
	queue      GuideQueue
}

func NewGuideHandler(repository GuideStore, queue GuideQueue) *GuideHandler {
	return &GuideHandler{repository: repository, queue: queue}
}

func (h *GuideHandler) CreateGuide(c *gin.Context) {
	var req CreateGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic and subject are required"})
		return
	}

	freshness := req.Freshness
	if freshness == "" {
		freshness = search.DefaultWindow
	}
	if !search.KnownWindow(freshness) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown freshness window"})
		return
	}

	minimumLinks := defaultMinimumLinks
	if req.MinimumLinks != nil {
		if *req.MinimumLinks < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "minimum_links must not be negative"})
			return
		}
		minimumLinks = *req.MinimumLinks
	}

	guide := &model.Guide{
		Topic:        req.Topic,
		Subject:      req.Subject,
		Freshness:    freshness,
		MinimumLinks: minimumLinks,
		Status:       model.StatusPending,
	}

	if err := h.repository.SaveRequest(guide); err != nil {
		slog.Error("error saving guide request", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if err := h.queue.Push(guide.ID); err != nil {
		slog.Error("error queueing guide", "error", err, "guide_id", guide.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Queue error"})
		return
	}

	c.JSON(http.StatusAccepted, toGuideResponse(guide, nil))
}

func (h *GuideHandler) GetGuide(c *gin.Context) {
	id := c.Param("id")

	guideID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		slog.Error("invalid guide id", "id", id, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid guide id"})
		return
	}

	guide, err := h.repository.GetByID(guideID)
	if err != nil {
		slog.Error("error fetching guide", "error", err, "guide_id", guideID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if guide == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Guide not found"})
		return
	}

	var verdict *model.GuideVerdict
	if guide.Status == model.StatusCompleted {
		verdict, err = h.repository.GetVerdictByGuideID(guideID)
		if err != nil {
			slog.Error("error fetching verdict", "error", err, "guide_id", guideID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
	}

	c.JSON(http.StatusOK, toGuideResponse(guide, verdict))
}

func (h *GuideHandler) GetFeed(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	guides, err := h.repository.GetFeed(limit, offset)
	if err != nil {
		slog.Error("error fetching feed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetFeedTotal()
	if err != nil {
		slog.Error("error fetching feed total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	entries := make([]FeedEntryResponse, 0, len(guides))
	for _, g := range guides {
		entries = append(entries, FeedEntryResponse{
			ID:           g.ID,
			Topic:        g.Topic,
			Subject:      g.Subject,
			Freshness:    g.Freshness,
			MinimumLinks: g.MinimumLinks,
			Status:       g.Status,
			CreatedAt:    g.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, FeedResponse{
		Guides: entries,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

func (h *GuideHandler) GetHealth(c *gin.Context) {
	_, err := h.repository.GetFeedTotal()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func toGuideResponse(g *model.Guide, v *model.GuideVerdict) GuideResponse {
	res := GuideResponse{
		ID:           g.ID,
		Topic:        g.Topic,
		Subject:      g.Subject,
		Freshness:    g.Freshness,
		MinimumLinks: g.MinimumLinks,
		Status:       g.Status,
		Content:      g.Content,
		Sources:      g.Sources,
		ModelUsed:    g.ModelUsed,
		CreatedAt:    g.CreatedAt.Format(time.RFC3339),
	}
	if !g.CompletedAt.IsZero() {
		res.CompletedAt = g.CompletedAt.Format(time.RFC3339)
	}
	if v != nil {
		res.Verdict = &VerdictResponse{
			Passed:       v.Passed,
			Inconclusive: v.Inconclusive,
			Issues:       v.Issues,
			StyleValid:   v.StyleValid,
			StyleIssues:  v.StyleIssues,
		}
	}
	return res
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	paramLimit := c.Query(name)

	if paramLimit == "" {
		return defaultValue
	}

	parsedValue, err := strconv.Atoi(paramLimit)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", paramLimit, "error", err)
		return defaultValue
	}

	return parsedValue
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 10
		maxLimit     = 100
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}

func getQueryOffset(c *gin.Context) int {
	offset := getQueryInt("offset", 0, c)
	if offset < 0 {
		slog.Warn("invalid query parameter, using default", "param", "offset", "value", offset, "default", 0)
		return 0
	}
	return offset
}
