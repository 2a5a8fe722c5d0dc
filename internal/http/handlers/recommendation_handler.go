// README: Recommendation endpoints: create, list, get.
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"trailhead/internal/modules/recommendation"
)

type RecommendationHandler struct {
	svc *recommendation.Service
}

func NewRecommendationHandler(svc *recommendation.Service) *RecommendationHandler {
	return &RecommendationHandler{svc: svc}
}

// Create handles POST /api/recommend. Preferences arrive as form fields or a
// JSON body; the full record comes back as JSON.
func (h *RecommendationHandler) Create(c *gin.Context) {
	var req recommendation.PreferenceRequest
	if err := c.ShouldBind(&req); err != nil {
		writeError(c, http.StatusBadRequest, "malformed request body")
		return
	}

	rec, err := h.svc.Recommend(c.Request.Context(), req)
	switch {
	case errors.Is(err, recommendation.ErrNotRecorded):
		// The recommendation exists but history was not written; return the
		// content with the error so nothing generated is lost.
		writeJSON(c, http.StatusInternalServerError, gin.H{
			"error":  err.Error(),
			"record": rec,
		})
	case err != nil:
		writeRecommendationError(c, err)
	default:
		writeJSON(c, http.StatusCreated, rec)
	}
}

// summary is the list-view projection of a record.
type summary struct {
	ID            string    `json:"id"`
	Interests     string    `json:"interests"`
	Duration      string    `json:"duration"`
	Season        string    `json:"season"`
	ActivityLevel string    `json:"activity_level"`
	Succeeded     bool      `json:"succeeded"`
	Preview       string    `json:"preview"`
	CreatedAt     time.Time `json:"created_at"`
}

const previewLen = 200

// List handles GET /api/recommendations.
func (h *RecommendationHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	records, err := h.svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		writeRecommendationError(c, err)
		return
	}

	summaries := make([]summary, 0, len(records))
	for _, rec := range records {
		preview := rec.GeneratedText
		if len(preview) > previewLen {
			preview = preview[:previewLen]
		}
		summaries = append(summaries, summary{
			ID:            rec.ID,
			Interests:     rec.Request.Interests,
			Duration:      rec.Request.Duration,
			Season:        rec.Request.Season,
			ActivityLevel: rec.Request.ActivityLevel,
			Succeeded:     rec.Succeeded,
			Preview:       preview,
			CreatedAt:     rec.CreatedAt,
		})
	}
	writeJSON(c, http.StatusOK, gin.H{"recommendations": summaries})
}

// Get handles GET /api/recommendations/:id.
func (h *RecommendationHandler) Get(c *gin.Context) {
	rec, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeRecommendationError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, rec)
}
