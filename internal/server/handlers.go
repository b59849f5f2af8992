package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"matchsight/internal/analysis"
	"matchsight/internal/logging"
	"matchsight/internal/matches"
	"matchsight/internal/storage/sqlite"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleAnalyze runs the pipeline for one fixture. Status codes follow the
// failure class: 400 malformed input, 422 the model answered but failed
// validation, 502 the model could not be reached.
func (s *Server) handleAnalyze(c *gin.Context) {
	var req matches.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := s.service.Analyze(c.Request.Context(), &req)
	if err != nil {
		status, body := classifyAnalyzeError(err)
		c.JSON(status, body)
		return
	}

	profile := s.service.Registry().Resolve(req.Sport)
	c.JSON(http.StatusOK, gin.H{
		"sport":     profile.Key,
		"matchSlug": matches.Slug(&req),
		"result":    res,
	})
}

func classifyAnalyzeError(err error) (int, gin.H) {
	var fail *analysis.Failure
	if errors.As(err, &fail) {
		return http.StatusUnprocessableEntity, gin.H{
			"error":     "model response failed validation",
			"rule":      fail.Rule,
			"field":     fail.Field,
			"detail":    fail.Detail,
			"retryable": true,
		}
	}
	return http.StatusBadGateway, gin.H{"error": err.Error()}
}

// handleShare analyzes (or re-uses the cached analysis of) a fixture and
// issues a share slug pointing at the frozen result.
func (s *Server) handleShare(c *gin.Context) {
	if s.links == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "sharing is not configured"})
		return
	}
	var req matches.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := s.service.Analyze(c.Request.Context(), &req)
	if err != nil {
		status, body := classifyAnalyzeError(err)
		c.JSON(status, body)
		return
	}

	resultJSON, err := json.Marshal(res)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "encode result: " + err.Error()})
		return
	}

	now := time.Now().UTC()
	link := &sqlite.ShareLink{
		Slug:       matches.Slug(&req),
		Sport:      s.service.Registry().Resolve(req.Sport).Key,
		Home:       req.Home,
		Away:       req.Away,
		League:     req.League,
		MatchDate:  req.MatchDate,
		ResultJSON: string(resultJSON),
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.shareTTL),
	}
	if err := s.links.UpsertShareLink(c.Request.Context(), link); err != nil {
		logging.Errorf("[server] store share link %s: %v", link.Slug, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store share link"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"slug":      link.Slug,
		"expiresAt": link.ExpiresAt.Format(time.RFC3339),
	})
}

func (s *Server) handleGetShare(c *gin.Context) {
	if s.links == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "sharing is not configured"})
		return
	}
	slug := c.Param("slug")
	link, err := s.links.GetShareLink(c.Request.Context(), slug)
	if errors.Is(err, sqlite.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "share link not found"})
		return
	}
	if err != nil {
		logging.Errorf("[server] load share link %s: %v", slug, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load share link"})
		return
	}

	var res analysis.Result
	if err := json.Unmarshal([]byte(link.ResultJSON), &res); err != nil {
		logging.Errorf("[server] decode share link %s: %v", slug, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "decode share link"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"slug":      link.Slug,
		"sport":     link.Sport,
		"home":      link.Home,
		"away":      link.Away,
		"league":    link.League,
		"matchDate": link.MatchDate,
		"result":    res,
		"createdAt": link.CreatedAt.Format(time.RFC3339),
		"expiresAt": link.ExpiresAt.Format(time.RFC3339),
	})
}
