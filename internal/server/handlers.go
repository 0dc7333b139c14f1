package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"textlab/internal/domain"
)

type tokenizeRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode"`
}

type analyzeRequest struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

type perplexityRequest struct {
	TrainingText string `json:"training_text" binding:"required"`
	TestText     string `json:"test_text" binding:"required"`
}

type perplexityResponse struct {
	Perplexity float64 `json:"perplexity"`
	Details    string  `json:"details"`
}

type editDistanceRequest struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

type morphRequest struct {
	Word string `json:"word" binding:"required"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "textlab API is running",
	})
}

func (s *Server) handleTokenize(c *gin.Context) {
	var req tokenizeRequest
	if !s.bind(c, &req) {
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusOK, []string{})
		return
	}

	tokens, err := s.services.Text.Tokenize(c.Request.Context(), req.Text, req.Mode)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tokens)
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if !s.bind(c, &req) {
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusOK, []string{})
		return
	}

	ngrams, err := s.services.Text.NGrams(c.Request.Context(), req.Text, req.Type)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ngrams)
}

func (s *Server) handlePerplexity(c *gin.Context) {
	var req perplexityRequest
	if !s.bind(c, &req) {
		return
	}

	res, err := s.services.Perplexity.Evaluate(c.Request.Context(), req.TrainingText, req.TestText)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, perplexityResponse{
		Perplexity: res.Perplexity,
		Details:    res.Details,
	})
}

func (s *Server) handleEditDistance(c *gin.Context) {
	var req editDistanceRequest
	if !s.bind(c, &req) {
		return
	}

	res, err := s.services.EditDistance.Distance(c.Request.Context(), req.Source, req.Target)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleMorph(c *gin.Context) {
	var req morphRequest
	if !s.bind(c, &req) {
		return
	}

	res, err := s.services.Morph.Analyze(c.Request.Context(), req.Word)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// bind decodes the JSON body into req and answers 400 on failure.
func (s *Server) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "invalid request: " + err.Error()})
		return false
	}
	return true
}

func (s *Server) respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		c.AbortWithStatusJSON(status, errorResponse{Error: http.StatusText(status)})
		return
	}
	c.AbortWithStatusJSON(status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInsufficientData):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInputTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
