// Package server exposes the compressor over a small REST API: a squeeze
// endpoint, a version endpoint, and a metrics snapshot endpoint. Routing and
// error shapes follow the gin.New()+gin.Recovery() pattern used throughout
// this codebase's API servers.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contextsqueeze/internal/config"
	"contextsqueeze/internal/metrics"
	"contextsqueeze/internal/tokencount"
	"contextsqueeze/pkg/squeeze"
)

// Server holds the dependencies shared across HTTP handlers.
type Server struct {
	cfg *config.Config
}

// New constructs a Server bound to cfg.
func New(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Router builds the gin engine and registers all routes.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	v1 := router.Group("/v1")
	{
		v1.POST("/squeeze", s.handleSqueeze)
		v1.GET("/version", s.handleVersion)
		v1.GET("/metrics", s.handleMetrics)
	}
	return router
}

// squeezeRequest is the request body for POST /v1/squeeze.
type squeezeRequest struct {
	Text           string `json:"text" binding:"required"`
	Aggressiveness *int   `json:"aggressiveness"`
}

// squeezeResponse is the response body for POST /v1/squeeze.
type squeezeResponse struct {
	Output         string  `json:"output"`
	InputBytes     int     `json:"input_bytes"`
	OutputBytes    int     `json:"output_bytes"`
	Ratio          float64 `json:"ratio"`
	TokensBefore   int     `json:"tokens_before"`
	TokensAfter    int     `json:"tokens_after"`
	Aggressiveness int     `json:"aggressiveness"`
}

func (s *Server) handleSqueeze(c *gin.Context) {
	var req squeezeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	aggressiveness := s.cfg.DefaultAggressiveness
	if req.Aggressiveness != nil {
		aggressiveness = *req.Aggressiveness
	}

	input := []byte(req.Text)
	out, err := squeeze.SqueezeEx(input, aggressiveness)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ratio := 1.0
	if len(input) > 0 {
		ratio = float64(len(out)) / float64(len(input))
	}

	c.JSON(http.StatusOK, squeezeResponse{
		Output:         string(out),
		InputBytes:     len(input),
		OutputBytes:    len(out),
		Ratio:          ratio,
		TokensBefore:   tokencount.Estimate(input, s.cfg.TokenEncoding),
		TokensAfter:    tokencount.Estimate(out, s.cfg.TokenEncoding),
		Aggressiveness: aggressiveness,
	})
}

func (s *Server) handleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": squeeze.Version()})
}

func (s *Server) handleMetrics(c *gin.Context) {
	snap := metrics.Get()
	c.JSON(http.StatusOK, gin.H{
		"tokens_parsed":                snap.TokensParsed,
		"sentences_total":              snap.SentencesTotal,
		"similarity_candidates_checked": snap.SimilarityCandidatesChecked,
		"similarity_pairs_compared":    snap.SimilarityPairsCompared,
	})
}
