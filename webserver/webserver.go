// Package webserver exposes the fund contract over HTTP.
package webserver

import (
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"community_fund/contract"
)

// Options configures New.
type Options struct {
	JWTSecret   []byte
	CORSOrigins []string
	// Gatherer backs GET /metrics; nil disables the route.
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

type Server struct {
	fund      *contract.Contract
	sanitizer *bluemonday.Policy
	logger    *slog.Logger
}

// New builds the gin engine with every route attached.
func New(fund *contract.Contract, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		fund:      fund,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger,
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.accessLog())
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/healthz", func(c *gin.Context) { render(c, http.StatusOK, HealthResponse{Status: "ok"}) })
	if opts.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := r.Group("/v1")
	{
		v1.GET("/profile/:owner", s.getProfile)
		v1.GET("/owners", s.listOwners)
		v1.GET("/proposals/:owner", s.listProposals)
		v1.GET("/proposals/:owner/:id", s.getProposal)
		v1.GET("/proposals/:owner/:id/votes", s.listVotes)
		v1.GET("/admins", s.getAdmins)
		v1.GET("/vault", s.getVault)

		secured := v1.Group("")
		secured.Use(JWTMiddleware(opts.JWTSecret))
		secured.POST("/profile", s.initProfile)
		secured.POST("/proposals", s.createProposal)
		secured.PUT("/proposals/:owner/:id", s.updateProposal)
		secured.POST("/proposals/:owner/:id/votes", s.vote)
		secured.POST("/proposals/:owner/:id/approve", s.approve)
		secured.POST("/proposals/:owner/:id/reject", s.reject)
		secured.POST("/proposals/:owner/:id/finalize", s.finalize)
		secured.POST("/claims/:id", s.claim)
		secured.POST("/admin/init", s.initAdmins)
		secured.POST("/admin/transfer", s.transferAdmin)
		secured.POST("/vault/init", s.initVault)
		secured.POST("/vault/deposit", s.deposit)
	}
	return r
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("http request",
			slog.String("method", c.Request.Method),
			slog.String("route", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("took", time.Since(start)),
		)
	}
}

// plainText rejects user supplied text the strict policy would alter, so what
// gets stored is exactly what the caller sent. Entities are decoded before the
// comparison so plain text such as "R&D < budget" passes.
func (s *Server) plainText(field, text string) error {
	if html.UnescapeString(s.sanitizer.Sanitize(text)) != text {
		return fmt.Errorf("%w: %s must not contain markup", contract.ErrValidation, field)
	}
	return nil
}
