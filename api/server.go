package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/Truthmedia123/newapp12345/cache"
	"github.com/Truthmedia123/newapp12345/config"
	apperr "github.com/Truthmedia123/newapp12345/errors"
	"github.com/Truthmedia123/newapp12345/metrics"
	"github.com/Truthmedia123/newapp12345/models"
	"github.com/Truthmedia123/newapp12345/service"
)

// Server represents the HTTP server and API handler
type Server struct {
	router         *gin.Engine
	db             *gorm.DB
	config         *config.Config
	cacheStore     *cache.Store
	requestMetrics *metrics.RequestMetrics
	vendorService  service.VendorServiceInterface
	searchService  service.SearchServiceInterface
	blogService    service.BlogServiceInterface
	rsvpService    service.RSVPServiceInterface
}

// NewServer creates and configures a new HTTP server
func NewServer(
	db *gorm.DB,
	config *config.Config,
	cacheStore *cache.Store,
	vendorService service.VendorServiceInterface,
	searchService service.SearchServiceInterface,
	blogService service.BlogServiceInterface,
	rsvpService service.RSVPServiceInterface,
) *Server {
	router := gin.Default()

	server := &Server{
		router:         router,
		db:             db,
		config:         config,
		cacheStore:     cacheStore,
		requestMetrics: metrics.NewRequestMetrics(),
		vendorService:  vendorService,
		searchService:  searchService,
		blogService:    blogService,
		rsvpService:    rsvpService,
	}

	registerValidators()
	router.Use(server.requestTimer())
	server.setupRoutes()
	return server
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// validateSlug enforces URL-safe vendor and post slugs
func validateSlug(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("slug", validateSlug); err != nil {
			slog.Warn("Failed to register slug validator", "error", err)
		}
	}
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/vendors", s.listVendors)
		api.GET("/vendors/featured", s.getFeaturedVendors)
		api.GET("/vendors/:id", s.getVendor)
		api.POST("/vendors", s.createVendor)
		api.PUT("/vendors/:id", s.updateVendor)
		api.DELETE("/vendors/:id", s.deleteVendor)

		api.GET("/search", s.search)

		api.GET("/blog", s.listBlogPosts)
		api.GET("/blog/:slug", s.getBlogPost)

		api.GET("/invites/:token", s.getInvite)
		api.POST("/rsvp/:token", s.submitRSVP)
		api.GET("/rsvp/:token", s.listRSVPs)

		api.GET("/health", s.healthCheck)
		api.GET("/stats", s.getStats)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.ServeStaticFiles()
}

// Start begins the HTTP server
func (s *Server) Start() error {
	return s.router.Run(fmt.Sprintf(":%d", s.config.Server.Port))
}

// GetRouter returns the router for testing purposes
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

func (s *Server) listVendors(c *gin.Context) {
	var filters models.VendorFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		s.handleError(c, apperr.NewValidationError("invalid filter parameters"))
		return
	}

	slog.Debug("Listing vendors", "category", filters.Category, "location", filters.Location)
	vendors, err := s.vendorService.ListVendors(filters)
	if err != nil {
		slog.Error("Vendor listing error", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vendors": vendors, "count": len(vendors)})
}

func (s *Server) getFeaturedVendors(c *gin.Context) {
	vendors, err := s.vendorService.GetFeatured()
	if err != nil {
		slog.Error("Featured vendors error", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vendors": vendors, "count": len(vendors)})
}

func (s *Server) getVendor(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	slog.Debug("Getting vendor", "id", id)
	vendor, err := s.vendorService.GetVendor(id)
	if err != nil {
		slog.Error("Vendor lookup error", "error", err, "id", id)
		s.handleError(c, err)
		return
	}

	views := s.vendorService.RecordProfileView(id)
	c.JSON(http.StatusOK, gin.H{"vendor": vendor, "views": views})
}

func (s *Server) createVendor(c *gin.Context) {
	var req models.VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, apperr.NewValidationError("invalid request format"))
		return
	}

	vendor, err := s.vendorService.CreateVendor(&req)
	if err != nil {
		slog.Error("Vendor creation error", "error", err, "slug", req.Slug)
		s.handleError(c, err)
		return
	}

	slog.Debug("Vendor created", "id", vendor.ID, "slug", vendor.Slug)
	c.JSON(http.StatusCreated, vendor)
}

func (s *Server) updateVendor(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	var req models.VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, apperr.NewValidationError("invalid request format"))
		return
	}

	vendor, err := s.vendorService.UpdateVendor(id, &req)
	if err != nil {
		slog.Error("Vendor update error", "error", err, "id", id)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, vendor)
}

func (s *Server) deleteVendor(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	if err := s.vendorService.DeleteVendor(id); err != nil {
		slog.Error("Vendor deletion error", "error", err, "id", id)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vendor deleted successfully"})
}

func (s *Server) search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		s.handleError(c, apperr.NewValidationError("q parameter is required"))
		return
	}

	var filters models.VendorFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		s.handleError(c, apperr.NewValidationError("invalid filter parameters"))
		return
	}

	slog.Debug("Searching vendors", "query", query)
	results, err := s.searchService.Search(query, filters)
	if err != nil {
		slog.Error("Search error", "error", err, "query", query)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}

func (s *Server) listBlogPosts(c *gin.Context) {
	posts, err := s.blogService.ListPosts()
	if err != nil {
		slog.Error("Blog listing error", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts)})
}

func (s *Server) getBlogPost(c *gin.Context) {
	slug := c.Param("slug")

	post, err := s.blogService.GetPost(slug)
	if err != nil {
		slog.Error("Blog post lookup error", "error", err, "slug", slug)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (s *Server) getInvite(c *gin.Context) {
	token := c.Param("token")

	slog.Debug("Looking up invite", "token", token)
	invite, err := s.rsvpService.GetInvite(token)
	if err != nil {
		slog.Error("Invite lookup error", "error", err, "token", token)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, invite)
}

func (s *Server) submitRSVP(c *gin.Context) {
	token := c.Param("token")

	var req models.RSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, apperr.NewValidationError("invalid request format"))
		return
	}

	if err := s.rsvpService.SubmitRSVP(token, &req); err != nil {
		slog.Error("RSVP submission error", "error", err, "token", token)
		s.handleError(c, err)
		return
	}

	slog.Debug("RSVP recorded", "token", token, "guest", req.GuestName)
	c.JSON(http.StatusOK, gin.H{"message": "RSVP recorded successfully"})
}

func (s *Server) listRSVPs(c *gin.Context) {
	token := c.Param("token")

	responses, err := s.rsvpService.ListResponses(token)
	if err != nil {
		slog.Error("RSVP listing error", "error", err, "token", token)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"responses": responses, "count": len(responses)})
}

func (s *Server) healthCheck(c *gin.Context) {
	sqlDB, err := s.db.DB()
	dbHealthy := err == nil
	if dbHealthy {
		dbHealthy = sqlDB.Ping() == nil
	}

	cacheHealth := s.cacheStore.HealthCheck()

	status := http.StatusOK
	overall := "healthy"
	if !dbHealthy || cacheHealth.Status != "healthy" {
		status = http.StatusServiceUnavailable
		overall = "unhealthy"
	}

	c.JSON(status, gin.H{
		"status": overall,
		"database": gin.H{
			"connected": dbHealthy,
		},
		"cache": cacheHealth,
	})
}

func (s *Server) getStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"cache":    s.cacheStore.Stats(),
		"requests": s.requestMetrics.GetStats(),
	})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, apperr.NewValidationError("id must be a positive integer")
	}
	return uint(id), nil
}

// handleError handles different types of application errors
func (s *Server) handleError(c *gin.Context, err error) {
	var appErr *apperr.AppError
	var statusCode int
	var message string

	if errors.As(err, &appErr) {
		switch appErr.Type {
		case apperr.ValidationError:
			statusCode = http.StatusBadRequest
			message = appErr.Message
		case apperr.NotFoundError:
			statusCode = http.StatusNotFound
			message = appErr.Message
		case apperr.AlreadyExistsError:
			statusCode = http.StatusConflict
			message = appErr.Message
		case apperr.TokenError:
			statusCode = http.StatusBadRequest
			message = appErr.Message
		case apperr.DatabaseError:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		case apperr.CacheError:
			statusCode = http.StatusServiceUnavailable
			message = "Cache unavailable"
		default:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		}
	} else {
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	c.JSON(statusCode, models.ErrorResponse{Error: message})
}
