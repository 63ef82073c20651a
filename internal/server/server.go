package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/amberleaf/menuforge/internal/catalog"
	"github.com/amberleaf/menuforge/internal/models"
	"github.com/amberleaf/menuforge/internal/notify"
	"github.com/amberleaf/menuforge/internal/repositories"
	"github.com/amberleaf/menuforge/internal/speech"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Server serves the interactive menu API and the form submission
// endpoints. The catalog is loaded once and treated as immutable for
// the lifetime of the process; handlers only ever read it.
type Server struct {
	menus    []*models.Menu
	byVenue  map[string]*models.Menu
	entries  []catalog.Entry
	repo     repositories.SubmissionRepository
	notifier notify.Notifier
	speaker  *speech.Speaker
}

func New(menus []*models.Menu, repo repositories.SubmissionRepository, notifier notify.Notifier, speaker *speech.Speaker) *Server {
	byVenue := make(map[string]*models.Menu, len(menus))
	for _, m := range menus {
		byVenue[m.Venue] = m
	}
	return &Server{
		menus:    menus,
		byVenue:  byVenue,
		entries:  catalog.Flatten(menus...),
		repo:     repo,
		notifier: notifier,
		speaker:  speaker,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.Default()

	router.GET("/health", s.healthCheck)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/menus", s.listMenus)
		v1.GET("/menus/:venue", s.getMenu)
		v1.GET("/menus/:venue/categories/:name/html", s.getCategoryHTML)
		v1.GET("/items", s.queryItems)
		v1.POST("/speak", s.speak)

		forms := v1.Group("/forms")
		{
			forms.POST("/reservations", s.createReservation)
			forms.POST("/feedback", s.createFeedback)
			forms.POST("/contact", s.createContact)
			forms.POST("/careers", s.createCareer)
			forms.POST("/private-events", s.createEvent(models.SubmissionPrivateEvent))
			forms.POST("/banquets", s.createEvent(models.SubmissionBanquet))
		}
	}

	return router
}

// Run starts the HTTP server.
func (s *Server) Run(host string, port int) error {
	router := s.Router()
	addr := fmt.Sprintf("%s:%d", host, port)
	log.Infof("Starting server on %s", addr)
	return router.Run(addr)
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "menuforge",
	})
}
