package server

import (
	"net/http"

	"github.com/amberleaf/menuforge/internal/catalog"
	"github.com/amberleaf/menuforge/internal/render"
	"github.com/amberleaf/menuforge/internal/speech"
	"github.com/gin-gonic/gin"
)

func (s *Server) listMenus(c *gin.Context) {
	type summary struct {
		Venue      string `json:"venue"`
		Name       string `json:"name"`
		Tagline    string `json:"tagline,omitempty"`
		Categories int    `json:"categories"`
		Items      int    `json:"items"`
	}

	summaries := make([]summary, 0, len(s.menus))
	for _, m := range s.menus {
		summaries = append(summaries, summary{
			Venue:      m.Venue,
			Name:       m.Name,
			Tagline:    m.Tagline,
			Categories: len(m.Categories),
			Items:      m.ItemCount(),
		})
	}
	c.JSON(http.StatusOK, summaries)
}

func (s *Server) getMenu(c *gin.Context) {
	menu, ok := s.byVenue[c.Param("venue")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown venue"})
		return
	}
	c.JSON(http.StatusOK, menu)
}

// queryItems applies the interactive filter. An empty result is a
// valid 200 response; the filtersApplied echo lets clients offer a
// reset affordance.
func (s *Server) queryItems(c *gin.Context) {
	var filter catalog.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter parameters"})
		return
	}

	matched := filter.Apply(s.entries)
	c.JSON(http.StatusOK, gin.H{
		"items":          matched,
		"count":          len(matched),
		"filtersApplied": filter,
	})
}

// getCategoryHTML returns the rendered category fragment, items in
// dietary-grouped order, for embedding in the site.
func (s *Server) getCategoryHTML(c *gin.Context) {
	menu, ok := s.byVenue[c.Param("venue")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown venue"})
		return
	}
	cat := menu.FindCategory(c.Param("name"))
	if cat == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown category"})
		return
	}

	fragment, err := render.Category(*cat)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render category"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(fragment))
}

type speakRequest struct {
	Text string `json:"text" binding:"required"`
	Rate int    `json:"rate" binding:"omitempty,min=80,max=450"`
}

// speak starts a new utterance; any active one is cancelled first.
func (s *Server) speak(c *gin.Context) {
	var req speakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	s.speaker.Speak(speech.Utterance{Text: req.Text, Rate: req.Rate})
	c.JSON(http.StatusAccepted, gin.H{"speaking": true})
}
