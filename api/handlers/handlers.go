package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/echolytics/persona-engine/ai"
	"github.com/echolytics/persona-engine/analyzer"
	"github.com/echolytics/persona-engine/communication"
	"github.com/echolytics/persona-engine/core"
	"github.com/echolytics/persona-engine/messaging"
	"github.com/echolytics/persona-engine/storage"
)

// Handler carries the collaborators the persona endpoints need. Messenger and
// Store may be nil; the endpoints degrade to analysis-only behavior.
type Handler struct {
	Provider  analyzer.ActivityProvider
	Store     storage.Store
	Messenger *messaging.Messenger

	// EnrichNarrative toggles the LLM narrative on generated personas.
	EnrichNarrative bool
	// LookupWebPresence toggles the web search enrichment in the response.
	LookupWebPresence bool
}

// NewHandler creates a Handler with the given collaborators.
func NewHandler(provider analyzer.ActivityProvider, store storage.Store, messenger *messaging.Messenger) *Handler {
	return &Handler{
		Provider:  provider,
		Store:     store,
		Messenger: messenger,
	}
}

type generateRequest struct {
	ProfileURL string `json:"profileUrl" binding:"required"`
}

type generateResponse struct {
	Persona     *core.Persona     `json:"persona"`
	WebPresence []ai.SearchResult `json:"webPresence,omitempty"`
	Cached      bool              `json:"cached"`
}

// GeneratePersona runs the full analysis pipeline for a profile URL.
func (h *Handler) GeneratePersona(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "profileUrl is required"})
		return
	}

	username, err := core.ParseProfileURL(req.ProfileURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Serve from cache unless the client forces a refresh.
	refresh := c.DefaultQuery("refresh", "false") == "true"
	if h.Store != nil && !refresh {
		if cached, err := h.Store.GetPersona(username); err == nil {
			c.JSON(http.StatusOK, generateResponse{Persona: cached, Cached: true})
			return
		}
	}

	communication.BroadcastEvent(communication.EventAnalysisStarted, gin.H{"username": username})

	persona, err := analyzer.Generate(c.Request.Context(), h.Provider, req.ProfileURL)
	if err != nil {
		communication.BroadcastEvent(communication.EventAnalysisFailed, gin.H{
			"username": username,
			"error":    err.Error(),
		})
		if h.Messenger != nil {
			h.Messenger.PublishAnalysisFailed(req.ProfileURL, err)
		}
		status := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidProfileURL) || errors.Is(err, core.ErrMalformedRecord) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	communication.BroadcastEvent(communication.EventRecordFetched, gin.H{
		"username":      username,
		"totalPosts":    persona.Metadata.TotalPosts,
		"totalComments": persona.Metadata.TotalComments,
	})

	if h.EnrichNarrative {
		persona.Narrative = ai.GenerateNarrative(c.Request.Context(), persona)
	}

	resp := generateResponse{Persona: persona}
	if h.LookupWebPresence {
		results, err := ai.LookupWebPresence(username)
		if err != nil {
			log.Printf("Web presence lookup failed for %s: %v", username, err)
		} else {
			resp.WebPresence = results
		}
	}

	if h.Store != nil {
		if err := h.Store.SavePersona(persona); err != nil {
			log.Printf("Failed to cache persona for %s: %v", username, err)
		}
	}
	if h.Messenger != nil {
		if err := h.Messenger.PublishPersonaGenerated(persona); err != nil {
			log.Printf("Failed to publish persona event for %s: %v", username, err)
		}
	}
	communication.BroadcastEvent(communication.EventPersonaGenerated, persona)

	c.JSON(http.StatusOK, resp)
}

// GetPersona returns a cached persona by username.
func (h *Handler) GetPersona(c *gin.Context) {
	if h.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "persona cache disabled"})
		return
	}

	username := c.Param("username")
	persona, err := h.Store.GetPersona(username)
	if errors.Is(err, core.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Persona not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"persona": persona})
}

// ListPersonas returns the usernames with cached personas.
func (h *Handler) ListPersonas(c *gin.Context) {
	if h.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "persona cache disabled"})
		return
	}

	usernames, err := h.Store.ListPersonas()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"personas": usernames})
}

// DeletePersona evicts a cached persona.
func (h *Handler) DeletePersona(c *gin.Context) {
	if h.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "persona cache disabled"})
		return
	}

	username := c.Param("username")
	if err := h.Store.DeletePersona(username); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Persona deleted"})
}

// Health is the liveness endpoint.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
