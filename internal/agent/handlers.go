package agent

import (
	"net/http"
	"strings"

	log "log/slog"

	"github.com/gin-gonic/gin"

	"jarvis/internal/slots"
	"jarvis/internal/state"
)

type textRequest struct {
	Text string `json:"text"`
}

type aliasRequest struct {
	Alias     string `json:"alias"`
	Canonical string `json:"canonical"`
}

// SetupRoutes registers the serving surface.
func SetupRoutes(r *gin.Engine, a *Agent, hub *Hub) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	r.POST("/nlu/extract", handleExtract)
	r.POST("/nlu/classify", handleClassify(a))
	r.POST("/agent/route", handleRoute(a, hub))

	r.GET("/agent/prefs", handleGetPrefs(a))
	r.POST("/agent/prefs", handleSetPrefs(a))
	r.POST("/agent/alias", handleUpsertAlias(a))
	r.GET("/agent/history", handleHistory(a))

	if hub != nil {
		r.GET("/debug/ws", hub.Serve)
	}
}

func handleExtract(c *gin.Context) {
	var req textRequest
	_ = c.ShouldBindJSON(&req)

	bag := slots.Extract(req.Text)
	confidence := 0.5
	if !bag.Empty() {
		confidence = 0.9
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "slots": bag, "confidence": confidence})
}

func handleClassify(a *Agent) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req textRequest
		_ = c.ShouldBindJSON(&req)

		m, ok := a.Classifier.Classify(req.Text)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"ok": true, "intent": nil, "score": 0.0})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "intent": m.Intent, "score": m.Score, "phrase": m.Phrase})
	}
}

func handleRoute(a *Agent, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req textRequest
		_ = c.ShouldBindJSON(&req)

		out := a.Route(req.Text)

		if hub != nil {
			hub.Broadcast(RouteEvent{
				Text:       req.Text,
				Plan:       out.Plan,
				Confidence: out.Confidence,
				Fallback:   out.Fallback,
			})
		}

		if out.Fallback != "" {
			log.Info("Routed", "text", req.Text, "fallback", out.Fallback)
			c.JSON(http.StatusOK, gin.H{"ok": true, "plan": nil, "fallback": out.Fallback})
			return
		}

		log.Info("Routed", "text", req.Text, "tool", out.Plan.Tool, "confidence", out.Confidence)
		c.JSON(http.StatusOK, gin.H{
			"ok":                 true,
			"plan":               out.Plan,
			"confidence":         out.Confidence,
			"needs_confirmation": out.NeedsConfirmation,
		})
	}
}

func handleGetPrefs(a *Agent) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "prefs": a.Store.Prefs()})
	}
}

// handleSetPrefs merges the request body over the current preferences, so
// absent fields keep their values. The alias table only changes through the
// single-alias upsert.
func handleSetPrefs(a *Agent) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := a.Store.Prefs()
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid_body"})
			return
		}
		a.Store.UpdatePrefs(p)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func handleUpsertAlias(a *Agent) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req aliasRequest
		_ = c.ShouldBindJSON(&req)

		alias := strings.ToLower(strings.TrimSpace(req.Alias))
		canonical := strings.ToLower(strings.TrimSpace(req.Canonical))
		if alias == "" || canonical == "" {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "alias_and_canonical_required"})
			return
		}

		a.Store.UpsertAlias(alias, canonical)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func handleHistory(a *Agent) gin.HandlerFunc {
	return func(c *gin.Context) {
		short := a.Store.ShortTerm()
		if short == nil {
			short = []state.Entry{}
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "shortTerm": short})
	}
}
