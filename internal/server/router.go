// Package server wires the scoring engine, interaction lookup, and keyword
// responder behind a gin router for the dashboard frontend.
package server

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Skufu/adeshield/internal/chat"
	"github.com/Skufu/adeshield/internal/interaction"
	"github.com/Skufu/adeshield/internal/risk"
)

// HealthChecker is the readiness probe surface of the optional database pool.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// ScoreReport carries all four domain scores for one record.
type ScoreReport struct {
	BleedingRisk     int `json:"bleedingRisk"`
	HypoglycemiaRisk int `json:"hypoglycemiaRisk"`
	AKIRisk          int `json:"akiRisk"`
	ComorbidityLoad  int `json:"comorbidityLoad"`
}

// New builds the router. defaults seeds absent fields on manual scoring
// requests and is exposed to the frontend for widget pre-population.
func New(logger zerolog.Logger, db HealthChecker, defaults risk.Defaults, staticRoot string) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(logger),
		limitBodySize(1<<20), // 1MB max body
		cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
			MaxAge:       12 * time.Hour,
		}),
	)

	// Serve the dashboard frontend from the repository root.
	router.Static("/static", staticRoot)
	router.StaticFile("/", filepath.Join(staticRoot, "index.html"))
	router.StaticFile("/styles.css", filepath.Join(staticRoot, "styles.css"))
	router.StaticFile("/app.js", filepath.Join(staticRoot, "app.js"))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/readyz", readyz(db))

	api := router.Group("/api")
	api.GET("/defaults", func(c *gin.Context) {
		c.JSON(http.StatusOK, defaults)
	})
	api.POST("/risk/score", scoreHandler(defaults))
	api.POST("/risk/alert", alertHandler(defaults))
	api.POST("/risk/bulk", bulkHandler(logger))
	api.POST("/interactions/check", interactionHandler)
	api.POST("/chat", chatHandler)

	return router
}

func readyz(db HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "disabled"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "degraded",
				"db":     fmt.Sprintf("unhealthy: %v", err),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "ok"})
	}
}

func scoreHandler(defaults risk.Defaults) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Absent fields keep their defaults; binding only overwrites what the
		// payload actually carries.
		rec := defaults.Record()
		if err := c.ShouldBindJSON(&rec); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}

		c.JSON(http.StatusOK, ScoreReport{
			BleedingRisk:     risk.BleedingScore(rec),
			HypoglycemiaRisk: risk.HypoglycemiaScore(rec),
			AKIRisk:          risk.AKIScore(rec),
			ComorbidityLoad:  risk.ComorbidityLoad(rec),
		})
	}
}

func alertHandler(defaults risk.Defaults) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload := struct {
			Domain string             `json:"domain"`
			Record risk.PatientRecord `json:"record"`
		}{Record: defaults.Record()}

		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}

		alert := risk.ComposeAlert(risk.ParseDomain(payload.Domain), payload.Record)
		c.JSON(http.StatusOK, alert)
	}
}

func bulkHandler(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, header, err := c.Request.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing CSV file"})
			return
		}
		defer file.Close()

		table, err := readTable(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unreadable CSV: %v", err)})
			return
		}

		result := risk.ScoreTable(table)
		logger.Info().
			Str("file", header.Filename).
			Int("rows", len(result.Table.Rows)).
			Int("flagged_cells", len(result.Flags)).
			Msg("bulk scoring complete")

		c.JSON(http.StatusOK, result)
	}
}

func interactionHandler(c *gin.Context) {
	var payload struct {
		DrugA string `json:"drugA"`
		DrugB string `json:"drugB"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	c.JSON(http.StatusOK, interaction.Check(payload.DrugA, payload.DrugB))
}

func chatHandler(c *gin.Context) {
	var payload struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": chat.Respond(payload.Message)})
}

func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
