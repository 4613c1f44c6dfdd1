package server

import (
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Skufu/vitalcheck/internal/store"
)

type Options struct {
	CORSOrigins  []string
	MaxBodyBytes int64
	// StaticDir, when it holds an index.html, is served at "/" and the API
	// info moves to /api.
	StaticDir string
}

func NewRouter(records store.RecordStore, logger zerolog.Logger, opts Options) *gin.Engine {
	useJSONFieldNames()

	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1 << 20
	}

	router := gin.New()
	router.Use(
		recovery(logger),
		requestID(),
		requestLogger(logger),
		limitBodySize(opts.MaxBodyBytes),
		cors.New(corsConfig(opts.CORSOrigins)),
	)

	h := &handler{records: records, logger: logger}

	if index, ok := staticIndex(opts.StaticDir); ok {
		router.Static("/static", opts.StaticDir)
		router.StaticFile("/", index)
		router.GET("/api", h.info)
	} else {
		router.GET("/", h.info)
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/readyz", h.ready)

	router.POST("/patient/data", h.submitPatientData)
	router.POST("/predict/risk", h.predictRisk)
	router.POST("/lab/analyze", h.analyzeLabs)
	router.GET("/lab/reference-ranges", h.referenceRanges)
	router.POST("/predict/disease", h.predictDisease)
	router.GET("/symptoms", h.symptoms)
	router.GET("/doctors", h.listDoctors)
	router.POST("/consult/start", h.startConsultation)

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func staticIndex(dir string) (string, bool) {
	if dir == "" {
		return "", false
	}
	index := filepath.Join(dir, "index.html")
	info, err := os.Stat(index)
	if err != nil || info.IsDir() {
		return "", false
	}
	return index, true
}
