package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spendwise/backend/internal/config"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/reports"
	"github.com/spendwise/backend/internal/router"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	apiURL, err := cfg.APIURL()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Create the directory for the sqlite database
	err = os.MkdirAll(filepath.Dir(cfg.DB.Path), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database and migrate the schema
	err = models.Connect(cfg.DB.Path)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config(apiURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	store := models.Store{DB: models.DB}
	svc := reports.NewService(store, store, store, nil)

	router.AttachRoutes(svc, r.Group(""))

	if err := r.Run(fmt.Sprintf(":%d", cfg.App.Port)); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
