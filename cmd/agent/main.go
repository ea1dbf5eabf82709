// cmd/agent/main.go
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/watchpost/watchpost/internal/agent"
	"github.com/watchpost/watchpost/internal/config"
)

func main() {
	if err := config.LoadConfig(); err != nil {
		log.New(os.Stderr).Fatalf("Failed to load configuration: %v", err)
	}

	log.SetOutput(os.Stderr)
	log.SetTimeFormat("2006-01-02 15:04:05")

	switch strings.ToLower(config.AppConfig.LogLevel) {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	case "fatal":
		log.SetLevel(log.FatalLevel)
	default:
		log.Warnf("Invalid LOG_LEVEL '%s' specified in config, defaulting to 'info'", config.AppConfig.LogLevel)
		log.SetLevel(log.InfoLevel)
	}

	if strings.ToLower(config.AppConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else if strings.ToLower(config.AppConfig.GinMode) == "test" {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.Default()
	agent.SetupRoutes(router, agent.NewHandlers(agent.NewCollector(0)))

	listenAddr := fmt.Sprintf(":%s", config.AppConfig.AgentPort)
	log.Infof("Agent serving usage on http://0.0.0.0%s/usage", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatalf("Failed to start agent: %v", err)
	}
}
