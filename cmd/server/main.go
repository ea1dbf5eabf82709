// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	_ "github.com/watchpost/watchpost/docs" // swagger docs
	"github.com/watchpost/watchpost/internal/alert"
	"github.com/watchpost/watchpost/internal/api"
	"github.com/watchpost/watchpost/internal/config"
	"github.com/watchpost/watchpost/internal/history"
	"github.com/watchpost/watchpost/internal/poller"
	"github.com/watchpost/watchpost/internal/probe"
	"github.com/watchpost/watchpost/internal/registry"
	"github.com/watchpost/watchpost/internal/snapshot"
	"github.com/watchpost/watchpost/internal/templates"
)

// version is set at build time via -ldflags.
var version = "dev"

// @title Watchpost API
// @version 1.0
// @description Central collector for a fleet of endpoints. Polls metrics sources and HTTP probes on a fixed cycle, reduces usage readings to red/green statuses and serves the latest snapshot together with a live dashboard.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://swagger.io/support/
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @schemes http https
func main() {
	// --- Load configuration First ---
	if err := config.LoadConfig(); err != nil {
		// Use a basic logger here as the configured one isn't ready yet
		log.New(os.Stderr).Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize Logger Based on Config ---
	log.SetOutput(os.Stderr)
	log.SetTimeFormat("2006-01-02 15:04:05")

	// Set log level from config
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

	log.Infof("Configuration loaded successfully. Log level set to '%s'.", config.AppConfig.LogLevel)

	// --- Log Loaded Configuration Details (using the configured logger) ---
	log.Debugf("API Port: %s", config.AppConfig.APIPort)
	log.Debugf("Poll Interval: %s", config.AppConfig.PollInterval)
	log.Debugf("Probe Timeout: %s", config.AppConfig.ProbeTimeout)
	log.Debugf("Max Inflight Probes: %d", config.AppConfig.MaxInflightProbes)
	log.Debugf("Endpoints File: %s", config.AppConfig.EndpointsFile)
	log.Debugf("TLS Enabled: %t", config.AppConfig.TLSEnable)
	if config.AppConfig.TLSEnable {
		log.Debugf("TLS Cert File: %s", config.AppConfig.TLSCertFile)
		log.Debugf("TLS Key File: %s", config.AppConfig.TLSKeyFile)
	}
	if config.AppConfig.SlackAlert && config.AppConfig.SlackWebhook == "" {
		log.Warn("SLACK_ALERT is enabled but SLACK_WEBHOOK is empty. Alerts will not be delivered.")
	}

	// --- Initialize Gin router ---
	if strings.ToLower(config.AppConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else if strings.ToLower(config.AppConfig.GinMode) == "test" {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	log.Infof("Gin running in '%s' mode", config.AppConfig.GinMode)

	router := gin.Default()

	// Configure trusted proxies
	if config.AppConfig.TrustedProxies == "nil" {
		// Explicitly disable proxy trust
		log.Info("Proxy trust disabled (TRUSTED_PROXIES=nil)")
		router.SetTrustedProxies(nil)
	} else if config.AppConfig.TrustedProxies != "" {
		// Set specific trusted proxies
		proxyList := strings.Split(config.AppConfig.TrustedProxies, ",")
		for i, proxy := range proxyList {
			proxyList[i] = strings.TrimSpace(proxy)
		}
		log.Infof("Setting trusted proxies: %v", proxyList)
		router.SetTrustedProxies(proxyList)
	} else {
		log.Warn("All proxies are trusted (default). Set TRUSTED_PROXIES=nil to disable proxy trust or provide a comma-separated list of trusted proxy IPs.")
	}

	// --- Build the poll engine ---
	reg, err := registry.Load(config.AppConfig.EndpointsFile)
	if err != nil {
		log.Fatalf("Failed to load endpoint registry from '%s': %v", config.AppConfig.EndpointsFile, err)
	}
	log.Infof("Loaded %d endpoint(s) from '%s'", len(reg.List()), config.AppConfig.EndpointsFile)

	store := snapshot.NewStore()
	book := history.NewBook(config.AppConfig.HistoryCapacity)
	client := probe.NewHTTPClient(config.AppConfig.ProbeTimeout)
	notifier := alert.NewFromConfig(config.AppConfig.SlackAlert, config.AppConfig.SlackWebhook)
	if notifier == nil {
		log.Info("Slack alerting disabled")
	}

	scheduler := poller.NewScheduler(poller.Options{
		Source:      reg,
		Client:      client,
		History:     book,
		Store:       store,
		Notifier:    notifier,
		Interval:    config.AppConfig.PollInterval,
		MaxInflight: config.AppConfig.MaxInflightProbes,
		Location:    config.AppConfig.TimeLocation(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go scheduler.Run(ctx)

	// --- Setup routes ---
	if err := templates.Load(router); err != nil {
		log.Fatalf("Failed to load embedded templates: %v", err)
	}
	api.SetupRoutes(router, api.NewHandlers(reg, store, version))

	// --- Start the server ---
	listenAddr := fmt.Sprintf(":%s", config.AppConfig.APIPort)
	serverBaseURL := fmt.Sprintf("http://localhost:%s", config.AppConfig.APIPort)
	if config.AppConfig.TLSEnable {
		serverBaseURL = fmt.Sprintf("https://localhost:%s", config.AppConfig.APIPort)
		if config.AppConfig.TLSCertFile == "" || config.AppConfig.TLSKeyFile == "" {
			log.Fatalf("TLS is enabled but TLS_CERT_FILE or TLS_KEY_FILE is not set in config.")
		}
		if _, err := os.Stat(config.AppConfig.TLSCertFile); os.IsNotExist(err) {
			log.Fatalf("TLS cert file not found: %s", config.AppConfig.TLSCertFile)
		}
		if _, err := os.Stat(config.AppConfig.TLSKeyFile); os.IsNotExist(err) {
			log.Fatalf("TLS key file not found: %s", config.AppConfig.TLSKeyFile)
		}
	}

	srv := &http.Server{
		Addr:    listenAddr,
		Handler: router,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("Starting server, accessible locally at %s (and potentially other IPs)", serverBaseURL)
		if config.AppConfig.TLSEnable {
			serverErr <- srv.ListenAndServeTLS(config.AppConfig.TLSCertFile, config.AppConfig.TLSKeyFile)
		} else {
			serverErr <- srv.ListenAndServe()
		}
	}()

	select {
	case err := <-serverErr:
		log.Fatalf("Failed to start server: %v", err)
	case <-ctx.Done():
		log.Info("Shutdown signal received, stopping server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Graceful shutdown failed: %v", err)
	}
}
