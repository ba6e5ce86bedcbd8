package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"gorm.io/gorm"

	"crown-status/pkg/api"
	"crown-status/pkg/audit"
	"crown-status/pkg/auth"
	"crown-status/pkg/config"
	"crown-status/pkg/db"
	"crown-status/pkg/status"
	"crown-status/pkg/version"
)

func main() {
	cfgPath := flag.String("config", "statusd.yaml", "path to YAML config")
	addr := flag.String("addr", "", "listen address (overrides config)")
	webDir := flag.String("web", "", "dashboard static dir (overrides config)")
	tlsCert := flag.String("tls-cert", "", "TLS cert path (enables HTTPS if set with --tls-key)")
	tlsKey := flag.String("tls-key", "", "TLS key path (enables HTTPS if set with --tls-cert)")
	clientCA := flag.String("client-ca", "", "require and verify client certs using this CA (optional)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *addr != "" {
		cfg.Listen = *addr
	}
	if *webDir != "" {
		cfg.WebDir = *webDir
	}

	auth.SetSecret(cfg.Auth.JWTSecret)
	journal := audit.Open(cfg.AuditDB)
	defer journal.Close()

	var accountDB *gorm.DB
	if cfg.Auth.EnablePassword {
		accountDB, err = db.Init()
		if err != nil {
			log.Fatalf("account store: %v", err)
		}
	}

	collector := status.NewCollector(cfg)
	authHandler := &api.AuthHandler{
		DB:         accountDB,
		Provider:   auth.NewProvider(cfg.Auth.OAuth),
		Allow:      auth.NewAllowlist(cfg.Auth.AllowedEmails),
		SessionTTL: time.Duration(cfg.Auth.SessionTTLHours) * time.Hour,
		Journal:    journal,
	}

	mux := http.NewServeMux()
	authHandler.RegisterRoutes(mux)
	api.RegisterStatusRoutes(mux, collector)
	mux.Handle("/", api.RequireSession(http.FileServer(http.Dir(cfg.WebDir))))

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("statusd %s listening on %s", version.Build, cfg.Listen)
	if *tlsCert != "" && *tlsKey != "" {
		if *clientCA != "" {
			tlsCfg, errTLS := api.ServerTLSConfig(*tlsCert, *tlsKey, *clientCA)
			if errTLS != nil {
				log.Fatalf("failed to build TLS config: %v", errTLS)
			}
			srv.TLSConfig = tlsCfg
			err = srv.ListenAndServeTLS("", "")
		} else {
			err = srv.ListenAndServeTLS(*tlsCert, *tlsKey)
		}
	} else {
		err = srv.ListenAndServe()
	}
	if err != nil {
		log.Fatalf("server error: %v", err)
	}
}
