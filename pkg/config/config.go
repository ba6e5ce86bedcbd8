// Package config loads the statusd configuration from YAML, with
// environment overrides and optional .env loading.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Endpoint is one public site probed by /api/status. The list is fixed
// at startup; ids are unique and order is the order of the response.
type Endpoint struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Service maps a logical key to a systemd unit name.
type Service struct {
	Key  string `yaml:"key"`
	Unit string `yaml:"unit"`
}

// OAuthConfig holds the identity-provider endpoints for operator login.
type OAuthConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	AuthURL      string `yaml:"auth_url"`
	TokenURL     string `yaml:"token_url"`
	UserinfoURL  string `yaml:"userinfo_url"`
	RedirectURL  string `yaml:"redirect_url"`
}

// AuthConfig controls the login gate in front of the dashboard.
type AuthConfig struct {
	JWTSecret       string      `yaml:"jwt_secret"`
	SessionTTLHours int         `yaml:"session_ttl_hours"`
	AllowedEmails   []string    `yaml:"allowed_emails"`
	OAuth           OAuthConfig `yaml:"oauth"`
	// EnablePassword turns on the local bcrypt login fallback,
	// which requires the MySQL account store.
	EnablePassword bool `yaml:"enable_password"`
}

type Config struct {
	Listen    string     `yaml:"listen"`
	WebDir    string     `yaml:"web_dir"`
	DiskPath  string     `yaml:"disk_path"`
	AuditDB   string     `yaml:"audit_db"`
	Endpoints []Endpoint `yaml:"endpoints"`
	Services  []Service  `yaml:"services"`
	Auth      AuthConfig `yaml:"auth"`
}

// Default returns the built-in configuration: the fixed endpoint and
// service tables the dashboard was written for.
func Default() *Config {
	return &Config{
		Listen:   ":8090",
		WebDir:   "web",
		DiskPath: "/",
		AuditDB:  "/var/lib/crown-status/audit.db",
		Endpoints: []Endpoint{
			{ID: "dev", Name: "Crown Dev Site", URL: "https://dev.drcastiel.com"},
			{ID: "admin", Name: "Admin Portal", URL: "https://admin.drcastiel.com"},
			{ID: "home", Name: "DrCastiel Home", URL: "https://drcastiel.com"},
		},
		Services: []Service{
			{Key: "cloudflared", Unit: "cloudflared.service"},
			{Key: "gunicorn", Unit: "crown-admin.service"},
			{Key: "nginx", Unit: "nginx.service"},
		},
		Auth: AuthConfig{
			SessionTTLHours: 24,
		},
	}
}

// Load reads the YAML file at path on top of Default and applies env
// overrides. A missing file is not an error: defaults are used.
func Load(path string) (*Config, error) {
	_ = loadDotEnv()
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("STATUSD_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("OAUTH_CLIENT_ID"); v != "" {
		cfg.Auth.OAuth.ClientID = v
	}
	if v := os.Getenv("OAUTH_CLIENT_SECRET"); v != "" {
		cfg.Auth.OAuth.ClientSecret = v
	}
}

func loadDotEnv() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}
