package config

import (
	"log"
	"os"
	"time"
)

type Config struct {
	Port     string
	DBDSN    string
	Secret   string
	TokenTTL time.Duration
	LogFile  string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "sellerdesk.db"
	} // sqlite file in project root
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		secret = "dev-only-secret"
		log.Printf("[config] SECRET_KEY not set; tokens signed with insecure development key")
	}
	ttl := 24 * time.Hour
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			ttl = d
		}
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Port: port, DBDSN: dsn, Secret: secret, TokenTTL: ttl, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s TOKEN_TTL=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.TokenTTL, cfg.LogFile)
	return cfg
}
