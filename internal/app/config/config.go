package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string
	APIURL          string
	CORSAllowOrigin string
	UpstreamTimeout time.Duration
	MaxUploadMB     int
}

func MustLoad() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, relying on environment variables")
	}
	return Config{
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		APIURL:          mustEnv("API_URL"),
		CORSAllowOrigin: env("CORS_ALLOW_ORIGIN", "*"),
		UpstreamTimeout: time.Duration(envInt("UPSTREAM_TIMEOUT_SECONDS", 30)) * time.Second,
		MaxUploadMB:     envInt("MAX_UPLOAD_MB", 25),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
	return v
}
