package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	defaultListenAddr = ":8080"
	envAAPURL         = "AAP_URL"
	envAAPToken       = "AAP_TOKEN"
	envVerifySSL      = "VERIFY_SSL"
	envGrokEndpoint   = "GROK_API_ENDPOINT"
	envGrokKey        = "GROK_API_KEY"
	envListenAddr     = "LISTEN_ADDR"
)

// Config holds the process configuration, loaded once at startup.
type Config struct {
	AAPURL       string
	AAPToken     string
	VerifySSL    bool
	GrokEndpoint string
	GrokKey      string
	ListenAddr   string
}

// Load reads configuration from environment variables. It fails when
// AAP_URL or AAP_TOKEN is missing so the process never starts half-configured.
func Load() (*Config, error) {
	aapURL := os.Getenv(envAAPURL)
	aapToken := os.Getenv(envAAPToken)
	if aapURL == "" || aapToken == "" {
		return nil, fmt.Errorf("set %s and %s environment variables (see .env.example)", envAAPURL, envAAPToken)
	}

	return &Config{
		AAPURL:       aapURL,
		AAPToken:     aapToken,
		VerifySSL:    parseVerifySSL(os.Getenv(envVerifySSL)),
		GrokEndpoint: os.Getenv(envGrokEndpoint),
		GrokKey:      os.Getenv(envGrokKey),
		ListenAddr:   getEnv(envListenAddr, defaultListenAddr),
	}, nil
}

// parseVerifySSL defaults to true; "false", "0" and "no" disable verification.
func parseVerifySSL(value string) bool {
	switch strings.ToLower(value) {
	case "false", "0", "no":
		return false
	default:
		return true
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
