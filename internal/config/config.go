package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/fernet/fernet-go"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Providers map[string]ProviderConfig
	Scheduler SchedulerConfig
	Reports   ReportsConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// ProviderConfig holds the credentials and endpoint for one bank provider.
// APIToken is the value after fernet decryption, when a key is configured.
type ProviderConfig struct {
	APIURL   string
	APIToken string
}

// SchedulerConfig holds the background sync configuration.
// An empty CronSpec disables the scheduled sync entirely.
type SchedulerConfig struct {
	CronSpec string
}

// ReportsConfig holds report-export configuration
type ReportsConfig struct {
	OutputDir string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Providers: map[string]ProviderConfig{},
		Scheduler: SchedulerConfig{
			CronSpec: getEnv("SYNC_CRON", ""),
		},
		Reports: ReportsConfig{
			OutputDir: getEnv("REPORT_OUTPUT_DIR", "./reports"),
		},
	}

	// Provider credentials. A provider is configured only if its token is set.
	wiseToken, err := resolveToken("WISE_API_TOKEN")
	if err != nil {
		return nil, err
	}
	if wiseToken != "" {
		config.Providers["wise"] = ProviderConfig{
			APIURL:   getEnv("WISE_API_URL", "https://api.wise.com/v1"),
			APIToken: wiseToken,
		}
	}

	revolutToken, err := resolveToken("REVOLUT_API_TOKEN")
	if err != nil {
		return nil, err
	}
	if revolutToken != "" {
		config.Providers["revolut"] = ProviderConfig{
			APIURL:   getEnv("REVOLUT_API_URL", "https://api.revolut.com/business/latest"),
			APIToken: revolutToken,
		}
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// resolveToken reads a provider API token from the environment. If only the
// _ENC variant is present, it is decrypted with the configured fernet key.
// Plaintext tokens take precedence so local development needs no key.
func resolveToken(envKey string) (string, error) {
	if plain := os.Getenv(envKey); plain != "" {
		return plain, nil
	}

	encrypted := os.Getenv(envKey + "_ENC")
	if encrypted == "" {
		return "", nil
	}

	keyStr := os.Getenv("FERNET_KEY")
	if keyStr == "" {
		return "", fmt.Errorf("%s_ENC is set but FERNET_KEY is missing", envKey)
	}

	key, err := fernet.DecodeKey(keyStr)
	if err != nil {
		return "", fmt.Errorf("invalid FERNET_KEY: %w", err)
	}

	token := fernet.VerifyAndDecrypt([]byte(strings.TrimSpace(encrypted)), 0, []*fernet.Key{key})
	if token == nil {
		return "", fmt.Errorf("failed to decrypt %s_ENC", envKey)
	}

	return string(token), nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
