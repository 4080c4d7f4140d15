package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port           string        `env:"PORT" env-default:"8080"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" env-default:"60s"`
	CORSOrigins    string        `env:"CORS_ORIGINS" env-default:""`
	// SubscribeEndpoint is where the waitlist form posts. Defaults to this
	// server's own /api/subscribe on the loopback interface.
	SubscribeEndpoint string `env:"SUBSCRIBE_ENDPOINT" env-default:""`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"text"`
}

type ResendConfig struct {
	APIKey     string `env:"RESEND_API_KEY"`
	BaseURL    string `env:"RESEND_BASE_URL" env-default:"https://api.resend.com"`
	AudienceID string `env:"RESEND_AUDIENCE_ID" env-default:"9ed0afde-f7ca-4307-860d-08756157cec0"`
	// Zero means no client-side timeout; the request context still applies.
	Timeout time.Duration `env:"UPSTREAM_TIMEOUT" env-default:"0s"`
}

type KafkaConfig struct {
	Brokers string `env:"KAFKA_BROKERS" env-default:""`
	Topic   string `env:"KAFKA_TOPIC" env-default:"waitlist.signup"`
}

type Config struct {
	Server ServerConfig
	Log    LogConfig
	Resend ResendConfig
	Kafka  KafkaConfig
}

// Load reads envFile (if it exists) into the process environment and then
// builds Config from the environment. Variables already set win over the file.
func Load(envFile string) (Config, error) {
	var cfg Config

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to read environment: %w", err)
	}
	return cfg, nil
}

func (c ServerConfig) Addr() string {
	return ":" + c.Port
}

// SubscribeURL returns the endpoint the waitlist form posts to.
func (c ServerConfig) SubscribeURL(path string) string {
	if c.SubscribeEndpoint != "" {
		return c.SubscribeEndpoint
	}
	return "http://127.0.0.1:" + c.Port + path
}

func (c ServerConfig) AllowedOrigins() []string {
	return splitList(c.CORSOrigins)
}

func (c KafkaConfig) BrokerList() []string {
	return splitList(c.Brokers)
}

func (c KafkaConfig) Enabled() bool {
	return len(c.BrokerList()) > 0
}

func splitList(in string) []string {
	var out []string
	for _, s := range strings.Split(in, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
