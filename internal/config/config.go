package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	PageURL   string          `yaml:"page_url"`
	Locale    string          `yaml:"locale"`
	API       APIConfig       `yaml:"api"`
	Animation AnimationConfig `yaml:"animation"`
	Toast     ToastConfig     `yaml:"toast"`
	RabbitMQ  RabbitMQConfig  `yaml:"rabbitmq"`
	LogLevel  string          `yaml:"log_level"`
}

type APIConfig struct {
	// BaseURL overrides the URL derived from PageURL.
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type AnimationConfig struct {
	Duration       time.Duration `yaml:"duration"`
	FrameInterval  time.Duration `yaml:"frame_interval"`
	ScrollDuration time.Duration `yaml:"scroll_duration"`
}

type ToastConfig struct {
	EnterDelay time.Duration `yaml:"enter_delay"`
	Transition time.Duration `yaml:"transition"`
	Visible    time.Duration `yaml:"visible"`
}

// RabbitMQConfig enables snapshot publishing when URL is set.
type RabbitMQConfig struct {
	URL        string        `yaml:"url"`
	Exchange   string        `yaml:"exchange"`
	RoutingKey string        `yaml:"routing_key"`
	QueueName  string        `yaml:"queue_name"`
	MessageTTL time.Duration `yaml:"message_ttl"`
}

func (r RabbitMQConfig) Enabled() bool {
	return r.URL != ""
}

// Load reads the YAML file at path after loading .env and expanding
// environment variables. With optional set, a missing file yields defaults.
func Load(path string, optional bool) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case optional && errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

// setDefaults fills unset values; non-positive durations count as unset.
func (c *Config) setDefaults() {
	if c.PageURL == "" {
		c.PageURL = os.Getenv("LANDING_PAGE_URL")
	}
	if c.Locale == "" {
		c.Locale = "en"
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = 10 * time.Second
	}
	if c.Animation.Duration <= 0 {
		c.Animation.Duration = 2000 * time.Millisecond
	}
	if c.Animation.FrameInterval <= 0 {
		c.Animation.FrameInterval = 16 * time.Millisecond
	}
	if c.Animation.ScrollDuration <= 0 {
		c.Animation.ScrollDuration = 500 * time.Millisecond
	}
	if c.Toast.EnterDelay <= 0 {
		c.Toast.EnterDelay = 100 * time.Millisecond
	}
	if c.Toast.Transition <= 0 {
		c.Toast.Transition = 300 * time.Millisecond
	}
	if c.Toast.Visible <= 0 {
		c.Toast.Visible = 3000 * time.Millisecond
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "library_landing"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "stats"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "landing_stats"
	}
	if c.RabbitMQ.MessageTTL <= 0 {
		c.RabbitMQ.MessageTTL = time.Hour
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
