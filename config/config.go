package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Airline AirlineConfig `yaml:"airline"`
	Storage StorageConfig `yaml:"storage"`
	HTTP    HTTPConfig    `yaml:"http"`
	Redis   RedisConfig   `yaml:"redis"`
	Kafka   KafkaConfig   `yaml:"kafka"`
}

type AirlineConfig struct {
	Name    string         `yaml:"name"`
	Flights []FlightConfig `yaml:"flights"`
}

// FlightConfig seeds one catalog entry. Category is "Domestic" or
// "International".
type FlightConfig struct {
	Number      string `yaml:"number"`
	Destination string `yaml:"destination"`
	BaseFare    int64  `yaml:"base_fare"`
	Category    string `yaml:"category"`
}

// StorageConfig selects the booking store backend: "json" (default) or
// "postgres".
type StorageConfig struct {
	Backend  string         `yaml:"backend"`
	Path     string         `yaml:"path"`
	Database DatabaseConfig `yaml:"database"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

type RedisConfig struct {
	Addr            string `yaml:"addr"`
	Password        string `yaml:"password"`
	DB              int    `yaml:"db"`
	FlightsCacheTTL int    `yaml:"flights_cache_ttl_seconds"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingEventsTopic string   `yaml:"booking_events_topic"`
	GroupID            string   `yaml:"group_id"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "json"
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = "bookings.json"
	}

	return &cfg, nil
}
