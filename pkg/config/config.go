package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		URI    string `yaml:"uri"`
		DBName string `yaml:"dbname"`
	} `yaml:"database"`
	Redis struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	JWT struct {
		Secret string `yaml:"secret"`
	} `yaml:"jwt"`
	Currency struct {
		FeedURL      string `yaml:"feed_url"`
		SyncSchedule string `yaml:"sync_schedule"`
	} `yaml:"currency"`
}

// LoadConfig reads the YAML config file and applies environment variable overrides.
// The resulting struct is constructed once at startup and passed to collaborators;
// nothing below the cmd layer reads configuration from the environment.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	// Override with environment variables if set
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		cfg.Database.URI = uri
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		cfg.Database.DBName = dbname
	}
	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.Redis.Host = host
	}
	if port := os.Getenv("REDIS_PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_PORT value: %v", err)
		}
		cfg.Redis.Port = portNum
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}
	if db := os.Getenv("REDIS_DB"); db != "" {
		dbNum, err := strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value: %v", err)
		}
		cfg.Redis.DB = dbNum
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVER_PORT value: %v", err)
		}
		cfg.Server.Port = portNum
	}
	if feedURL := os.Getenv("CURRENCY_FEED_URL"); feedURL != "" {
		cfg.Currency.FeedURL = feedURL
	}
	if schedule := os.Getenv("CURRENCY_SYNC_SCHEDULE"); schedule != "" {
		cfg.Currency.SyncSchedule = schedule
	}

	if cfg.Database.URI == "" || cfg.Database.DBName == "" {
		return nil, fmt.Errorf("missing required database configuration: uri or dbname")
	}
	if cfg.Currency.FeedURL == "" {
		cfg.Currency.FeedURL = "https://www.nbkr.kg/XML/daily.xml"
	}
	if cfg.Currency.SyncSchedule == "" {
		cfg.Currency.SyncSchedule = "0 7 * * *"
	}

	return &cfg, nil
}
