package config

import "time"

type Config struct {
	BaseURL         string
	SearchURL       string
	SearchQuery     string
	RequestTimeout  time.Duration
	SelectorTimeout time.Duration
	SettleDelay     time.Duration
	ScrollDelay     time.Duration
	MaxScrolls      int
	MaxRetries      int
	Headless        bool
	OutputDir       string
	PageDumpDir     string
	DBEnabled       bool
	DBHost          string
	DBPort          int
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:         "https://www.olx.in",
		SearchURL:       "https://www.olx.in/items/q-car-cover",
		SearchQuery:     "car cover",
		RequestTimeout:  90 * time.Second,
		SelectorTimeout: 15 * time.Second,
		SettleDelay:     5 * time.Second,
		ScrollDelay:     3 * time.Second,
		MaxScrolls:      3,
		MaxRetries:      3,
		Headless:        true,
		OutputDir:       "output",
		PageDumpDir:     "output",
		DBEnabled:       true,
		DBHost:          "localhost",
		DBPort:          5433,
		DBUser:          "postgres",
		DBPassword:      "postgres",
		DBName:          "olx_scraper",
		DBSSLMode:       "disable",
	}
}
