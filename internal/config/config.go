package config

import (
	"errors"
	"os"
)

// Config holds everything the process needs from the environment.
// SupabaseURL and SupabaseAnonKey point at the hosted project that owns
// auth and all the tables; without them there is nothing to serve.
type Config struct {
	Port string

	SupabaseURL     string
	SupabaseAnonKey string
}

func Load() (Config, error) {
	cfg := Config{
		Port: os.Getenv("PORT"),

		SupabaseURL:     os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey: os.Getenv("SUPABASE_ANON_KEY"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if cfg.SupabaseURL == "" || cfg.SupabaseAnonKey == "" {
		return Config{}, errors.New("missing SUPABASE_URL or SUPABASE_ANON_KEY in environment")
	}

	return cfg, nil
}
