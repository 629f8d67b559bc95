// Package config loads typed configuration from environment variables.
//
// Structs are parsed with github.com/caarlos0/env/v11 using `env` and
// `envDefault` tags. The default .env file, when present, is loaded once via
// github.com/joho/godotenv before the first parse. Every configuration type is
// parsed once per process and cached; Reset clears one type, which tests use
// after changing the environment.
//
//	var cfg cookie.Config
//	config.MustLoad(&cfg)
package config
