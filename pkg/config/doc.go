// Package config loads typed configuration from environment variables.
//
// Load parses `env` struct tags with github.com/caarlos0/env/v11 after
// loading a .env file from the working directory (once per process, via
// github.com/joho/godotenv). Each configuration type is parsed once and
// cached; later calls copy the cached value.
//
//	var cfg config.App
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// App holds the settings of the otec CLI. Every field has a default, so the
// CLI runs without any environment set.
package config
