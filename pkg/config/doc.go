// Package config loads environment-backed configuration structs.
//
// Each component of the application declares its own Config struct with `env`
// tags and loads it at startup:
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//		Env  string `env:"APP_ENV" envDefault:"development"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// A .env file in the working directory is applied once per process before the
// first parse, which keeps local development and production behavior aligned.
package config
