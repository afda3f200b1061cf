// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv for optional .env files and
// github.com/caarlos0/env/v11 for struct-tag based parsing:
//
//	type Config struct {
//		Env      string `env:"UTILKIT_ENV" envDefault:"development"`
//		LogLevel string `env:"UTILKIT_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// The default .env file in the working directory is read once per process,
// the first time Load is called. A missing file is not an error. Extra files
// can be loaded explicitly with LoadEnv. Values already present in the process
// environment are never overwritten by .env files.
//
// Load accepts env.Options, which is handy in tests to supply variables
// without touching the process environment:
//
//	err := config.Load(&cfg, env.Options{
//		Environment: map[string]string{"UTILKIT_ENV": "production"},
//	})
//
// Errors can be matched with errors.Is against ErrParsingConfig,
// ErrNilPointer and ErrLoadingEnvFile.
package config
