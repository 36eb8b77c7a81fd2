// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv for .env files with
// github.com/caarlos0/env/v11 for struct parsing:
//
//	type AppConfig struct {
//		RootDomain string        `env:"ROOT_DOMAIN,required"`
//		Interval   time.Duration `env:"SUSPENSION_SWEEP_INTERVAL" envDefault:"1h"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Each struct type is parsed once per process and served from a cache
// afterwards. ResetCache clears it between tests. Errors wrap the sentinel
// values in errors.go.
package config
