package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cached is the parse result for one configuration type.
type cached struct {
	once  sync.Once
	value any
	err   error
}

var (
	cache   sync.Map // reflect.Type -> *cached
	dotenvs sync.Once
)

// LoadEnv loads the given .env files (".env" when none are given) into the
// process environment. Variables already set are not overridden.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses environment variables into v using `env` struct tags.
// The default .env file is read once per process if present. Each type is
// parsed once; later calls copy the cached value. A failed parse is cached too.
//
//	type CookieConfig struct {
//		Secrets string `env:"COOKIE_SECRETS,required"`
//	}
//
//	var cfg CookieConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvs.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})

	entry, _ := cache.LoadOrStore(reflect.TypeFor[T](), &cached{})
	c := entry.(*cached)

	c.once.Do(func() {
		var cfg T
		if err := env.Parse(&cfg); err != nil {
			c.err = errors.Join(ErrParsingConfig, err)
			return
		}
		c.value = cfg
	})

	if c.err != nil {
		return c.err
	}

	cfg, ok := c.value.(T)
	if !ok {
		return ErrInvalidConfigType
	}
	*v = cfg
	return nil
}

// MustLoad works like Load but panics on failure; intended for startup code.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset drops the cached value of type T so the next Load parses again.
func Reset[T any]() {
	cache.Delete(reflect.TypeFor[T]())
}
