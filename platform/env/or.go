package env

import (
	"go.uber.org/zap"
	"os"
)

// OrDefault return the result of searching an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	value := os.Getenv(env)
	if value == "" {
		log.Infof("env var %s not set, using default %q", env, def)
		return def
	}
	return value
}

// Must return the result of searching an env var, if the env var value is empty, logs and exits
func Must(log *zap.SugaredLogger, env string) string {
	value := os.Getenv(env)
	if value == "" {
		log.Fatalf("env var %s is required", env)
	}
	return value
}
