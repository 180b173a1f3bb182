package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// LoadDotEnv reads KEY=VALUE pairs from the file named by ENV_FILE (default .env)
// into the process environment. Variables already set win. A missing file is not an error.
func LoadDotEnv() error {
	path := envOrDefault(envEnvFile, defaultEnvFile)
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
