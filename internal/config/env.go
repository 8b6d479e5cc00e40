package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Env holds overrides read from the environment.
type Env struct {
	FPS      int    // CHASE_FPS
	Seed     int64  // CHASE_SEED
	Sound    bool   // CHASE_SOUND
	SSHAddr  string // CHASE_SSH_ADDR
	DebugLog string // CHASE_DEBUG_LOG
}

// LoadEnv reads CHASE_* variables, first loading the given .env files if they exist.
// Variables already set in the process environment win over .env values.
func LoadEnv(files ...string) (Env, error) {
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return Env{}, fmt.Errorf("failed to load env files: %w", err)
		}
	}
	return EnvFromMap(envMap())
}

// EnvFromMap parses CHASE_* values from a map.
func EnvFromMap(vars map[string]string) (Env, error) {
	var env Env
	if v := vars["CHASE_FPS"]; v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil || fps <= 0 {
			return env, fmt.Errorf("CHASE_FPS must be a positive integer, got %q", v)
		}
		env.FPS = fps
	}
	if v := vars["CHASE_SEED"]; v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return env, fmt.Errorf("CHASE_SEED must be an integer, got %q", v)
		}
		env.Seed = seed
	}
	if v := vars["CHASE_SOUND"]; v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return env, fmt.Errorf("CHASE_SOUND must be a boolean, got %q", v)
		}
		env.Sound = on
	}
	env.SSHAddr = vars["CHASE_SSH_ADDR"]
	env.DebugLog = vars["CHASE_DEBUG_LOG"]
	return env, nil
}

// ParseEnvFile reads CHASE_* values from a .env file without touching the process environment.
func ParseEnvFile(path string) (Env, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return Env{}, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	return EnvFromMap(vars)
}

func envMap() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, "CHASE_") {
			vars[k] = v
		}
	}
	return vars
}
