package config

import (
	"os"
	"strconv"
	"time"
)

// DefaultEndpoint is the public users collection the dashboard reads from.
const DefaultEndpoint = "https://jsonplaceholder.typicode.com/users"

type Config struct {
	Endpoint       string
	Timeout        time.Duration
	InitialCounter int
	LogFile        string
	Verbose        bool
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getdur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getint(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// Default builds a Config from environment variables. Flags layered on
// top by the CLI take precedence.
func Default() Config {
	return Config{
		Endpoint:       getenv("USERDASH_ENDPOINT", DefaultEndpoint),
		Timeout:        getdur("USERDASH_TIMEOUT", 10*time.Second),
		InitialCounter: getint("USERDASH_COUNTER", 0),
		LogFile:        getenv("USERDASH_LOG", ""),
		Verbose:        false,
	}
}
