package config

import (
	"log"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	EnvFile = ".env"

	ServerHostVar      = "SERVER_HOST"
	ServerPortVar      = "SERVER_PORT"
	ShutdownTimeoutVar = "SHUTDOWN_TIMEOUT"
)

type ServerConfig struct {
	Host            string
	Port            string
	ShutdownTimeout time.Duration
}

func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func Load() {
	LoadFile(EnvFile)
}

// LoadFile reads an optional env file and fills defaults for anything
// still unset. Variables already in the environment win.
func LoadFile(path string) {
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		log.Printf("config: unable to read %s, %v", path, err)
	}

	setEnvVar(ServerHostVar, "0.0.0.0")
	setEnvVar(ServerPortVar, "5000")
	setEnvVar(ShutdownTimeoutVar, "5s")
}

func Server() (ServerConfig, error) {
	timeout, err := time.ParseDuration(os.Getenv(ShutdownTimeoutVar))
	if err != nil {
		return ServerConfig{}, errors.Wrapf(err, "config: invalid %s", ShutdownTimeoutVar)
	}
	return ServerConfig{
		Host:            os.Getenv(ServerHostVar),
		Port:            os.Getenv(ServerPortVar),
		ShutdownTimeout: timeout,
	}, nil
}

func setEnvVar(name, defaultValue string) {
	if os.Getenv(name) != "" {
		return
	}
	_ = os.Setenv(name, defaultValue)
}
