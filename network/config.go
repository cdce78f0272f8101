package network

import "time"

// Config holds spectator server configuration
type Config struct {
	// Address to bind, host:port
	Address string

	// HTTP server timing
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration

	// RequestTimeout bounds plain HTTP handlers; websocket streams are exempt
	RequestTimeout time.Duration

	// Spectator limits
	MaxSpectators int
	SendQueueSize int

	// PingInterval keeps idle websocket connections alive through proxies
	PingInterval time.Duration

	// WriteWait bounds a single websocket frame write
	WriteWait time.Duration
}

// DefaultConfig returns localhost-only defaults
func DefaultConfig() *Config {
	return &Config{
		Address:           "127.0.0.1:7777",
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		RequestTimeout:    15 * time.Second,
		MaxSpectators:     16,
		SendQueueSize:     8,
		PingInterval:      20 * time.Second,
		WriteWait:         5 * time.Second,
	}
}
