package httpserver

import "time"

const (
	defaultPort        = "8080"
	defaultMetricsPort = "9090"

	readTimeout       = 3 * time.Second
	readHeaderTimeout = 2 * time.Second
	// a scrape of a large registry may take a while to render
	writeTimeout   = 10 * time.Second
	idleTimeout    = 90 * time.Second
	maxHeaderBytes = 8 << 10
)
