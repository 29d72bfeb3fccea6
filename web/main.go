package main

import (
	"flag"

	"spheretrace/internal/logger"
	"spheretrace/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port for the web server")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error, fatal")
	flag.Parse()

	log := logger.New(*logLevel)
	srv := server.NewServer(*port, log)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
