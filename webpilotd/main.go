package main

import (
	"log"

	"github.com/marover/webpilot/webpilotd/server"
)

func main() {
	serverInstance := server.New()
	if err := serverInstance.Start(); err != nil {
		log.Fatal("[Webpilot] Failed to start server: ", err)
	}
}
