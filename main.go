package main

import (
	"context"
	"log"

	"fitflix-server/config"
	"fitflix-server/di"
	"fitflix-server/models/venue"
	services "fitflix-server/service"
	"fitflix-server/util"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[MAIN] Failed to load config: %v", err)
	}

	container, err := di.NewContainer(cfg)
	if err != nil {
		log.Fatalf("[MAIN] Failed to initialize container: %v", err)
	}

	if !cfg.IsProd() {
		results, err := container.DiscoveryService.Discover(services.DiscoveryParams{Filter: venue.FilterAll})
		if err != nil {
			log.Printf("[MAIN] Failed to list seeded catalog: %v", err)
		} else {
			util.PrintDiscoveryResultsPartially(results)
		}
	}

	log.Println("[MAIN] Starting server")
	if err := container.FitflixHttpServer.Start(context.Background()); err != nil {
		log.Fatalf("[MAIN] Server error: %v", err)
	}
}
