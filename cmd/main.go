package main

import (
	"flag"
	"log"

	"github.com/echolytics/persona-engine/api"
	"github.com/echolytics/persona-engine/api/handlers"
	"github.com/echolytics/persona-engine/config"
	"github.com/echolytics/persona-engine/messaging"
	"github.com/echolytics/persona-engine/provider"
	"github.com/echolytics/persona-engine/storage"
	"github.com/echolytics/persona-engine/utils"
)

func main() {
	cfg := config.Load()

	apiPort := flag.Int("api-port", cfg.APIPort, "API server port, 0 to pick a free one")
	natsURL := flag.String("nats", cfg.NATSURL, "NATS URL, empty to disable persona events")
	dataDir := flag.String("data-dir", cfg.DataDir, "Directory for the persona cache, empty to disable")
	fetchDelay := flag.Duration("fetch-delay", cfg.FetchDelay, "Simulated provider latency")
	flag.Parse()

	if *apiPort == 0 {
		*apiPort = utils.FindAvailableAPIPort()
	}

	var store storage.Store
	if *dataDir != "" {
		s, err := storage.Open(*dataDir)
		if err != nil {
			log.Fatalf("Failed to open persona store: %v", err)
		}
		defer s.Close()
		store = s
	}

	var messenger *messaging.Messenger
	if *natsURL != "" {
		messenger = messaging.Setup(*natsURL)
		if messenger != nil {
			defer messenger.Close()
		}
	}

	h := handlers.NewHandler(provider.NewFixtureProvider(*fetchDelay), store, messenger)
	h.EnrichNarrative = cfg.EnrichNarrative
	h.LookupWebPresence = cfg.LookupWebPresence

	log.Printf("Persona engine listening on :%d", *apiPort)
	if err := api.StartServer(*apiPort, h); err != nil {
		log.Fatalf("API server failed: %v", err)
	}
}
