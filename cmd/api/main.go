package main

import (
	"log"
	"net/http"

	"marketpulse/internal/application/syncstore"
	"marketpulse/internal/infrastructure/config"
	"marketpulse/internal/infrastructure/external/pulsefeed"
	"marketpulse/internal/infrastructure/synthetic"
	httpapi "marketpulse/internal/interface/http"
)

func main() {
	cfg, err := config.LoadFromFile("config.yaml")
	if err != nil {
		log.Fatalf("CRITICAL: load config failed: %v", err)
	}
	log.Printf("configuration loaded (HTTP_ADDR=%s)", cfg.HTTP.Addr)

	var source syncstore.FeedSource
	if cfg.Feed.UseSynthetic || cfg.Feed.BaseURL == "" {
		log.Printf("no feed base_url configured; serving synthetic data")
		source = synthetic.NewSource()
	} else {
		log.Printf("using feed backend at %s", cfg.Feed.BaseURL)
		source = pulsefeed.NewClient(cfg.Feed.BaseURL, cfg.Feed.Timeout)
	}

	store := syncstore.NewStore(source)
	defer store.Close()

	poller := syncstore.NewPoller(store, cfg.Sync.Interval)
	poller.Start()
	defer poller.Stop()

	apiServer := httpapi.NewServer(cfg, store)
	log.Printf("starting HTTP server on %s", cfg.HTTP.Addr)
	if err := http.ListenAndServe(cfg.HTTP.Addr, apiServer.Handler()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
