package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/Abhinav6284/Planora/internal/config"
	"github.com/Abhinav6284/Planora/internal/serverapp"
)

func main() {
	configPath := flag.String("config", "", "path to a planora config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	handler := serverapp.NewHandler(serverapp.Options{
		Config: cfg,
		Logger: log.Default(),
	})

	log.Printf("listening on %s", cfg.Listen)
	log.Fatal(http.ListenAndServe(cfg.Listen, handler))
}
