package main

import (
	"log"
	"net/http"

	"github.com/dataset-scout/backend/config"
	"github.com/dataset-scout/backend/internal/bootstrap"
	"github.com/dataset-scout/backend/internal/recommend/llm"
	"github.com/dataset-scout/backend/internal/recommend/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	// Without a credential the server still boots; the recommend endpoint
	// reports the misconfiguration per request.
	var recommender service.Recommender
	if cfg.OpenAI.APIKey != "" {
		client, err := llm.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL, cfg.OpenAI.Timeout)
		if err != nil {
			log.Fatalf("init openai client: %v", err)
		}
		recommender = client
	} else {
		log.Println("OPENAI_API_KEY is not set; /api/recommend will return a configuration error")
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "dataset-scout-backend",
		Version:     cfg.App.Version,
		StaticDir:   cfg.Static.Dir,
		Recommend:   service.NewRecommendService(recommender),
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Server.Port, r))
}
