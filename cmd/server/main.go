// Package main provides a local HTTP server for development and testing.
// It exposes the same intake pipeline as the Lambda so form submissions can
// be exercised against a sandbox org without deploying.
package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/cors"

	"client-intake-sync/internal/config"
	"client-intake-sync/internal/handlers"
	"client-intake-sync/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	_ = utils.InitLogger(cfg.LogLevel)
	defer utils.Sync()

	ctx := context.Background()

	intakeHandler, err := handlers.NewIntakeHandlerFromConfig(ctx)
	if err != nil {
		log.Fatalf("failed to initialize intake handler: %v", err)
	}
	healthHandler := handlers.NewHealthHandler()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/intake", adapt(intakeHandler.Handle))
	mux.HandleFunc("/api/health", adapt(healthHandler.Handle))

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(mux)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	utils.GetLogger().Info("Local server listening", utils.String("port", port))
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// lambdaHandler is the APIGatewayProxy handler signature shared by all
// handlers in this service.
type lambdaHandler func(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// adapt bridges a Lambda proxy handler onto net/http for local use.
func adapt(handle lambdaHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}

		request := events.APIGatewayProxyRequest{
			HTTPMethod: r.Method,
			Path:       r.URL.Path,
			Body:       string(body),
		}

		response, err := handle(r.Context(), request)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		for k, v := range response.Headers {
			w.Header().Set(k, v)
		}
		w.WriteHeader(response.StatusCode)
		_, _ = w.Write([]byte(response.Body))
	}
}
