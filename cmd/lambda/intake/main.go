// Intake Lambda entry point
package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"client-intake-sync/internal/handlers"
	"client-intake-sync/internal/utils"
)

func main() {
	// Initialize logger
	_ = utils.InitLogger("info")
	defer utils.Sync()

	// Create handler
	handler, err := handlers.NewIntakeHandlerFromConfig(context.Background())
	if err != nil {
		log.Fatalf("failed to initialize intake handler: %v", err)
	}

	// Start Lambda
	lambda.Start(handler.Handle)
}
