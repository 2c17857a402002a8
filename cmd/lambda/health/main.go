// Health check Lambda entry point
package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"client-intake-sync/internal/handlers"
	"client-intake-sync/internal/utils"
)

func main() {
	// Initialize logger
	_ = utils.InitLogger("info")
	defer utils.Sync()

	// Create handler
	handler := handlers.NewHealthHandler()

	// Start Lambda
	lambda.Start(handler.Handle)
}
