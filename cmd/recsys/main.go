// @title Track Recommender API
// @version 1.0
// @description Content-based track recommendations over a locally stored music catalog.
// @host localhost:8080
// @BasePath /api/v1
package main

import (
	"fmt"
	"os"

	"track-recommender/cmd/recsys/cmd"
	"track-recommender/internal/config"
)

func main() {
	// A broken .env is reported but does not block commands that need no credentials
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration warning: %v\n", err)
	}

	cmd.Execute()
}
