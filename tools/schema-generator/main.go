package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/orcdkestrator/cdklocal/config"
	"github.com/orcdkestrator/cdklocal/logging"
)

func main() {
	output := flag.String("o", "orcdk.schema.json", "path of the generated schema file")
	flag.Parse()

	logger := logging.NewLogger("schema-generator")

	schemaBytes, err := config.GenerateSchema()
	if err != nil {
		logger.Fatalf("Error generating schema: %v", err)
	}

	if dir := filepath.Dir(*output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Fatalf("Error creating schema directory: %v", err)
		}
	}

	if err := os.WriteFile(*output, schemaBytes, 0644); err != nil {
		logger.Fatalf("Error writing schema file: %v", err)
	}

	logger.WithField("path", *output).Info("Generated orchestrator config schema")
}
