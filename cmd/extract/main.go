// Command extract pulls one page of orders from the external order-intake
// system and prints it as JSON. Exits non-zero when the page could not be
// fetched.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/pencilhq/orderform-gateway/internal/config"
	"github.com/pencilhq/orderform-gateway/internal/erp"
	"github.com/pencilhq/orderform-gateway/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zl.Sync()

	data := erp.ExtractOrderBatch(context.Background(),
		cfg.Intake.ClientKey, cfg.Intake.ClientSecret, cfg.Intake.OrdersURL, zl)
	if data == nil {
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		zl.Fatal("encoding intake page failed")
	}
}
