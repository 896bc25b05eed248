// Command seed loads sample store items into the local database so there is
// stock to issue against during development.
package main

import (
	"context"
	"log"

	"estore/internal/config"
	"estore/internal/db"
	"estore/internal/model"
	"estore/internal/repository"
)

var fixtures = []model.StoreItem{
	{Name: "Widget", Model: "X1", Quantity: "10"},
	{Name: "Laptop", Model: "ThinkPad T14", Quantity: "25"},
	{Name: "Monitor", Model: "Dell U2723QE", Quantity: "40"},
	{Name: "Dock", Model: "CalDigit TS4", Quantity: "15"},
	{Name: "Headset", Model: "Jabra Evolve2", Quantity: "60"},
}

func main() {
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.StoreItem{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	itemRepo := repository.NewItemRepository(gormDB)
	ctx := context.Background()

	existing, err := itemRepo.List(ctx)
	if err != nil {
		log.Fatalf("list items: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("store already has %d items, nothing to do", len(existing))
		return
	}

	for i := range fixtures {
		if err := itemRepo.Create(ctx, &fixtures[i]); err != nil {
			log.Fatalf("seed item %q: %v", fixtures[i].Name, err)
		}
	}
	log.Printf("seeded %d items", len(fixtures))
}
