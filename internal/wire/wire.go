// Package wire provides dependency injection for the srs application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"log"
	"sync"

	sheetsadapter "github.com/example/srs/internal/adapters/sheets"
	"github.com/example/srs/internal/adapters/sqlite"
	"github.com/example/srs/internal/app"
	"github.com/example/srs/internal/config"
	"github.com/example/srs/internal/db"
	"github.com/example/srs/internal/ports/primary"
	"github.com/example/srs/internal/ports/secondary"
)

var (
	itemService primary.ItemService
	once        sync.Once
)

// ItemService returns the singleton ItemService instance.
func ItemService() primary.ItemService {
	once.Do(initServices)
	return itemService
}

// initServices initializes the service with the backend selected by the
// config. This is called once via sync.Once.
func initServices() {
	dir, err := config.DefaultDir()
	if err != nil {
		log.Fatalf("failed to resolve config directory: %v", err)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var store secondary.ItemStore
	switch cfg.ResolvedBackend() {
	case config.BackendSheets:
		store, err = sheetsadapter.NewItemRepository(context.Background(), cfg.SheetID, cfg.ServiceAccount)
		if err != nil {
			log.Fatalf("failed to connect to Google Sheets backend: %v", err)
		}
	default:
		database, err := db.GetDB()
		if err != nil {
			log.Fatalf("failed to initialize database: %v", err)
		}
		store = sqlite.NewItemRepository(database)
	}

	itemService = app.NewItemService(store)
}
