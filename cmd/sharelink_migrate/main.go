package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"matchsight/internal/logging"
	sqlstore "matchsight/internal/storage/sqlite"
)

func main() {
	_ = godotenv.Load()
	logging.InitFromEnv()
	ctx := context.Background()

	store, err := sqlstore.Open(os.Getenv("SQLITE_PATH"))
	if err != nil {
		logging.Fatalf("[sharelink-migrate] open sqlite: %v", err)
	}
	defer store.Close()

	if err := store.CreateTables(ctx); err != nil {
		logging.Fatalf("[sharelink-migrate] create tables: %v", err)
	}

	pruned, err := store.DeleteExpired(ctx)
	if err != nil {
		logging.Fatalf("[sharelink-migrate] prune expired: %v", err)
	}
	logging.Infof("[sharelink-migrate] schema ready at %s, pruned %d expired links", store.Path(), pruned)
}
