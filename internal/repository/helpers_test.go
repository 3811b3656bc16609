package repository

import (
	"testing"

	"github.com/deppfellow/go-contacts/internal/config"
	"github.com/deppfellow/go-contacts/internal/database"
	"github.com/rs/zerolog"
)

func testConfig(url string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Database.URL = url
	cfg.Database.Name = "contacts_test"
	return &cfg
}

func newUninitializedDatabase(t *testing.T) *database.Database {
	t.Helper()
	log := zerolog.Nop()
	return database.New(testConfig("mongodb://localhost:27017"), &log, nil)
}
