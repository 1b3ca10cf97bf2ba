//go:build integration

package integration

import (
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/Lapatan16/Event-Organization-App-sub000/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5434"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "ledger_test_db"),
	)

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to test database: %v", err)
	}

	// Drop and recreate tables for clean state
	testDB.Exec("DROP TABLE IF EXISTS contracts")
	testDB.Exec("DROP TABLE IF EXISTS supplier_products")
	testDB.Exec("DROP TABLE IF EXISTS suppliers")
	testDB.Exec("DROP TABLE IF EXISTS event_resources")
	testDB.Exec("DROP TABLE IF EXISTS events")

	if err := testDB.AutoMigrate(
		&models.Event{},
		&models.EventResource{},
		&models.Supplier{},
		&models.SupplierProduct{},
		&models.Contract{},
	); err != nil {
		log.Fatalf("failed to auto-migrate test database: %v", err)
	}

	code := m.Run()

	testDB.Exec("DROP TABLE IF EXISTS contracts")
	testDB.Exec("DROP TABLE IF EXISTS supplier_products")
	testDB.Exec("DROP TABLE IF EXISTS suppliers")
	testDB.Exec("DROP TABLE IF EXISTS event_resources")
	testDB.Exec("DROP TABLE IF EXISTS events")

	os.Exit(code)
}

func cleanTables() {
	testDB.Exec("DELETE FROM contracts")
	testDB.Exec("DELETE FROM supplier_products")
	testDB.Exec("DELETE FROM suppliers")
	testDB.Exec("DELETE FROM event_resources")
	testDB.Exec("DELETE FROM events")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
