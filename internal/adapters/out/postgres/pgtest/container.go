// Package pgtest starts a disposable PostgreSQL container for integration tests
// and seeds the reference tables the order store joins against.
package pgtest

import (
	"context"
	"time"

	postgres_adapter "sales/internal/adapters/out/postgres"
	"sales/internal/adapters/out/postgres/orderrepo"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Reference IDs created by SeedReferenceData.
const (
	CustomerID       int64 = 7
	OtherCustomerID  int64 = 8
	ShipToAccountID  int64 = 3
	BillToAccountID  int64 = 4
	CarrierID        int64 = 2
	OtherCarrierID   int64 = 6
	CarrierServiceID int64 = 5
	WarehouseID      int64 = 1
	MaterialID       int64 = 11
	OtherMaterialID  int64 = 12
)

// Database is a running container plus a migrated connection to it.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
	DSN       string
}

// Start runs postgres:15-alpine and migrates every table of the postgres adapters.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(postgres_adapter.Models()...); err != nil {
		return nil, err
	}

	return &Database{Container: container, DB: db, DSN: dsn}, nil
}

// Terminate stops the container.
func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}

// Truncate empties the order tables and the day counters. Reference data is kept.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE order_items, orders, order_number_sequences RESTART IDENTITY").Error
}

// SeedReferenceData inserts the customers, accounts, carriers, services,
// warehouse and materials referenced by the test fixtures.
func (d *Database) SeedReferenceData() error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		seeds := []any{
			&[]orderrepo.CustomerDTO{{ID: CustomerID, Name: "Acme Corp"}, {ID: OtherCustomerID, Name: "Globex"}},
			&[]orderrepo.AccountDTO{{ID: ShipToAccountID, Name: "Acme Dock 3"}, {ID: BillToAccountID, Name: "Acme Billing"}},
			&[]orderrepo.CarrierDTO{{ID: CarrierID, Name: "DHL"}, {ID: OtherCarrierID, Name: "UPS"}},
			&[]orderrepo.CarrierServiceDTO{{ID: CarrierServiceID, CarrierID: CarrierID, Name: "Express"}},
			&[]orderrepo.WarehouseDTO{{ID: WarehouseID, Name: "Main Warehouse"}},
			&[]orderrepo.MaterialDTO{{ID: MaterialID, Code: "MAT-11"}, {ID: OtherMaterialID, Code: "MAT-12"}},
		}
		for _, seed := range seeds {
			if err := tx.Save(seed).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
