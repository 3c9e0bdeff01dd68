// Package postgres is the relational storage of the shop. Store hands out one
// repository per table, all sharing the same *gorm.DB.
//
// Usage:
//
//	db, err := postgres.Open(dsn)
//	if err != nil {
//	    return err
//	}
//	store := postgres.NewStore(db)
//	if err := store.AutoMigrate(ctx); err != nil {
//	    return err
//	}
//
//	workflow := commands.NewPlaceOrderWorkflow(store.Products(), store.Orders())
//
// Writes that span more than one table run inside Transaction, which hands
// the callback a Store bound to the transaction:
//
//	err := store.Transaction(ctx, func(tx *postgres.Store) error {
//	    if err := tx.Orders().MarkShipped(ctx, id, tracking, carrier); err != nil {
//	        return err
//	    }
//	    return tx.Outbox().Publish(ctx, ports.TopicOrderShipped, id.String(), event)
//	})
package postgres

import (
	"context"
	"fmt"

	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/adapters/out/postgres/outboxrepo"
	"shop/internal/adapters/out/postgres/paymentrepo"
	"shop/internal/adapters/out/postgres/productrepo"
	"shop/internal/adapters/out/postgres/shipmentrepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds a libpq connection string.
func DSN(host, port, user, password, dbname, sslmode string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)
}

// Open connects to the database with GORM's SQL logging silenced.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

// AutoMigrate creates or updates every table the repositories use.
func (s *Store) AutoMigrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&paymentrepo.PaymentDTO{},
		&shipmentrepo.ShipmentDTO{},
		&outboxrepo.OutboxDTO{},
	)
}

// Transaction runs fn with a Store whose repositories share one database
// transaction. The transaction commits when fn returns nil and rolls back
// otherwise, including when fn panics.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func (s *Store) Products() *productrepo.GormProductRepository {
	return productrepo.NewGormProductRepository(s.db)
}

func (s *Store) Orders() *orderrepo.GormOrderRepository {
	return orderrepo.NewGormOrderRepository(s.db)
}

func (s *Store) Payments() *paymentrepo.GormPaymentRepository {
	return paymentrepo.NewGormPaymentRepository(s.db)
}

func (s *Store) Shipments() *shipmentrepo.GormShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(s.db)
}

func (s *Store) Outbox() *outboxrepo.GormOutboxRepository {
	return outboxrepo.NewGormOutboxRepository(s.db)
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
