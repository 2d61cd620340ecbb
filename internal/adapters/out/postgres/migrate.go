package postgres

import (
	"laundry/internal/adapters/out/postgres/branchrepo"
	"laundry/internal/adapters/out/postgres/catalogrepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/outboxrepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the service.
func Models() []any {
	return []any{
		&branchrepo.BranchDTO{},
		&catalogrepo.LaundryItemDTO{},
		&orderrepo.OrderDTO{},
		&outboxrepo.OutboxMessageDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
