package store

import "github.com/MKhiriev/wishkeeper/internal/logger"

// Storages bundles every repository behind one constructor so the service
// layer takes a single dependency.
type Storages struct {
	UserRepository  UserRepository
	ListRepository  ListRepository
	ItemRepository  ItemRepository
	ClaimRepository ClaimRepository
}

// NewStorages wires all PostgreSQL repositories onto one shared connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		ListRepository:  NewListRepository(db, log),
		ItemRepository:  NewItemRepository(db, log),
		ClaimRepository: NewClaimRepository(db, log),
	}
}
