package service

import (
	"github.com/MKhiriev/wishkeeper/internal/config"
	"github.com/MKhiriev/wishkeeper/internal/logger"
	"github.com/MKhiriev/wishkeeper/internal/scrape"
	"github.com/MKhiriev/wishkeeper/internal/store"
	"github.com/MKhiriev/wishkeeper/internal/validators"
)

// Services bundles every business-logic service behind one constructor so
// the transport layer takes a single dependency.
type Services struct {
	AuthService     AuthService
	UserService     UserService
	ListService     ListService
	ItemService     ItemService
	ClaimService    ClaimService
	MetadataService MetadataService
}

// NewServices wires all services over the shared repositories, a common
// request validator, and the outbound metadata scraper.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewRequestValidator()
	scraper := scrape.NewScraper(cfg.Fetch, logger)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		UserService:     NewUserService(storages, validator, logger),
		ListService:     NewListService(storages, validator, logger),
		ItemService:     NewItemService(storages, validator, logger),
		ClaimService:    NewClaimService(storages, validator, logger),
		MetadataService: NewMetadataService(scraper, validator, logger),
	}
}
