package services

import (
	"github.com/ghuser/grocerylist/pkg/app"
	"github.com/ghuser/grocerylist/pkg/cache"
	"github.com/ghuser/grocerylist/services/grocery/domain/repositories"
	"github.com/ghuser/grocerylist/services/grocery/infrastructure/persistence/memory"
	"github.com/ghuser/grocerylist/services/grocery/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item *ItemService
}

// New wires all grocery application services with infrastructure from the Application container.
// Without a database the process-local memory store is used; without Redis the cache is skipped.
// Call it once per process so every route shares the same store.
func New(a *app.Application) *Services {
	var repo repositories.ItemRepository
	if a.Db != nil {
		repo = postgres.NewItemRepository(a.Db, a.EventBus)
	} else {
		repo = memory.NewItemRepository()
	}

	var itemCache *cache.ItemCache
	if a.Redis != nil {
		itemCache = cache.NewItemCache(a.Redis)
	}

	return &Services{
		Item: NewItemService(repo, itemCache, a.Logger),
	}
}
