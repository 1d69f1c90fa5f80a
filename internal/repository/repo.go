package repository

// Repository bundles the in-memory stores. All state is process-memory only
// and is lost on restart; the interfaces are the seam for a persistent
// implementation later.
type Repository struct {
	Orders OrderRepositoryInterface
	Menu   MenuRepositoryInterface
	Users  UserRepositoryInterface
}

func New() *Repository {
	return &Repository{
		Orders: NewOrderRepository(),
		Menu:   NewMenuRepository(),
		Users:  NewUserRepository(),
	}
}
