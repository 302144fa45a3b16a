package repositories

// RepositoryProvider bundles every repository facade for dependency injection.
type RepositoryProvider struct {
	Account AccountRepositoryFacade
	Entry   EntryRepositoryFacade
	Ledger  LedgerRepositoryFacade
	User    UserRepositoryFacade
	Event   EventRepositoryFacade
}
