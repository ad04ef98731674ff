package repositories

// RepositoryProvider holds instances of every repository the application uses.
type RepositoryProvider struct {
	AccountRepo   AccountRepositoryFacade
	JournalRepo   JournalRepositoryFacade
	CategoryRepo  CategoryRepositoryFacade
	ReportingRepo ReportingRepository
}
