package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Customers() CustomerRepository
	Sales() SaleRepository
	Stats() StatsRepository
}
