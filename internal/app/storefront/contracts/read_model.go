package contracts

// ReadModel is everything the usecases read.
type ReadModel interface {
	CatalogReader
	CartReader
	OrderReader
}
