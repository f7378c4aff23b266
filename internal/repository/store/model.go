package store

type BranchDB struct {
	ID        int64
	StoreID   int64
	StoreName string
	Name      string
	Address   string
}
