package entities

type Store struct {
	ID       int64
	Name     string
	Branches []Branch
}

type Branch struct {
	ID        int64
	StoreID   int64
	StoreName string
	Name      string
	Address   string
}
