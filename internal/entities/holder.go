package entities

// HolderKind владелец баланса: покупатель или агент доставки.
type HolderKind string

const (
	HolderUser  HolderKind = "user"
	HolderAgent HolderKind = "agent"
)

func (k HolderKind) String() string {
	return string(k)
}

func (k HolderKind) IsValid() bool {
	return k == HolderUser || k == HolderAgent
}

type Holder struct {
	Kind HolderKind
	ID   int64
}

type Balance struct {
	Holder  Holder
	Email   string
	Points  int64
	Rewards int64
}

// Identity аутентифицированный владелец запроса.
type Identity struct {
	Holder Holder
	Email  string
}
