package domain

type Product struct {
	ID        string  `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Price     float64 `db:"price" json:"price"`
	Stock     int     `db:"stock" json:"stock"`
	CreatedAt string  `db:"created_at" json:"created_at"`
}

type Client struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	LastName  string `db:"last_name" json:"last_name"`
	Business  string `db:"business" json:"business"`
	Email     string `db:"email" json:"email"`
	Phone     string `db:"phone" json:"phone"`
	SellerID  string `db:"seller_id" json:"seller"`
	CreatedAt string `db:"created_at" json:"created_at"`
}

// Order lifecycle states. PENDING is initial; transitions are caller-driven.
const (
	StatePending   = "PENDING"
	StateCompleted = "COMPLETED"
	StateCanceled  = "CANCELED"
)

func ValidState(s string) bool {
	return s == StatePending || s == StateCompleted || s == StateCanceled
}

// OrderLine is one product+quantity entry within an order, with the name and
// unit price snapshotted at order time.
type OrderLine struct {
	ProductID string  `db:"product_id" json:"id"`
	Amount    int     `db:"amount" json:"amount"`
	Name      string  `db:"name" json:"name"`
	Price     float64 `db:"price" json:"price"`
}

type Order struct {
	ID        string      `db:"id" json:"id"`
	Lines     []OrderLine `db:"-" json:"orders"`
	Total     float64     `db:"total" json:"total"`
	ClientID  string      `db:"client_id" json:"client"`
	SellerID  string      `db:"seller_id" json:"seller"`
	State     string      `db:"state" json:"state"`
	CreatedAt string      `db:"created_at" json:"created_at"`
}
