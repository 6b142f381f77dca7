package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"

	"sellerdesk/internal/domain"
	"sellerdesk/internal/repos"
	"sellerdesk/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func seedSeller(t *testing.T, db *sqlx.DB, id string) *domain.Claims {
	t.Helper()
	if _, err := db.Exec(`
	  INSERT INTO users(id, name, last_name, phone, email, password_hash)
	  VALUES(?, ?, 'Seller', '555-0100', ?, 'x')
	`, id, "Seller "+id, id+"@sellerdesk.test"); err != nil {
		t.Fatal(err)
	}
	return &domain.Claims{ID: id, Name: "Seller " + id, LastName: "Seller", Email: id + "@sellerdesk.test"}
}

func seedClient(t *testing.T, db *sqlx.DB, id, sellerID string) {
	t.Helper()
	if _, err := db.Exec(`
	  INSERT INTO clients(id, name, last_name, business, email, phone, seller_id)
	  VALUES(?, 'Client', ?, 'ACME', ?, '', ?)
	`, id, id, id+"@clients.test", sellerID); err != nil {
		t.Fatal(err)
	}
}

func seedProduct(t *testing.T, db *sqlx.DB, id, name string, price float64, stock int) {
	t.Helper()
	if _, err := db.Exec(`
	  INSERT INTO products(id, name, price, stock) VALUES(?, ?, ?, ?)
	`, id, name, price, stock); err != nil {
		t.Fatal(err)
	}
}

func stockOf(t *testing.T, db *sqlx.DB, productID string) int {
	t.Helper()
	var n int
	if err := db.Get(&n, `SELECT stock FROM products WHERE id=?`, productID); err != nil {
		t.Fatal(err)
	}
	return n
}

func f64(v float64) *float64 { return &v }

func orderSvc(db *sqlx.DB) *services.OrderService {
	return services.NewOrderService(
		repos.NewOrderRepo(db),
		repos.NewClientRepo(db),
		services.NewInventoryService(repos.NewProductRepo(db)),
	)
}
