package repos

import (
	"strings"

	"sellerdesk/internal/domain"

	"github.com/jmoiron/sqlx"
)

// StockConflictError is returned when a guarded decrement finds less stock
// than the statement requires. The transaction is rolled back before it
// surfaces, so no partial decrements persist.
type StockConflictError struct{ ProductID string }

func (e *StockConflictError) Error() string {
	return "stock conflict on product " + e.ProductID
}

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id, name, price, stock, created_at`

func (r *ProductRepo) Create(p domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id, name, price, stock, created_at)
	  VALUES(?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, p.ID, p.Name, p.Price, p.Stock)
	return err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id=?`, id)
	return p, err
}

func (r *ProductRepo) List() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products ORDER BY datetime(created_at) DESC`)
	return out, err
}

func (r *ProductRepo) Update(p domain.Product) error {
	_, err := r.db.Exec(`
	  UPDATE products SET name=?, price=?, stock=? WHERE id=?
	`, p.Name, p.Price, p.Stock, p.ID)
	return err
}

func (r *ProductRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id=?`, id)
	return err
}

// Search runs a full-text match over product names, capped at 10 rows.
func (r *ProductRepo) Search(q string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT p.id, p.name, p.price, p.stock, p.created_at
	  FROM products_fts f
	  JOIN products p ON p.id = f.id
	  WHERE products_fts MATCH ?
	  LIMIT 10
	`, ftsQuote(q))
	return out, err
}

// ftsQuote wraps each term as an FTS5 string literal so characters like '
// and - are matched instead of parsed as query syntax.
func ftsQuote(q string) string {
	terms := strings.Fields(q)
	for i, t := range terms {
		terms[i] = `"` + strings.ReplaceAll(t, `"`, `""`) + `"`
	}
	return strings.Join(terms, " ")
}

// DecrementStocks subtracts each line's amount inside a single transaction.
// Every UPDATE is guarded by "stock >= amount"; if any line comes up short the
// whole transaction is rolled back.
func (r *ProductRepo) DecrementStocks(lines []domain.OrderLine) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, ln := range lines {
		res, err := tx.Exec(`
		  UPDATE products SET stock = stock - ?
		  WHERE id = ? AND stock >= ?
		`, ln.Amount, ln.ProductID, ln.Amount)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return &StockConflictError{ProductID: ln.ProductID}
		}
	}

	return tx.Commit()
}
