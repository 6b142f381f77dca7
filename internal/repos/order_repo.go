package repos

import (
	"sellerdesk/internal/domain"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

const orderCols = `id, client_id, seller_id, total, state, created_at`

// Create inserts the order header and its lines in one transaction.
func (r *OrderRepo) Create(o domain.Order) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
	  INSERT INTO orders(id, client_id, seller_id, total, state, created_at)
	  VALUES(?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, o.ID, o.ClientID, o.SellerID, o.Total, o.State); err != nil {
		return err
	}
	if err := insertLines(tx, o.ID, o.Lines); err != nil {
		return err
	}

	return tx.Commit()
}

func insertLines(tx *sqlx.Tx, orderID string, lines []domain.OrderLine) error {
	for _, ln := range lines {
		if _, err := tx.Exec(`
		  INSERT INTO order_lines(order_id, product_id, amount, name, price)
		  VALUES(?, ?, ?, ?, ?)
		`, orderID, ln.ProductID, ln.Amount, ln.Name, ln.Price); err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderRepo) Get(id string) (domain.Order, error) {
	var o domain.Order
	if err := r.db.Get(&o, `SELECT `+orderCols+` FROM orders WHERE id=?`, id); err != nil {
		return domain.Order{}, err
	}
	if err := r.db.Select(&o.Lines, `
	  SELECT product_id, amount, name, price FROM order_lines WHERE order_id=?
	`, id); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

func (r *OrderRepo) List() ([]domain.Order, error) {
	return r.selectOrders(`SELECT ` + orderCols + ` FROM orders ORDER BY datetime(created_at) DESC`)
}

func (r *OrderRepo) ListBySeller(sellerID string) ([]domain.Order, error) {
	return r.selectOrders(`
	  SELECT `+orderCols+` FROM orders
	  WHERE seller_id=? ORDER BY datetime(created_at) DESC
	`, sellerID)
}

func (r *OrderRepo) ListBySellerState(sellerID, state string) ([]domain.Order, error) {
	return r.selectOrders(`
	  SELECT `+orderCols+` FROM orders
	  WHERE seller_id=? AND state=? ORDER BY datetime(created_at) DESC
	`, sellerID, state)
}

func (r *OrderRepo) selectOrders(query string, args ...any) ([]domain.Order, error) {
	var out []domain.Order
	if err := r.db.Select(&out, query, args...); err != nil {
		return nil, err
	}
	for i := range out {
		if err := r.db.Select(&out[i].Lines, `
		  SELECT product_id, amount, name, price FROM order_lines WHERE order_id=?
		`, out[i].ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Update rewrites the order header and, when lines are supplied, replaces the
// full line set.
func (r *OrderRepo) Update(o domain.Order, replaceLines bool) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
	  UPDATE orders SET client_id=?, total=?, state=? WHERE id=?
	`, o.ClientID, o.Total, o.State, o.ID); err != nil {
		return err
	}
	if replaceLines {
		if _, err := tx.Exec(`DELETE FROM order_lines WHERE order_id=?`, o.ID); err != nil {
			return err
		}
		if err := insertLines(tx, o.ID, o.Lines); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *OrderRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM orders WHERE id=?`, id)
	return err
}

// ---------- Reporting rollups (COMPLETED orders only) ----------

type topClientRow struct {
	Total float64 `db:"total"`
	domain.Client
}

type topSellerRow struct {
	Total float64 `db:"total"`
	domain.User
}

// TopClients groups completed orders by client, sums totals, joins client
// display data, and sorts descending by summed total. No limit.
func (r *OrderRepo) TopClients() ([]domain.TopClient, error) {
	var rows []topClientRow
	err := r.db.Select(&rows, `
	  SELECT SUM(o.total) AS total,
	         c.id, c.name, c.last_name, c.business, c.email, c.phone, c.seller_id, c.created_at
	  FROM orders o
	  JOIN clients c ON c.id = o.client_id
	  WHERE o.state = 'COMPLETED'
	  GROUP BY o.client_id
	  ORDER BY total DESC
	`)
	if err != nil {
		return nil, err
	}
	out := make([]domain.TopClient, len(rows))
	for i, row := range rows {
		out[i] = domain.TopClient{Total: row.Total, Client: row.Client}
	}
	return out, nil
}

// TopSellers is the same rollup grouped by seller, capped at 10 groups. The
// sort runs before the cap, so the groups returned are the 10 largest.
func (r *OrderRepo) TopSellers() ([]domain.TopSeller, error) {
	var rows []topSellerRow
	err := r.db.Select(&rows, `
	  SELECT SUM(o.total) AS total,
	         u.id, u.name, u.last_name, u.phone, u.email, u.password_hash, u.created_at
	  FROM orders o
	  JOIN users u ON u.id = o.seller_id
	  WHERE o.state = 'COMPLETED'
	  GROUP BY o.seller_id
	  ORDER BY total DESC
	  LIMIT 10
	`)
	if err != nil {
		return nil, err
	}
	out := make([]domain.TopSeller, len(rows))
	for i, row := range rows {
		row.User.Hash = "" // never expose the credential
		out[i] = domain.TopSeller{Total: row.Total, Seller: row.User}
	}
	return out, nil
}
