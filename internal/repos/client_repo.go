package repos

import (
	"sellerdesk/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ClientRepo struct{ db *sqlx.DB }

func NewClientRepo(db *sqlx.DB) *ClientRepo { return &ClientRepo{db: db} }

const clientCols = `id, name, last_name, business, email, phone, seller_id, created_at`

func (r *ClientRepo) Create(c domain.Client) error {
	_, err := r.db.Exec(`
	  INSERT INTO clients(id, name, last_name, business, email, phone, seller_id, created_at)
	  VALUES(?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, c.ID, c.Name, c.LastName, c.Business, c.Email, c.Phone, c.SellerID)
	return err
}

func (r *ClientRepo) Get(id string) (domain.Client, error) {
	var c domain.Client
	err := r.db.Get(&c, `SELECT `+clientCols+` FROM clients WHERE id=?`, id)
	return c, err
}

func (r *ClientRepo) List() ([]domain.Client, error) {
	var out []domain.Client
	err := r.db.Select(&out, `SELECT `+clientCols+` FROM clients ORDER BY datetime(created_at) DESC`)
	return out, err
}

func (r *ClientRepo) ListBySeller(sellerID string) ([]domain.Client, error) {
	var out []domain.Client
	err := r.db.Select(&out, `
	  SELECT `+clientCols+` FROM clients
	  WHERE seller_id=? ORDER BY datetime(created_at) DESC
	`, sellerID)
	return out, err
}

// Update rewrites the mutable contact fields. The owning seller is fixed at
// creation and is deliberately not part of the statement.
func (r *ClientRepo) Update(c domain.Client) error {
	_, err := r.db.Exec(`
	  UPDATE clients SET name=?, last_name=?, business=?, email=?, phone=? WHERE id=?
	`, c.Name, c.LastName, c.Business, c.Email, c.Phone, c.ID)
	return err
}

func (r *ClientRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM clients WHERE id=?`, id)
	return err
}

func (r *ClientRepo) EmailTaken(email string) (bool, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM clients WHERE LOWER(email)=LOWER(?)`, email); err != nil {
		return false, err
	}
	return n > 0, nil
}
