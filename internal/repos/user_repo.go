package repos

import (
	"sellerdesk/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) Create(u domain.User) error {
	_, err := r.DB.Exec(`
	  INSERT INTO users(id, name, last_name, phone, email, password_hash, created_at)
	  VALUES(?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, u.ID, u.Name, u.LastName, u.Phone, u.Email, u.Hash)
	return err
}

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `
	  SELECT id, name, last_name, phone, email, password_hash, created_at
	  FROM users WHERE LOWER(email)=LOWER(?)
	`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `
	  SELECT id, name, last_name, phone, email, password_hash, created_at
	  FROM users WHERE id=?
	`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) EmailTaken(email string) (bool, error) {
	var n int
	if err := r.DB.Get(&n, `SELECT COUNT(*) FROM users WHERE LOWER(email)=LOWER(?)`, email); err != nil {
		return false, err
	}
	return n > 0, nil
}
