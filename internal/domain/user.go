package domain

type User struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	LastName  string `db:"last_name" json:"last_name"`
	Phone     string `db:"phone" json:"phone"`
	Email     string `db:"email" json:"email"`
	Hash      string `db:"password_hash" json:"-"`
	CreatedAt string `db:"created_at" json:"created_at"`
}

// Claims is the identity decoded from a verified trust token. It has no
// persistence of its own; it only lives for the duration of a request.
type Claims struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Email    string `json:"email"`
}
