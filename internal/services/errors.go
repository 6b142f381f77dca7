package services

import "fmt"

// Kind classifies every failure the service layer can surface. Resolvers map
// kinds to transport errors uniformly; nothing is logged-and-swallowed.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindAlreadyExists
	KindUnauthorized
	KindUnauthenticated
	KindInvalidCredentials
	KindStockInvalid
	KindInvalidInput
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func notFound(what string) error {
	return &Error{Kind: KindNotFound, Msg: "the " + what + " not exist"}
}

func alreadyExists(what string) error {
	return &Error{Kind: KindAlreadyExists, Msg: "the " + what + " is already registered"}
}

func invalidInput(msg string) error {
	return &Error{Kind: KindInvalidInput, Msg: msg}
}

var (
	ErrNoCredentials = &Error{Kind: KindUnauthorized, Msg: "no credentials"}
	ErrNotLoggedIn   = &Error{Kind: KindUnauthenticated, Msg: "not authenticated"}
	ErrBadCreds      = &Error{Kind: KindInvalidCredentials, Msg: "the password is not correct"}
)

func stockInvalid(productName string) error {
	return &Error{Kind: KindStockInvalid, Msg: fmt.Sprintf("stock invalid in product: %s", productName)}
}

// KindOf extracts the kind from a service error; anything else is internal.
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindInternal
}
