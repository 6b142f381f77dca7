package graph

import "sellerdesk/internal/services"

// apiError carries the service error kind to the client as a GraphQL error
// extension, so callers can branch on a stable code instead of the message.
type apiError struct {
	err  error
	code string
}

func (e *apiError) Error() string { return e.err.Error() }

func (e *apiError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

func wrap(err error) error {
	if err == nil {
		return nil
	}
	code := "INTERNAL"
	switch services.KindOf(err) {
	case services.KindNotFound:
		code = "NOT_FOUND"
	case services.KindAlreadyExists:
		code = "ALREADY_EXISTS"
	case services.KindUnauthorized:
		code = "UNAUTHORIZED"
	case services.KindUnauthenticated:
		code = "UNAUTHENTICATED"
	case services.KindInvalidCredentials:
		code = "INVALID_CREDENTIALS"
	case services.KindStockInvalid:
		code = "STOCK_INVALID"
	case services.KindInvalidInput:
		code = "BAD_INPUT"
	}
	return &apiError{err: err, code: code}
}
