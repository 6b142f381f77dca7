package graph

import (
	"sellerdesk/internal/domain"
	"sellerdesk/internal/services"
	"sellerdesk/internal/validate"

	"github.com/graphql-go/graphql"
)

// Resolver binds the graph surface to the service layer.
type Resolver struct {
	Auth    *services.AuthService
	Catalog *services.CatalogService
	Clients *services.ClientService
	Orders  *services.OrderService
	Reports *services.ReportService
}

// ---------- argument decoding ----------

func argMap(p graphql.ResolveParams, key string) map[string]interface{} {
	m, _ := p.Args[key].(map[string]interface{})
	return m
}

func argID(p graphql.ResolveParams) (string, error) {
	raw, _ := p.Args["id"].(string)
	id, ok := validate.ID(raw)
	if !ok {
		return "", wrap(&services.Error{Kind: services.KindInvalidInput, Msg: "invalid id"})
	}
	return id, nil
}

func str(m map[string]interface{}, k string) string {
	v, _ := m[k].(string)
	return v
}

func num(m map[string]interface{}, k string) float64 {
	switch v := m[k].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func whole(m map[string]interface{}, k string) int {
	switch v := m[k].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

func lineRequests(m map[string]interface{}, k string) []services.LineRequest {
	raw, _ := m[k].([]interface{})
	if len(raw) == 0 {
		return nil
	}
	out := make([]services.LineRequest, 0, len(raw))
	for _, item := range raw {
		lm, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		out = append(out, services.LineRequest{
			ProductID: str(lm, "id"),
			Amount:    whole(lm, "amount"),
			Name:      str(lm, "name"),
			Price:     num(lm, "price"),
		})
	}
	return out
}

func orderInput(m map[string]interface{}) services.OrderInput {
	in := services.OrderInput{
		Lines:    lineRequests(m, "orders"),
		ClientID: str(m, "client"),
		State:    str(m, "state"),
	}
	if _, ok := m["total"]; ok {
		t := num(m, "total")
		in.Total = &t
	}
	return in
}

// ---------- queries ----------

func (r *Resolver) getUser(p graphql.ResolveParams) (interface{}, error) {
	caller := ClaimsFrom(p.Context)
	if caller == nil {
		return nil, wrap(services.ErrNotLoggedIn)
	}
	return caller, nil
}

func (r *Resolver) getProducts(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.Catalog.List()
	return out, wrap(err)
}

func (r *Resolver) getProduct(p graphql.ResolveParams) (interface{}, error) {
	id, err := argID(p)
	if err != nil {
		return nil, err
	}
	out, err := r.Catalog.Get(id)
	if err != nil {
		return nil, wrap(err)
	}
	return out, nil
}

func (r *Resolver) getClients(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.Clients.List()
	return out, wrap(err)
}

func (r *Resolver) getClientsSeller(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.Clients.ListSeller(ClaimsFrom(p.Context))
	return out, wrap(err)
}

func (r *Resolver) getSpecificClient(p graphql.ResolveParams) (interface{}, error) {
	id, err := argID(p)
	if err != nil {
		return nil, err
	}
	out, err := r.Clients.Get(id, ClaimsFrom(p.Context))
	if err != nil {
		return nil, wrap(err)
	}
	return out, nil
}

func (r *Resolver) getOrders(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.Orders.List()
	return out, wrap(err)
}

func (r *Resolver) getOrdersSeller(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.Orders.ListSeller(ClaimsFrom(p.Context))
	return out, wrap(err)
}

func (r *Resolver) getOrder(p graphql.ResolveParams) (interface{}, error) {
	id, err := argID(p)
	if err != nil {
		return nil, err
	}
	out, err := r.Orders.Get(id, ClaimsFrom(p.Context))
	if err != nil {
		return nil, wrap(err)
	}
	return out, nil
}

func (r *Resolver) getOrderStatus(p graphql.ResolveParams) (interface{}, error) {
	state, _ := p.Args["state"].(string)
	out, err := r.Orders.ListSellerState(state, ClaimsFrom(p.Context))
	return out, wrap(err)
}

func (r *Resolver) getTopClients(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.Reports.TopClients()
	return out, wrap(err)
}

func (r *Resolver) getTopSellers(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.Reports.TopSellers()
	return out, wrap(err)
}

func (r *Resolver) searchProduct(p graphql.ResolveParams) (interface{}, error) {
	q, ok := validate.Q(str(p.Args, "search"))
	if !ok {
		return nil, wrap(&services.Error{Kind: services.KindInvalidInput, Msg: "invalid search query"})
	}
	out, err := r.Catalog.Search(q)
	return out, wrap(err)
}

// orderClient populates the client field on order payloads.
func (r *Resolver) orderClient(p graphql.ResolveParams) (interface{}, error) {
	o, ok := p.Source.(domain.Order)
	if !ok {
		return nil, nil
	}
	out, err := r.Clients.Lookup(o.ClientID)
	if err != nil {
		return nil, wrap(err)
	}
	return out, nil
}

// ---------- mutations ----------

func (r *Resolver) addUser(p graphql.ResolveParams) (interface{}, error) {
	in := argMap(p, "input")
	email, ok := validate.Email(str(in, "email"))
	if !ok {
		return nil, wrap(&services.Error{Kind: services.KindInvalidInput, Msg: "invalid email"})
	}
	if !validate.Password(str(in, "password")) {
		return nil, wrap(&services.Error{Kind: services.KindInvalidInput, Msg: "password must be 6-72 characters"})
	}
	u, err := r.Auth.Register(services.RegisterInput{
		Name:     str(in, "name"),
		LastName: str(in, "last_name"),
		Phone:    str(in, "phone"),
		Email:    email,
		Password: str(in, "password"),
	})
	if err != nil {
		return nil, wrap(err)
	}
	return *u, nil
}

func (r *Resolver) authenticateUser(p graphql.ResolveParams) (interface{}, error) {
	in := argMap(p, "input")
	token, err := r.Auth.Authenticate(str(in, "email"), str(in, "password"))
	if err != nil {
		return nil, wrap(err)
	}
	return map[string]interface{}{"token": token}, nil
}

func (r *Resolver) addProduct(p graphql.ResolveParams) (interface{}, error) {
	in := argMap(p, "input")
	out, err := r.Catalog.Create(services.ProductInput{
		Name:  str(in, "name"),
		Price: num(in, "price"),
		Stock: whole(in, "stock"),
	})
	if err != nil {
		return nil, wrap(err)
	}
	return out, nil
}

func (r *Resolver) updateProduct(p graphql.ResolveParams) (interface{}, error) {
	id, err := argID(p)
	if err != nil {
		return nil, err
	}
	in := argMap(p, "input")
	out, err := r.Catalog.Update(id, services.ProductInput{
		Name:  str(in, "name"),
		Price: num(in, "price"),
		Stock: whole(in, "stock"),
	})
	if err != nil {
		return nil, wrap(err)
	}
	return out, nil
}

func (r *Resolver) deleteProduct(p graphql.ResolveParams) (interface{}, error) {
	id, err := argID(p)
	if err != nil {
		return nil, err
	}
	out, err := r.Catalog.Delete(id)
	if err != nil {
		return nil, wrap(err)
	}
	return out, nil
}

func clientInput(m map[string]interface{}) services.ClientInput {
	return services.ClientInput{
		Name:     str(m, "name"),
		LastName: str(m, "last_name"),
		Business: str(m, "business"),
		Email:    str(m, "email"),
		Phone:    str(m, "phone"),
	}
}

func (r *Resolver) addClient(p graphql.ResolveParams) (interface{}, error) {
	in := clientInput(argMap(p, "input"))
	if _, ok := validate.Email(in.Email); !ok {
		return nil, wrap(&services.Error{Kind: services.KindInvalidInput, Msg: "invalid email"})
	}
	out, err := r.Clients.Create(in, ClaimsFrom(p.Context))
	if err != nil {
		return nil, wrap(err)
	}
	return out, nil
}

func (r *Resolver) updateClient(p graphql.ResolveParams) (interface{}, error) {
	id, err := argID(p)
	if err != nil {
		return nil, err
	}
	out, err := r.Clients.Update(id, clientInput(argMap(p, "input")), ClaimsFrom(p.Context))
	if err != nil {
		return nil, wrap(err)
	}
	return out, nil
}

func (r *Resolver) deleteClient(p graphql.ResolveParams) (interface{}, error) {
	id, err := argID(p)
	if err != nil {
		return nil, err
	}
	out, err := r.Clients.Delete(id, ClaimsFrom(p.Context))
	if err != nil {
		return nil, wrap(err)
	}
	return out, nil
}

func (r *Resolver) addOrder(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.Orders.Create(orderInput(argMap(p, "input")), ClaimsFrom(p.Context))
	if err != nil {
		return nil, wrap(err)
	}
	return out, nil
}

func (r *Resolver) updateOrder(p graphql.ResolveParams) (interface{}, error) {
	id, err := argID(p)
	if err != nil {
		return nil, err
	}
	out, err := r.Orders.Update(id, orderInput(argMap(p, "input")), ClaimsFrom(p.Context))
	if err != nil {
		return nil, wrap(err)
	}
	return out, nil
}

func (r *Resolver) deleteOrder(p graphql.ResolveParams) (interface{}, error) {
	id, err := argID(p)
	if err != nil {
		return nil, err
	}
	out, err := r.Orders.Delete(id, ClaimsFrom(p.Context))
	if err != nil {
		return nil, wrap(err)
	}
	return out, nil
}
