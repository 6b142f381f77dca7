package graph

import (
	"github.com/graphql-go/graphql"

	"sellerdesk/internal/domain"
)

// NewSchema wires the full query/mutation surface against the resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	orderStateEnum := graphql.NewEnum(graphql.EnumConfig{
		Name: "OrderState",
		Values: graphql.EnumValueConfigMap{
			domain.StatePending:   &graphql.EnumValueConfig{Value: domain.StatePending},
			domain.StateCompleted: &graphql.EnumValueConfig{Value: domain.StateCompleted},
			domain.StateCanceled:  &graphql.EnumValueConfig{Value: domain.StateCanceled},
		},
	})

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.ID},
			"name":       &graphql.Field{Type: graphql.String},
			"last_name":  &graphql.Field{Type: graphql.String},
			"phone":      &graphql.Field{Type: graphql.String},
			"email":      &graphql.Field{Type: graphql.String},
			"created_at": &graphql.Field{Type: graphql.String},
		},
	})

	tokenType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Token",
		Fields: graphql.Fields{
			"token": &graphql.Field{Type: graphql.String},
		},
	})

	productType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.ID},
			"name":       &graphql.Field{Type: graphql.String},
			"price":      &graphql.Field{Type: graphql.Float},
			"stock":      &graphql.Field{Type: graphql.Int},
			"created_at": &graphql.Field{Type: graphql.String},
		},
	})

	clientType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Client",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.ID},
			"name":       &graphql.Field{Type: graphql.String},
			"last_name":  &graphql.Field{Type: graphql.String},
			"business":   &graphql.Field{Type: graphql.String},
			"email":      &graphql.Field{Type: graphql.String},
			"phone":      &graphql.Field{Type: graphql.String},
			"seller":     &graphql.Field{Type: graphql.ID},
			"created_at": &graphql.Field{Type: graphql.String},
		},
	})

	orderLineType := graphql.NewObject(graphql.ObjectConfig{
		Name: "OrderGroup",
		Fields: graphql.Fields{
			"id":     &graphql.Field{Type: graphql.ID},
			"amount": &graphql.Field{Type: graphql.Int},
			"name":   &graphql.Field{Type: graphql.String},
			"price":  &graphql.Field{Type: graphql.Float},
		},
	})

	orderType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Order",
		Fields: graphql.Fields{
			"id":     &graphql.Field{Type: graphql.ID},
			"orders": &graphql.Field{Type: graphql.NewList(orderLineType)},
			"total":  &graphql.Field{Type: graphql.Float},
			"client": &graphql.Field{
				Type:    clientType,
				Resolve: r.orderClient,
			},
			"seller":     &graphql.Field{Type: graphql.ID},
			"state":      &graphql.Field{Type: orderStateEnum},
			"created_at": &graphql.Field{Type: graphql.String},
		},
	})

	topClientType := graphql.NewObject(graphql.ObjectConfig{
		Name: "TopClient",
		Fields: graphql.Fields{
			"total":  &graphql.Field{Type: graphql.Float},
			"client": &graphql.Field{Type: clientType},
		},
	})

	topSellerType := graphql.NewObject(graphql.ObjectConfig{
		Name: "TopSeller",
		Fields: graphql.Fields{
			"total":  &graphql.Field{Type: graphql.Float},
			"seller": &graphql.Field{Type: userType},
		},
	})

	userInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UserInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"last_name": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"phone":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	authenticateInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "AuthenticateInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	productInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ProductInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"price": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
			"stock": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	clientInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ClientInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"last_name": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"business":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"phone":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	orderLineInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "OrderGroupInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"amount": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"name":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"price":  &graphql.InputObjectFieldConfig{Type: graphql.Float},
		},
	})

	orderInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "OrderInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"orders": &graphql.InputObjectFieldConfig{Type: graphql.NewList(orderLineInput)},
			"total":  &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"client": &graphql.InputObjectFieldConfig{Type: graphql.ID},
			"state":  &graphql.InputObjectFieldConfig{Type: orderStateEnum},
		},
	})

	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"getUser": &graphql.Field{Type: userType, Resolve: r.getUser},

			"getProducts": &graphql.Field{Type: graphql.NewList(productType), Resolve: r.getProducts},
			"getProduct":  &graphql.Field{Type: productType, Args: idArg, Resolve: r.getProduct},

			"getClients":        &graphql.Field{Type: graphql.NewList(clientType), Resolve: r.getClients},
			"getClientsSeller":  &graphql.Field{Type: graphql.NewList(clientType), Resolve: r.getClientsSeller},
			"getSpecificClient": &graphql.Field{Type: clientType, Args: idArg, Resolve: r.getSpecificClient},

			"getOrders":       &graphql.Field{Type: graphql.NewList(orderType), Resolve: r.getOrders},
			"getOrdersSeller": &graphql.Field{Type: graphql.NewList(orderType), Resolve: r.getOrdersSeller},
			"getOrder":        &graphql.Field{Type: orderType, Args: idArg, Resolve: r.getOrder},
			"getOrderStatus": &graphql.Field{
				Type: graphql.NewList(orderType),
				Args: graphql.FieldConfigArgument{
					"state": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.getOrderStatus,
			},

			"getTopClients": &graphql.Field{Type: graphql.NewList(topClientType), Resolve: r.getTopClients},
			"getTopSellers": &graphql.Field{Type: graphql.NewList(topSellerType), Resolve: r.getTopSellers},
			"searchProduct": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"search": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.searchProduct,
			},
		},
	})

	inputArg := func(t *graphql.InputObject) graphql.FieldConfigArgument {
		return graphql.FieldConfigArgument{
			"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t)},
		}
	}
	idInputArgs := func(t *graphql.InputObject) graphql.FieldConfigArgument {
		return graphql.FieldConfigArgument{
			"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t)},
		}
	}

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"addUser":          &graphql.Field{Type: userType, Args: inputArg(userInput), Resolve: r.addUser},
			"authenticateUser": &graphql.Field{Type: tokenType, Args: inputArg(authenticateInput), Resolve: r.authenticateUser},

			"addProduct":    &graphql.Field{Type: productType, Args: inputArg(productInput), Resolve: r.addProduct},
			"updateProduct": &graphql.Field{Type: productType, Args: idInputArgs(productInput), Resolve: r.updateProduct},
			"deleteProduct": &graphql.Field{Type: productType, Args: idArg, Resolve: r.deleteProduct},

			"addClient":    &graphql.Field{Type: clientType, Args: inputArg(clientInput), Resolve: r.addClient},
			"updateClient": &graphql.Field{Type: clientType, Args: idInputArgs(clientInput), Resolve: r.updateClient},
			"deleteClient": &graphql.Field{Type: clientType, Args: idArg, Resolve: r.deleteClient},

			"addOrder":    &graphql.Field{Type: orderType, Args: inputArg(orderInput), Resolve: r.addOrder},
			"updateOrder": &graphql.Field{Type: orderType, Args: idInputArgs(orderInput), Resolve: r.updateOrder},
			"deleteOrder": &graphql.Field{Type: orderType, Args: idArg, Resolve: r.deleteOrder},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}
