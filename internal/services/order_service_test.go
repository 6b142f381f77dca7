package services_test

import (
	"testing"

	"sellerdesk/internal/domain"
	"sellerdesk/internal/services"
)

func TestCreateOrderHappyPath(t *testing.T) {
	db := memdb(t)
	caller := seedSeller(t, db, "u-ana")
	seedClient(t, db, "c-1", "u-ana")
	seedProduct(t, db, "p-widget", "Widget", 9.99, 5)

	svc := orderSvc(db)
	o, err := svc.Create(services.OrderInput{
		Lines:    []services.LineRequest{{ProductID: "p-widget", Amount: 3}},
		Total:    f64(29.97),
		ClientID: "c-1",
	}, caller)
	if err != nil {
		t.Fatal(err)
	}
	if o.State != domain.StatePending {
		t.Fatalf("new orders must start PENDING, got %s", o.State)
	}
	if o.SellerID != "u-ana" {
		t.Fatalf("order must be owned by the caller, got %s", o.SellerID)
	}
	if o.Total != 29.97 || len(o.Lines) != 1 || o.Lines[0].Amount != 3 {
		t.Fatalf("bad persisted order: %+v", o)
	}
	// round trip: stock 5 -> 2
	if got := stockOf(t, db, "p-widget"); got != 2 {
		t.Fatalf("want stock 2 after order, got %d", got)
	}
}

func TestCreateOrderClientMustExist(t *testing.T) {
	db := memdb(t)
	caller := seedSeller(t, db, "u-ana")

	svc := orderSvc(db)
	_, err := svc.Create(services.OrderInput{
		Lines:    []services.LineRequest{{ProductID: "p-x", Amount: 1}},
		ClientID: "c-ghost",
	}, caller)
	if services.KindOf(err) != services.KindNotFound {
		t.Fatalf("want NotFound, got %v (%v)", services.KindOf(err), err)
	}
}

// Ordering for a client owned by a different seller always fails, regardless
// of line validity, and decrements nothing.
func TestCreateOrderForeignClientIsUnauthorized(t *testing.T) {
	db := memdb(t)
	seedSeller(t, db, "u-ana")
	intruder := seedSeller(t, db, "u-eve")
	seedClient(t, db, "c-1", "u-ana")
	seedProduct(t, db, "p-widget", "Widget", 9.99, 5)

	svc := orderSvc(db)
	_, err := svc.Create(services.OrderInput{
		Lines:    []services.LineRequest{{ProductID: "p-widget", Amount: 1}},
		ClientID: "c-1",
	}, intruder)
	if services.KindOf(err) != services.KindUnauthorized {
		t.Fatalf("want Unauthorized, got %v (%v)", services.KindOf(err), err)
	}
	if got := stockOf(t, db, "p-widget"); got != 5 {
		t.Fatalf("denied order must not touch stock, got %d", got)
	}
}

// A line list naming the same product twice is valid input. The repeats are
// folded into one line; the order persists and stock drops by the sum.
func TestCreateOrderMergesDuplicateProductLines(t *testing.T) {
	db := memdb(t)
	caller := seedSeller(t, db, "u-ana")
	seedClient(t, db, "c-1", "u-ana")
	seedProduct(t, db, "p-widget", "Widget", 9.99, 10)

	svc := orderSvc(db)
	o, err := svc.Create(services.OrderInput{
		Lines: []services.LineRequest{
			{ProductID: "p-widget", Amount: 3},
			{ProductID: "p-widget", Amount: 3},
		},
		ClientID: "c-1",
	}, caller)
	if err != nil {
		t.Fatal(err)
	}
	if len(o.Lines) != 1 || o.Lines[0].Amount != 6 {
		t.Fatalf("want one merged line of 6, got %+v", o.Lines)
	}
	if got := stockOf(t, db, "p-widget"); got != 4 {
		t.Fatalf("want stock 4 after merged order, got %d", got)
	}

	// the merged amount is what gets checked against stock
	_, err = svc.Create(services.OrderInput{
		Lines: []services.LineRequest{
			{ProductID: "p-widget", Amount: 3},
			{ProductID: "p-widget", Amount: 3},
		},
		ClientID: "c-1",
	}, caller)
	if services.KindOf(err) != services.KindStockInvalid {
		t.Fatalf("want StockInvalid, got %v (%v)", services.KindOf(err), err)
	}
	if got := stockOf(t, db, "p-widget"); got != 4 {
		t.Fatalf("refused order must not touch stock, got %d", got)
	}
}

func TestCreateOrderStockFailureAbortsWholeOrder(t *testing.T) {
	db := memdb(t)
	caller := seedSeller(t, db, "u-ana")
	seedClient(t, db, "c-1", "u-ana")
	seedProduct(t, db, "p-a", "Alpha", 1, 10)
	seedProduct(t, db, "p-b", "Bravo", 1, 1)

	svc := orderSvc(db)
	_, err := svc.Create(services.OrderInput{
		Lines: []services.LineRequest{
			{ProductID: "p-a", Amount: 2},
			{ProductID: "p-b", Amount: 4},
		},
		ClientID: "c-1",
	}, caller)
	if services.KindOf(err) != services.KindStockInvalid {
		t.Fatalf("want StockInvalid, got %v (%v)", services.KindOf(err), err)
	}
	if stockOf(t, db, "p-a") != 10 || stockOf(t, db, "p-b") != 1 {
		t.Fatal("aborted order must not leave partial decrements")
	}
	orders, err := svc.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 0 {
		t.Fatalf("no order must be persisted, got %d", len(orders))
	}
}

func TestUpdateOrderStateAndLines(t *testing.T) {
	db := memdb(t)
	caller := seedSeller(t, db, "u-ana")
	seedClient(t, db, "c-1", "u-ana")
	seedProduct(t, db, "p-widget", "Widget", 9.99, 10)

	svc := orderSvc(db)
	o, err := svc.Create(services.OrderInput{
		Lines:    []services.LineRequest{{ProductID: "p-widget", Amount: 2}},
		Total:    f64(19.98),
		ClientID: "c-1",
	}, caller)
	if err != nil {
		t.Fatal(err)
	}

	// state-only update keeps lines and total
	o2, err := svc.Update(o.ID, services.OrderInput{ClientID: "c-1", State: domain.StateCompleted}, caller)
	if err != nil {
		t.Fatal(err)
	}
	if o2.State != domain.StateCompleted || o2.Total != 19.98 || len(o2.Lines) != 1 {
		t.Fatalf("bad updated order: %+v", o2)
	}
	if got := stockOf(t, db, "p-widget"); got != 8 {
		t.Fatalf("state update must not touch stock, got %d", got)
	}

	// new lines re-decrement; stock held by previous lines is not restored
	o3, err := svc.Update(o.ID, services.OrderInput{
		Lines:    []services.LineRequest{{ProductID: "p-widget", Amount: 1}},
		Total:    f64(9.99),
		ClientID: "c-1",
	}, caller)
	if err != nil {
		t.Fatal(err)
	}
	if len(o3.Lines) != 1 || o3.Lines[0].Amount != 1 || o3.Total != 9.99 {
		t.Fatalf("bad relined order: %+v", o3)
	}
	if got := stockOf(t, db, "p-widget"); got != 7 {
		t.Fatalf("want stock 7 (8 minus re-decremented 1), got %d", got)
	}
}

// Supplying a total of zero must stick; omitting the total must not.
func TestUpdateOrderTotalToZero(t *testing.T) {
	db := memdb(t)
	caller := seedSeller(t, db, "u-ana")
	seedClient(t, db, "c-1", "u-ana")
	seedProduct(t, db, "p-widget", "Widget", 9.99, 10)

	svc := orderSvc(db)
	o, err := svc.Create(services.OrderInput{
		Lines:    []services.LineRequest{{ProductID: "p-widget", Amount: 1}},
		Total:    f64(9.99),
		ClientID: "c-1",
	}, caller)
	if err != nil {
		t.Fatal(err)
	}

	o2, err := svc.Update(o.ID, services.OrderInput{ClientID: "c-1", Total: f64(0)}, caller)
	if err != nil {
		t.Fatal(err)
	}
	if o2.Total != 0 {
		t.Fatalf("want total 0, got %v", o2.Total)
	}

	o3, err := svc.Update(o.ID, services.OrderInput{ClientID: "c-1", State: domain.StateCompleted}, caller)
	if err != nil {
		t.Fatal(err)
	}
	if o3.Total != 0 {
		t.Fatalf("omitted total must stay put, got %v", o3.Total)
	}
}

// The order's own seller is guarded, so an intruder cannot take over an
// order by pointing it at a client they do own.
func TestUpdateOrderCannotBeHijackedViaOwnClient(t *testing.T) {
	db := memdb(t)
	owner := seedSeller(t, db, "u-ana")
	intruder := seedSeller(t, db, "u-eve")
	seedClient(t, db, "c-ana", "u-ana")
	seedClient(t, db, "c-eve", "u-eve")
	seedProduct(t, db, "p-widget", "Widget", 9.99, 10)

	svc := orderSvc(db)
	o, err := svc.Create(services.OrderInput{
		Lines:    []services.LineRequest{{ProductID: "p-widget", Amount: 1}},
		ClientID: "c-ana",
	}, owner)
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.Update(o.ID, services.OrderInput{ClientID: "c-eve", State: domain.StateCanceled}, intruder)
	if services.KindOf(err) != services.KindUnauthorized {
		t.Fatalf("want Unauthorized, got %v (%v)", services.KindOf(err), err)
	}
	got, err := svc.Get(o.ID, owner)
	if err != nil {
		t.Fatal(err)
	}
	if got.ClientID != "c-ana" || got.State != domain.StatePending {
		t.Fatalf("denied update must not stick: %+v", got)
	}
}

func TestUpdateOrderUnknownOrderAndState(t *testing.T) {
	db := memdb(t)
	caller := seedSeller(t, db, "u-ana")
	seedClient(t, db, "c-1", "u-ana")
	seedProduct(t, db, "p-widget", "Widget", 9.99, 5)

	svc := orderSvc(db)
	if _, err := svc.Update("o-ghost", services.OrderInput{ClientID: "c-1"}, caller); services.KindOf(err) != services.KindNotFound {
		t.Fatalf("want NotFound for unknown order, got %v", err)
	}

	o, err := svc.Create(services.OrderInput{
		Lines:    []services.LineRequest{{ProductID: "p-widget", Amount: 1}},
		ClientID: "c-1",
	}, caller)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Update(o.ID, services.OrderInput{ClientID: "c-1", State: "SHIPPED"}, caller); services.KindOf(err) != services.KindInvalidInput {
		t.Fatalf("want InvalidInput for unknown state, got %v", err)
	}
}

func TestMutationsByNonOwnerFailAndMutateNothing(t *testing.T) {
	db := memdb(t)
	owner := seedSeller(t, db, "u-ana")
	intruder := seedSeller(t, db, "u-eve")
	seedClient(t, db, "c-1", "u-ana")
	seedProduct(t, db, "p-widget", "Widget", 9.99, 5)

	svc := orderSvc(db)
	o, err := svc.Create(services.OrderInput{
		Lines:    []services.LineRequest{{ProductID: "p-widget", Amount: 1}},
		ClientID: "c-1",
	}, owner)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Get(o.ID, intruder); services.KindOf(err) != services.KindUnauthorized {
		t.Fatalf("get: want Unauthorized, got %v", err)
	}
	if _, err := svc.Update(o.ID, services.OrderInput{ClientID: "c-1", State: domain.StateCanceled}, intruder); services.KindOf(err) != services.KindUnauthorized {
		t.Fatalf("update: want Unauthorized, got %v", err)
	}
	if _, err := svc.Delete(o.ID, intruder); services.KindOf(err) != services.KindUnauthorized {
		t.Fatalf("delete: want Unauthorized, got %v", err)
	}

	// record is intact
	got, err := svc.Get(o.ID, owner)
	if err != nil {
		t.Fatal(err)
	}
	if got.State != domain.StatePending {
		t.Fatalf("denied update must not change state, got %s", got.State)
	}
}

func TestDeleteOrderReturnsDeletedRecord(t *testing.T) {
	db := memdb(t)
	caller := seedSeller(t, db, "u-ana")
	seedClient(t, db, "c-1", "u-ana")
	seedProduct(t, db, "p-widget", "Widget", 9.99, 5)

	svc := orderSvc(db)
	o, err := svc.Create(services.OrderInput{
		Lines:    []services.LineRequest{{ProductID: "p-widget", Amount: 1}},
		ClientID: "c-1",
	}, caller)
	if err != nil {
		t.Fatal(err)
	}

	deleted, err := svc.Delete(o.ID, caller)
	if err != nil {
		t.Fatal(err)
	}
	if deleted.ID != o.ID {
		t.Fatalf("want deleted record back, got %+v", deleted)
	}
	if _, err := svc.Get(o.ID, caller); services.KindOf(err) != services.KindNotFound {
		t.Fatalf("order must be gone, got %v", err)
	}
}

func TestListSellerScopesAndStates(t *testing.T) {
	db := memdb(t)
	ana := seedSeller(t, db, "u-ana")
	bob := seedSeller(t, db, "u-bob")
	seedClient(t, db, "c-ana", "u-ana")
	seedClient(t, db, "c-bob", "u-bob")
	seedProduct(t, db, "p-widget", "Widget", 9.99, 50)

	svc := orderSvc(db)
	mk := func(caller *domain.Claims, clientID string) domain.Order {
		o, err := svc.Create(services.OrderInput{
			Lines:    []services.LineRequest{{ProductID: "p-widget", Amount: 1}},
			ClientID: clientID,
		}, caller)
		if err != nil {
			t.Fatal(err)
		}
		return o
	}
	a1 := mk(ana, "c-ana")
	mk(ana, "c-ana")
	mk(bob, "c-bob")

	if _, err := svc.Update(a1.ID, services.OrderInput{ClientID: "c-ana", State: domain.StateCompleted}, ana); err != nil {
		t.Fatal(err)
	}

	mine, err := svc.ListSeller(ana)
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 2 {
		t.Fatalf("want 2 orders for ana, got %d", len(mine))
	}
	completed, err := svc.ListSellerState(domain.StateCompleted, ana)
	if err != nil {
		t.Fatal(err)
	}
	if len(completed) != 1 || completed[0].ID != a1.ID {
		t.Fatalf("bad state filter: %+v", completed)
	}
	if _, err := svc.ListSellerState("BOGUS", ana); services.KindOf(err) != services.KindInvalidInput {
		t.Fatalf("want InvalidInput for unknown state, got %v", err)
	}
	if _, err := svc.ListSeller(nil); services.KindOf(err) != services.KindUnauthenticated {
		t.Fatalf("want Unauthenticated without caller, got %v", err)
	}
}
