package services_test

import (
	"strings"
	"testing"
	"time"

	"sellerdesk/internal/repos"
	"sellerdesk/internal/services"
)

func authSvc(t *testing.T) *services.AuthService {
	t.Helper()
	db := memdb(t)
	return services.NewAuthService(repos.NewUserRepo(db), "test-secret", time.Hour)
}

func TestRegisterHashesPasswordAndRejectsDuplicates(t *testing.T) {
	svc := authSvc(t)
	in := services.RegisterInput{
		Name: "Ana", LastName: "García", Phone: "555-0100",
		Email: "ana@sellerdesk.test", Password: "Passw0rd!",
	}
	u, err := svc.Register(in)
	if err != nil {
		t.Fatal(err)
	}
	if u.ID == "" || u.Email != in.Email {
		t.Fatalf("bad user: %+v", u)
	}

	stored, err := svc.Users.ByID(u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(stored.Hash, "Passw0rd!") || !strings.HasPrefix(stored.Hash, "$2") {
		t.Fatalf("password not bcrypt-hashed: %s", stored.Hash)
	}

	// same email, different case
	in.Email = "ANA@sellerdesk.test"
	if _, err := svc.Register(in); services.KindOf(err) != services.KindAlreadyExists {
		t.Fatalf("want AlreadyExists, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc := authSvc(t)
	u, err := svc.Register(services.RegisterInput{
		Name: "Ana", LastName: "García", Phone: "555-0100",
		Email: "ana@sellerdesk.test", Password: "Passw0rd!",
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Authenticate("nobody@sellerdesk.test", "Passw0rd!"); services.KindOf(err) != services.KindNotFound {
		t.Fatalf("unknown user: want NotFound, got %v", err)
	}
	if _, err := svc.Authenticate("ana@sellerdesk.test", "wrong-pass"); services.KindOf(err) != services.KindInvalidCredentials {
		t.Fatalf("wrong password: want InvalidCredentials, got %v", err)
	}

	token, err := svc.Authenticate("ana@sellerdesk.test", "Passw0rd!")
	if err != nil {
		t.Fatal(err)
	}
	claims, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.ID != u.ID || claims.Email != u.Email || claims.LastName != "García" {
		t.Fatalf("token does not round-trip the user: %+v", claims)
	}
}

func TestVerifyTokenRejectsGarbageAndForeignSignature(t *testing.T) {
	svc := authSvc(t)
	if _, err := svc.VerifyToken("not-a-token"); services.KindOf(err) != services.KindUnauthenticated {
		t.Fatalf("garbage token: want Unauthenticated, got %v", err)
	}

	other := authSvc(t)
	other.Secret = []byte("different-secret")
	if _, err := other.Register(services.RegisterInput{
		Name: "Eve", LastName: "X", Phone: "1", Email: "eve@sellerdesk.test", Password: "hunter22",
	}); err != nil {
		t.Fatal(err)
	}
	foreign, err := other.Authenticate("eve@sellerdesk.test", "hunter22")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.VerifyToken(foreign); services.KindOf(err) != services.KindUnauthenticated {
		t.Fatalf("foreign signature: want Unauthenticated, got %v", err)
	}
}
