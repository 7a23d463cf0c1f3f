package services

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/amitxthedev/Zenox-Dev-Apis/domain"
	"github.com/amitxthedev/Zenox-Dev-Apis/repositories"
)

const testSecret = "test-secret"

func newAuthService() (*AuthService, *repositories.InMemoryUserStore) {
	store := repositories.NewInMemoryUserStore()
	return NewAuthService(store, testSecret, 168), store
}

func TestRegister_Success(t *testing.T) {
	svc, store := newAuthService()

	token, user, err := svc.Register("Admin", "admin@zenox.dev", "s3cret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}
	if user.Role != "admin" {
		t.Fatalf("expected role admin, got %q", user.Role)
	}

	stored, err := store.GetByEmail("admin@zenox.dev")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if stored.Password == "s3cret" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	svc, _ := newAuthService()

	cases := [][3]string{
		{"", "a@b.c", "pw"},
		{"Admin", "", "pw"},
		{"Admin", "a@b.c", ""},
	}
	for _, c := range cases {
		if _, _, err := svc.Register(c[0], c[1], c[2]); !domain.IsValidation(err) {
			t.Fatalf("expected validation error for %v, got %v", c, err)
		}
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthService()

	if _, _, err := svc.Register("Admin", "admin@zenox.dev", "pw"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, _, err := svc.Register("Other", "admin@zenox.dev", "pw2")
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newAuthService()
	if _, _, err := svc.Register("Admin", "admin@zenox.dev", "s3cret"); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, user, err := svc.Login("admin@zenox.dev", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || user.Email != "admin@zenox.dev" {
		t.Fatalf("unexpected login result: token=%q user=%+v", token, user)
	}
}

func TestLogin_GenericFailureMessage(t *testing.T) {
	svc, _ := newAuthService()
	if _, _, err := svc.Register("Admin", "admin@zenox.dev", "s3cret"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, wrongPassword := svc.Login("admin@zenox.dev", "nope")
	_, _, unknownEmail := svc.Login("ghost@zenox.dev", "nope")

	for _, err := range []error{wrongPassword, unknownEmail} {
		if !domain.IsAuthentication(err) {
			t.Fatalf("expected authentication error, got %v", err)
		}
	}

	// Neither message may disclose whether the email exists.
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatalf("failure messages differ: %q vs %q", wrongPassword, unknownEmail)
	}
	if strings.Contains(strings.ToLower(wrongPassword.Error()), "password") ||
		strings.Contains(strings.ToLower(wrongPassword.Error()), "email") {
		t.Fatalf("message leaks which credential failed: %q", wrongPassword)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _ := newAuthService()

	if _, _, err := svc.Login("", "pw"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, _, err := svc.Login("a@b.c", ""); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCurrentUser_RoundTrip(t *testing.T) {
	svc, _ := newAuthService()
	token, registered, err := svc.Register("Admin", "admin@zenox.dev", "s3cret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := svc.CurrentUser(token)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if user.ID != registered.ID || user.Email != registered.Email {
		t.Fatalf("wrong user resolved: %+v", user)
	}
}

func TestCurrentUser_BadToken(t *testing.T) {
	svc, _ := newAuthService()

	if _, err := svc.CurrentUser(""); !domain.IsAuthentication(err) {
		t.Fatalf("expected authentication error for empty token, got %v", err)
	}
	if _, err := svc.CurrentUser("not.a.jwt"); !domain.IsAuthentication(err) {
		t.Fatalf("expected authentication error for garbage token, got %v", err)
	}

	// Token signed with a different secret.
	other := NewAuthService(repositories.NewInMemoryUserStore(), "other-secret", 168)
	token, _, err := other.Register("Admin", "admin@zenox.dev", "pw")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.CurrentUser(token); !domain.IsAuthentication(err) {
		t.Fatalf("expected authentication error for foreign signature, got %v", err)
	}
}

func TestCurrentUser_DeletedUser(t *testing.T) {
	svc, _ := newAuthService()
	token, _, err := svc.Register("Admin", "admin@zenox.dev", "pw")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// A valid token referencing a user the store no longer has.
	fresh := NewAuthService(repositories.NewInMemoryUserStore(), testSecret, 168)
	if _, err := fresh.CurrentUser(token); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
