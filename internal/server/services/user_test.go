package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/inkpost/internal/common"
	"github.com/dmitrijs2005/inkpost/internal/server/auth"
	"github.com/dmitrijs2005/inkpost/internal/server/config"
	"github.com/dmitrijs2005/inkpost/internal/server/models"
)

// --- helpers ---

type fakeUsersRepo struct {
	created   []*models.User
	createErr error

	byEmail    map[string]*models.User
	byEmailErr error

	byID    map[string]*models.User
	byIDErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func newUserService(repo *fakeUsersRepo) *UserService {
	cfg := &config.Config{SecretKey: "k"}
	return NewUserService(repo, cfg)
}

// --- Register ---

func TestRegister_Success(t *testing.T) {
	repo := &fakeUsersRepo{}
	s := newUserService(repo)

	tok, err := s.Register(context.Background(), "Alice", "alice@example.com", "pw")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if tok == "" {
		t.Fatal("expected a token")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected exactly one created user, got %d", len(repo.created))
	}

	u := repo.created[0]
	if u.ID == "" || u.Name != "Alice" || u.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if u.PasswordHash == "pw" || u.PasswordHash == "" {
		t.Fatalf("password must be stored hashed, got %q", u.PasswordHash)
	}
	if !auth.CheckPassword(u.PasswordHash, "pw") {
		t.Fatal("stored hash does not verify against the original password")
	}

	// the token must decode to the created user's id
	gotID, err := auth.GetUserIDFromToken(tok, []byte("k"))
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if gotID != u.ID {
		t.Fatalf("token user id mismatch: got %q want %q", gotID, u.ID)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &fakeUsersRepo{createErr: common.ErrorConflict}
	s := newUserService(repo)

	_, err := s.Register(context.Background(), "Bob", "alice@example.com", "pw")
	if !errors.Is(err, common.ErrorConflict) {
		t.Fatalf("want common.ErrorConflict, got %v", err)
	}
}

func TestRegister_RepoError(t *testing.T) {
	repo := &fakeUsersRepo{createErr: errors.New("db down")}
	s := newUserService(repo)

	_, err := s.Register(context.Background(), "Bob", "bob@example.com", "pw")
	if err == nil || errors.Is(err, common.ErrorConflict) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}

// --- Login ---

func loginFixture(t *testing.T) *fakeUsersRepo {
	t.Helper()
	hash, err := auth.HashPassword("correct")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	return &fakeUsersRepo{
		byEmail: map[string]*models.User{
			"alice@example.com": {ID: "u-1", Email: "alice@example.com", PasswordHash: hash},
		},
	}
}

func TestLogin_Success(t *testing.T) {
	s := newUserService(loginFixture(t))

	tok, err := s.Login(context.Background(), "alice@example.com", "correct")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	gotID, err := auth.GetUserIDFromToken(tok, []byte("k"))
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if gotID != "u-1" {
		t.Fatalf("token user id mismatch: got %q", gotID)
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLogin_UnknownEmailAndWrongPassword_SameOutcome(t *testing.T) {
	s := newUserService(loginFixture(t))

	_, errUnknown := s.Login(context.Background(), "ghost@example.com", "correct")
	_, errWrongPw := s.Login(context.Background(), "alice@example.com", "nope")

	if !errors.Is(errUnknown, common.ErrorUnauthorized) {
		t.Fatalf("unknown email: want common.ErrorUnauthorized, got %v", errUnknown)
	}
	if !errors.Is(errWrongPw, common.ErrorUnauthorized) {
		t.Fatalf("wrong password: want common.ErrorUnauthorized, got %v", errWrongPw)
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("outcomes differ: %v vs %v", errUnknown, errWrongPw)
	}
}

func TestLogin_RepoError(t *testing.T) {
	repo := loginFixture(t)
	repo.byEmailErr = errors.New("db down")
	s := newUserService(repo)

	_, err := s.Login(context.Background(), "alice@example.com", "correct")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("want common.ErrorInternal, got %v", err)
	}
}

// --- GetByID ---

func TestGetByID_PassthroughNotFound(t *testing.T) {
	s := newUserService(&fakeUsersRepo{})

	_, err := s.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
