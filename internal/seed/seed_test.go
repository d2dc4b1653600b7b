package seed

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/careerhub/career-portal-backend/internal/config"
	"github.com/careerhub/career-portal-backend/internal/models"
	"github.com/careerhub/career-portal-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type memoryUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (r *memoryUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memoryUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			found := *u
			return &found, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memoryUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memoryUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		found := *u
		return &found, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memoryUserRepo) UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	u.Password = hash
	return nil
}

func (r *memoryUserRepo) UpdateLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	u.LastLogin = &at
	return nil
}

func (r *memoryUserRepo) FindAll(ctx context.Context) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []*models.User{}
	for _, u := range r.users {
		found := *u
		result = append(result, &found)
	}
	return result, nil
}

func (r *memoryUserRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func seedConfig(password string) *config.Config {
	cfg := &config.Config{}
	cfg.Admin.Username = "admin"
	cfg.Admin.Email = "admin@example.com"
	cfg.Admin.Password = password
	return cfg
}

func TestEnsureAdminSeedsEmptyDatabase(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := services.NewUserService(repo)

	if err := EnsureAdmin(context.Background(), svc, seedConfig("bootstrap-secret")); err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}

	admin, err := repo.FindByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("admin account not created: %v", err)
	}
	if !admin.IsAdmin {
		t.Fatal("seeded account is not an admin")
	}
	if !admin.IsActive {
		t.Fatal("seeded account is not active")
	}
	if admin.Password == "" || admin.Password == "bootstrap-secret" {
		t.Fatal("seeded password not stored as a hash")
	}
}

func TestEnsureAdminIdempotent(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := services.NewUserService(repo)
	cfg := seedConfig("bootstrap-secret")

	for i := 0; i < 3; i++ {
		if err := EnsureAdmin(context.Background(), svc, cfg); err != nil {
			t.Fatalf("EnsureAdmin run %d: %v", i, err)
		}
	}

	count, _ := repo.Count(context.Background())
	if count != 1 {
		t.Fatalf("expected exactly one account, got %d", count)
	}
}

func TestEnsureAdminSkipsWithoutPassword(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := services.NewUserService(repo)

	if err := EnsureAdmin(context.Background(), svc, seedConfig("")); err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}

	count, _ := repo.Count(context.Background())
	if count != 0 {
		t.Fatalf("account created despite empty admin password, count=%d", count)
	}
}

func TestEnsureAdminSkipsWhenUsersExist(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := services.NewUserService(repo)

	if _, err := svc.CreateUser(context.Background(), &models.CreateUserRequest{
		Username: "existing",
		Email:    "existing@example.com",
		Password: "pw",
	}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if err := EnsureAdmin(context.Background(), svc, seedConfig("bootstrap-secret")); err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}

	if _, err := repo.FindByUsername(context.Background(), "admin"); err == nil {
		t.Fatal("admin seeded even though users already exist")
	}
}
