package user_test

import (
	"testing"

	"schedly/models"
	"schedly/services/user"
	"schedly/utils"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type memUserRepo struct {
	users       map[string]*models.User
	updateCalls int
}

func newMemUserRepo(seed ...*models.User) *memUserRepo {
	r := &memUserRepo{users: make(map[string]*models.User)}
	for _, u := range seed {
		cp := *u
		r.users[u.ID] = &cp
	}
	return r
}

func (r *memUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Create(u *models.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) UpdateSetDocument(id string, fields bson.M) error {
	r.updateCalls++
	u := r.users[id]
	for k, v := range fields {
		s, _ := v.(string)
		switch k {
		case "firstName":
			u.FirstName = s
		case "lastName":
			u.LastName = s
		case "email":
			u.Email = s
		case "avatar":
			u.Avatar = s
		case "passwordHash":
			u.PasswordHash = s
		}
	}
	return nil
}

func seedUser() *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.MinCost)
	return &models.User{
		ID:           "user-1",
		FirstName:    "Alice",
		LastName:     "Ng",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	}
}

func TestGetProfile(t *testing.T) {
	svc := &user.DefaultUserService{Repo: newMemUserRepo(seedUser())}

	got, err := svc.GetProfile("user-1")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", got.Email)

	_, err = svc.GetProfile("missing")
	require.Equal(t, utils.CodeNotFound, utils.CodeOf(err))
}

func TestUpdateProfile(t *testing.T) {
	t.Run("partial update skips empty fields", func(t *testing.T) {
		repo := newMemUserRepo(seedUser())
		svc := &user.DefaultUserService{Repo: repo}

		updated, err := svc.UpdateProfile("user-1", user.UpdateProfileInput{FirstName: "Alicia"})
		require.NoError(t, err)
		require.Equal(t, "Alicia", updated.FirstName)
		require.Equal(t, "Ng", updated.LastName)
		require.Equal(t, "alice@example.com", updated.Email)
	})

	t.Run("password change re-hashes", func(t *testing.T) {
		seed := seedUser()
		repo := newMemUserRepo(seed)
		svc := &user.DefaultUserService{Repo: repo}

		updated, err := svc.UpdateProfile("user-1", user.UpdateProfileInput{Password: "new-password"})
		require.NoError(t, err)
		require.NotEqual(t, seed.PasswordHash, updated.PasswordHash)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("new-password")))
	})

	t.Run("empty input writes nothing", func(t *testing.T) {
		repo := newMemUserRepo(seedUser())
		svc := &user.DefaultUserService{Repo: repo}

		_, err := svc.UpdateProfile("user-1", user.UpdateProfileInput{})
		require.NoError(t, err)
		require.Zero(t, repo.updateCalls)
	})

	t.Run("unknown user reported as not found", func(t *testing.T) {
		svc := &user.DefaultUserService{Repo: newMemUserRepo()}
		_, err := svc.UpdateProfile("missing", user.UpdateProfileInput{FirstName: "x"})
		require.Equal(t, utils.CodeNotFound, utils.CodeOf(err))
	})
}
