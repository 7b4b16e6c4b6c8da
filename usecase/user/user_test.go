package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskhub/backend/domain"
	"github.com/taskhub/backend/repository"
)

type mockUserRepo struct {
	emailExistsFunc func(ctx context.Context, email string) (bool, error)
	getByIDFunc     func(ctx context.Context, id int64) (*domain.User, error)
	createFunc      func(ctx context.Context, user *domain.User) (*domain.User, error)
	updateFunc      func(ctx context.Context, id int64, upd repository.UserUpdate) (*domain.User, error)
	deleteFunc      func(ctx context.Context, id int64) (bool, error)

	createCalls int
	updateCalls int
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	m.createCalls++
	return m.createFunc(ctx, user)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockUserRepo) List(ctx context.Context, params repository.ListParams) ([]domain.User, int64, error) {
	return nil, 0, nil
}

func (m *mockUserRepo) Update(ctx context.Context, id int64, upd repository.UserUpdate) (*domain.User, error) {
	m.updateCalls++
	return m.updateFunc(ctx, id, upd)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return m.deleteFunc(ctx, id)
}

func (m *mockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return m.emailExistsFunc(ctx, email)
}

func TestCreate_HashesPassword(t *testing.T) {
	repo := &mockUserRepo{
		emailExistsFunc: func(ctx context.Context, email string) (bool, error) { return false, nil },
		createFunc: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			user.ID = 1
			return user, nil
		},
	}
	uc := New(repo, bcrypt.MinCost, nil)

	created, err := uc.Create(context.Background(), "a@b.com", "secret123", "Alice")
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
	require.NotEqual(t, "secret123", created.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))
}

func TestCreate_DuplicateEmailFailsBeforeInsert(t *testing.T) {
	repo := &mockUserRepo{
		emailExistsFunc: func(ctx context.Context, email string) (bool, error) { return true, nil },
		createFunc: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			t.Fatal("Create must not be called when the email is taken")
			return nil, nil
		},
	}
	uc := New(repo, bcrypt.MinCost, nil)

	_, err := uc.Create(context.Background(), "taken@b.com", "secret123", "Alice")
	require.ErrorIs(t, err, domain.ErrEmailTaken)
	require.Zero(t, repo.createCalls)
}

func TestUpdate_KeepingOwnEmailIsAllowed(t *testing.T) {
	email := "same@b.com"
	repo := &mockUserRepo{
		emailExistsFunc: func(ctx context.Context, e string) (bool, error) { return true, nil },
		getByIDFunc: func(ctx context.Context, id int64) (*domain.User, error) {
			return &domain.User{ID: id, Email: email}, nil
		},
		updateFunc: func(ctx context.Context, id int64, upd repository.UserUpdate) (*domain.User, error) {
			return &domain.User{ID: id, Email: *upd.Email}, nil
		},
	}
	uc := New(repo, bcrypt.MinCost, nil)

	updated, err := uc.Update(context.Background(), 5, repository.UserUpdate{Email: &email})
	require.NoError(t, err)
	require.Equal(t, email, updated.Email)
	require.Equal(t, 1, repo.updateCalls)
}

func TestUpdate_ChangingToTakenEmailFails(t *testing.T) {
	email := "other@b.com"
	repo := &mockUserRepo{
		emailExistsFunc: func(ctx context.Context, e string) (bool, error) { return true, nil },
		getByIDFunc: func(ctx context.Context, id int64) (*domain.User, error) {
			return &domain.User{ID: id, Email: "mine@b.com"}, nil
		},
		updateFunc: func(ctx context.Context, id int64, upd repository.UserUpdate) (*domain.User, error) {
			t.Fatal("Update must not be called for a taken email")
			return nil, nil
		},
	}
	uc := New(repo, bcrypt.MinCost, nil)

	_, err := uc.Update(context.Background(), 5, repository.UserUpdate{Email: &email})
	require.ErrorIs(t, err, domain.ErrEmailTaken)
	require.Zero(t, repo.updateCalls)
}

func TestUpdate_WithoutEmailSkipsUniquenessCheck(t *testing.T) {
	name := "New Name"
	repo := &mockUserRepo{
		emailExistsFunc: func(ctx context.Context, e string) (bool, error) {
			t.Fatal("EmailExists must not be called when email is unchanged")
			return false, nil
		},
		updateFunc: func(ctx context.Context, id int64, upd repository.UserUpdate) (*domain.User, error) {
			return &domain.User{ID: id, Name: *upd.Name}, nil
		},
	}
	uc := New(repo, bcrypt.MinCost, nil)

	updated, err := uc.Update(context.Background(), 5, repository.UserUpdate{Name: &name})
	require.NoError(t, err)
	require.Equal(t, name, updated.Name)
}

func TestDelete_Passthrough(t *testing.T) {
	repo := &mockUserRepo{
		deleteFunc: func(ctx context.Context, id int64) (bool, error) { return false, nil },
	}
	uc := New(repo, bcrypt.MinCost, nil)

	deleted, err := uc.Delete(context.Background(), 99999)
	require.NoError(t, err)
	require.False(t, deleted)
}
