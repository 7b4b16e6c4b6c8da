package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskhub/backend/domain"
	"github.com/taskhub/backend/repository"
	userUC "github.com/taskhub/backend/usecase/user"
)

type mockUserRepo struct {
	emailExistsFunc func(ctx context.Context, email string) (bool, error)
	createFunc      func(ctx context.Context, user *domain.User) (*domain.User, error)
	getByIDFunc     func(ctx context.Context, id int64) (*domain.User, error)
	listFunc        func(ctx context.Context, params repository.ListParams) ([]domain.User, int64, error)
	updateFunc      func(ctx context.Context, id int64, upd repository.UserUpdate) (*domain.User, error)
	deleteFunc      func(ctx context.Context, id int64) (bool, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return m.createFunc(ctx, user)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockUserRepo) List(ctx context.Context, params repository.ListParams) ([]domain.User, int64, error) {
	return m.listFunc(ctx, params)
}

func (m *mockUserRepo) Update(ctx context.Context, id int64, upd repository.UserUpdate) (*domain.User, error) {
	return m.updateFunc(ctx, id, upd)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return m.deleteFunc(ctx, id)
}

func (m *mockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return m.emailExistsFunc(ctx, email)
}

func newUserHandler(repo *mockUserRepo) *UserHandler {
	return NewUserHandler(userUC.New(repo, bcrypt.MinCost, nil), nil, nil)
}

func TestUserCreate_Success(t *testing.T) {
	repo := &mockUserRepo{
		emailExistsFunc: func(ctx context.Context, email string) (bool, error) { return false, nil },
		createFunc: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			user.ID = 1
			return user, nil
		},
	}
	h := newUserHandler(repo)

	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(http.MethodPost)
	ctx.Request.SetBody([]byte(`{"email": "a@b.com", "password": "secret123", "name": "Alice"}`))

	h.Create(&ctx)

	require.Equal(t, http.StatusCreated, ctx.Response.StatusCode())
	env := decodeEnvelope(t, &ctx)
	require.True(t, env.Success)

	data := env.Data.(map[string]interface{})
	require.Equal(t, "a@b.com", data["email"])
	// The hash must never appear on the wire.
	require.NotContains(t, data, "password_hash")
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{
		emailExistsFunc: func(ctx context.Context, email string) (bool, error) { return true, nil },
		createFunc: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			t.Fatal("no row may be written for a duplicate email")
			return nil, nil
		},
	}
	h := newUserHandler(repo)

	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(http.MethodPost)
	ctx.Request.SetBody([]byte(`{"email": "a@b.com", "password": "secret123", "name": "Alice"}`))

	h.Create(&ctx)

	require.Equal(t, http.StatusConflict, ctx.Response.StatusCode())
	env := decodeEnvelope(t, &ctx)
	require.Equal(t, string(domain.ErrCodeDupEmail), env.Error.Code)
}

func TestUserCreate_InvalidEmail(t *testing.T) {
	h := newUserHandler(&mockUserRepo{})

	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(http.MethodPost)
	ctx.Request.SetBody([]byte(`{"email": "not-an-email", "password": "secret123", "name": "Alice"}`))

	h.Create(&ctx)

	require.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
	env := decodeEnvelope(t, &ctx)
	require.Equal(t, string(domain.ErrCodeValidation), env.Error.Code)
}

func TestUserList_ClampsLimit(t *testing.T) {
	var gotParams repository.ListParams
	repo := &mockUserRepo{
		listFunc: func(ctx context.Context, params repository.ListParams) ([]domain.User, int64, error) {
			gotParams = params
			return nil, 0, nil
		},
	}
	h := newUserHandler(repo)

	var ctx fasthttp.RequestCtx
	ctx.Request.SetRequestURI("/api/users?page=0&limit=9999")

	h.List(&ctx)

	require.Equal(t, repository.ListParams{Page: 1, Limit: repository.MaxLimit}, gotParams)
}

func TestUserDelete_NotFound(t *testing.T) {
	repo := &mockUserRepo{
		deleteFunc: func(ctx context.Context, id int64) (bool, error) { return false, nil },
	}
	h := newUserHandler(repo)

	var ctx fasthttp.RequestCtx
	ctx.SetUserValue("id", "99999")

	h.Delete(&ctx)

	require.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
}

func TestUserUpdate_EmptyBodyIsNoOpRead(t *testing.T) {
	var updCalled bool
	repo := &mockUserRepo{
		updateFunc: func(ctx context.Context, id int64, upd repository.UserUpdate) (*domain.User, error) {
			updCalled = true
			require.False(t, upd.HasChanges())
			return &domain.User{ID: id, Email: "a@b.com"}, nil
		},
	}
	h := newUserHandler(repo)

	var ctx fasthttp.RequestCtx
	ctx.SetUserValue("id", "5")
	ctx.Request.Header.SetMethod(http.MethodPut)
	ctx.Request.SetBody([]byte(`{}`))

	h.Update(&ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	require.True(t, updCalled)
}
