package userservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sushihentaime/bloglist/internal/common"
)

type mockProducer struct {
	published [][]byte
}

func (m *mockProducer) Publish(ctx context.Context, msg []byte, key common.BindingKey, exchange common.Exchange) error {
	m.published = append(m.published, msg)
	return nil
}

func setupTestService(t *testing.T) (*UserService, *mockProducer) {
	db := common.TestDB("file://../../migrations", t)
	mb := &mockProducer{}
	return NewUserService(db, mb, []byte("test-secret")), mb
}

func TestCreateUser(t *testing.T) {
	s, mb := setupTestService(t)
	ctx := context.Background()

	t.Run("valid user", func(t *testing.T) {
		user, err := s.CreateUser(ctx, "mluukkai", "Matti Luukkainen", "salainen", false)
		assert.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.Equal(t, "mluukkai", user.Username)
		assert.Equal(t, "Matti Luukkainen", user.Name)
		assert.False(t, user.Adult)
		assert.Empty(t, user.Blogs)
		assert.Len(t, mb.published, 1)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := s.CreateUser(ctx, "mluukkai", "Someone Else", "salainen", true)
		assert.ErrorIs(t, err, ErrDuplicateUsername)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := s.CreateUser(ctx, "hellas", "Arto Hellas", "ab", false)
		assert.ErrorAs(t, err, &common.ValidationError{})
		assert.EqualError(t, err, "password must be atleast 3 characters long")

		users, getErr := s.GetUsers(ctx)
		assert.NoError(t, getErr)
		for _, u := range users {
			assert.NotEqual(t, "hellas", u.Username)
		}
	})

	t.Run("empty username", func(t *testing.T) {
		_, err := s.CreateUser(ctx, "", "Anon", "salainen", false)
		assert.ErrorAs(t, err, &common.ValidationError{})
	})
}

func TestAuthenticate(t *testing.T) {
	s, _ := setupTestService(t)
	ctx := context.Background()

	created, err := s.CreateUser(ctx, "root", "Superuser", "sekret", true)
	assert.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, token, err := s.Authenticate(ctx, "root", "sekret")
		assert.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)

		id, err := ParseAccessToken(token, []byte("test-secret"))
		assert.NoError(t, err)
		assert.Equal(t, created.ID, id)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := s.Authenticate(ctx, "root", "wrong")
		assert.ErrorIs(t, err, ErrAuthenticationFailure)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, _, err := s.Authenticate(ctx, "nobody", "sekret")
		assert.ErrorIs(t, err, ErrAuthenticationFailure)
	})
}

func TestGetUserByID(t *testing.T) {
	s, _ := setupTestService(t)
	ctx := context.Background()

	created, err := s.CreateUser(ctx, "writer", "Prolific Writer", "salainen", false)
	assert.NoError(t, err)

	t.Run("existing user without blogs", func(t *testing.T) {
		user, err := s.GetUserByID(ctx, created.ID)
		assert.NoError(t, err)
		assert.Equal(t, "writer", user.Username)
		assert.Empty(t, user.Blogs)
	})

	t.Run("existing user with blogs", func(t *testing.T) {
		db := s.m.db
		var first, second int
		err := db.QueryRowContext(ctx, "INSERT INTO blogs (title, author, url, likes, user_id) VALUES ('First', 'Prolific Writer', 'http://example.com/1', 0, $1) RETURNING id", created.ID).Scan(&first)
		assert.NoError(t, err)
		err = db.QueryRowContext(ctx, "INSERT INTO blogs (title, author, url, likes, user_id) VALUES ('Second', 'Prolific Writer', 'http://example.com/2', 3, $1) RETURNING id", created.ID).Scan(&second)
		assert.NoError(t, err)

		user, err := s.GetUserByID(ctx, created.ID)
		assert.NoError(t, err)
		assert.Equal(t, []int{first, second}, user.Blogs)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := s.GetUserByID(ctx, 999999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetUsers(t *testing.T) {
	s, _ := setupTestService(t)
	ctx := context.Background()

	_, err := s.CreateUser(ctx, "alpha", "Alpha", "salainen", false)
	assert.NoError(t, err)
	_, err = s.CreateUser(ctx, "beta", "Beta", "salainen", true)
	assert.NoError(t, err)

	users, err := s.GetUsers(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	for _, u := range users {
		assert.NotNil(t, u.Blogs)
	}
}
