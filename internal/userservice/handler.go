package userservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/sushihentaime/bloglist/internal/common"
)

var (
	ErrAuthenticationFailure = errors.New("invalid username or password")
)

func NewUserService(db *sql.DB, mb common.MessageProducer, secret []byte) *UserService {
	return &UserService{
		m:      newUserModel(db),
		mb:     mb,
		secret: secret,
	}
}

// CreateUser validates and persists a new user account and publishes a
// user.created event. The username uniqueness rule is enforced by the unique
// constraint at write time, so a duplicate is rejected without persisting
// anything.
func (s *UserService) CreateUser(ctx context.Context, username, name, password string, adult bool) (*User, error) {
	v := common.NewValidator()
	validateNewUser(v, username, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	u := User{
		Username: username,
		Name:     name,
		Adult:    adult,
		Blogs:    []int{},
	}

	err := u.Password.set(password)
	if err != nil {
		return nil, err
	}

	err = s.m.insertUser(ctx, &u)
	if err != nil {
		return nil, err
	}

	data := struct {
		Username string
		Name     string
	}{
		Username: u.Username,
		Name:     u.Name,
	}

	eventData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	// The signup event only feeds the notification mail; a broker outage must
	// not fail a request whose account is already persisted.
	_ = s.mb.Publish(ctx, eventData, common.UserCreatedKey, common.UserExchange)

	return &u, nil
}

// Authenticate verifies the credentials and issues a signed access token for
// the user.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*User, string, error) {
	v := common.NewValidator()
	validateCredentials(v, username, password)
	if !v.Valid() {
		return nil, "", v.ValidationError()
	}

	user, err := s.m.getUserByUsername(ctx, username)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, "", ErrAuthenticationFailure
		default:
			return nil, "", err
		}
	}

	ok, err := user.Password.compare(password)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", ErrAuthenticationFailure
	}

	token, err := newAccessToken(user.ID, user.Username, s.secret)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// GetUserByID returns the user with the owned blog ids populated.
func (s *UserService) GetUserByID(ctx context.Context, id int) (*User, error) {
	return s.m.getUserById(ctx, id)
}

// GetUsers returns all users with their owned blog ids populated. The
// password hash never leaves the model layer.
func (s *UserService) GetUsers(ctx context.Context) ([]User, error) {
	return s.m.getUsers(ctx)
}
