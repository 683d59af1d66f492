package userservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var (
	ErrDuplicateUsername = errors.New("duplicate username")
	ErrNotFound          = errors.New("user not found")
)

func newUserModel(db *sql.DB) *DBModel {
	return &DBModel{db: db}
}

func (m *DBModel) insertUser(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (username, name, password, adult)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	args := []any{
		u.Username,
		u.Name,
		u.Password.hash,
		u.Adult,
	}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&u.ID)
	if err != nil {
		switch {
		case err.Error() == "pq: duplicate key value violates unique constraint \"users_username_key\"":
			return ErrDuplicateUsername
		default:
			return err
		}
	}
	return nil
}

func (m *DBModel) getUserByUsername(ctx context.Context, username string) (*User, error) {
	query := `
		SELECT id, username, name, password, adult
		FROM users
		WHERE username = $1`

	var u User

	err := m.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.Name, &u.Password.hash, &u.Adult)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}

// getUserById aggregates the ids of the blogs the user owns into the Blogs
// collection, ordered by id.
func (m *DBModel) getUserById(ctx context.Context, id int) (*User, error) {
	query := `
		SELECT u.id, u.username, u.name, u.adult, array_remove(array_agg(b.id ORDER BY b.id), NULL)
		FROM users u
		LEFT JOIN blogs b ON b.user_id = u.id
		WHERE u.id = $1
		GROUP BY u.id`

	var u User
	var blogIds pq.Int64Array

	err := m.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Username, &u.Name, &u.Adult, &blogIds)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	u.Blogs = make([]int, 0, len(blogIds))
	for _, id := range blogIds {
		u.Blogs = append(u.Blogs, int(id))
	}

	return &u, nil
}

func (m *DBModel) getUsers(ctx context.Context) ([]User, error) {
	query := `
		SELECT u.id, u.username, u.name, u.adult, array_remove(array_agg(b.id ORDER BY b.id), NULL)
		FROM users u
		LEFT JOIN blogs b ON b.user_id = u.id
		GROUP BY u.id
		ORDER BY u.id`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var u User
		var blogIds pq.Int64Array

		err := rows.Scan(&u.ID, &u.Username, &u.Name, &u.Adult, &blogIds)
		if err != nil {
			return nil, err
		}

		u.Blogs = make([]int, 0, len(blogIds))
		for _, id := range blogIds {
			u.Blogs = append(u.Blogs, int(id))
		}

		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
