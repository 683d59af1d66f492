package blogservice

import (
	"context"
	"database/sql"
	"errors"
)

var (
	ErrRecordNotFound = errors.New("record not found")
)

func newBlogModel(db *sql.DB) *BlogModel {
	return &BlogModel{db: db}
}

func (m *BlogModel) insert(ctx context.Context, blog *Blog) error {
	query := `
		INSERT INTO blogs (title, author, url, likes, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	var userID any
	if blog.UserID != 0 {
		userID = blog.UserID
	}

	return m.db.QueryRowContext(ctx, query, blog.Title, blog.Author, blog.URL, blog.Likes, userID).Scan(&blog.ID, &blog.CreatedAt)
}

// scanBlog fills a Blog from a row of the owner-joined queries. Seed data may
// carry no owner, hence the null handling.
func scanBlog(row interface{ Scan(...any) error }) (*Blog, error) {
	var blog Blog
	var userID sql.NullInt64
	var username, name sql.NullString
	var adult sql.NullBool

	err := row.Scan(&blog.ID, &blog.Title, &blog.Author, &blog.URL, &blog.Likes, &blog.CreatedAt, &userID, &username, &name, &adult)
	if err != nil {
		return nil, err
	}

	if userID.Valid {
		blog.UserID = int(userID.Int64)
		blog.User = &Owner{
			Username: username.String,
			Name:     name.String,
			Adult:    adult.Bool,
		}
	}

	return &blog, nil
}

func (m *BlogModel) getBlogById(ctx context.Context, id int) (*Blog, error) {
	query := `
		SELECT b.id, b.title, b.author, b.url, b.likes, b.created_at, b.user_id, u.username, u.name, u.adult
		FROM blogs b
		LEFT JOIN users u ON b.user_id = u.id
		WHERE b.id = $1`

	blog, err := scanBlog(m.db.QueryRowContext(ctx, query, id))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return blog, nil
}

func (m *BlogModel) getBlogs(ctx context.Context) ([]Blog, error) {
	query := `
		SELECT b.id, b.title, b.author, b.url, b.likes, b.created_at, b.user_id, u.username, u.name, u.adult
		FROM blogs b
		LEFT JOIN users u ON b.user_id = u.id
		ORDER BY b.id`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []Blog{}
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, *blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

// updateBlog writes the full row back, title/author/url included, so the
// persisted record always matches the reconstruction handed to the caller.
func (m *BlogModel) updateBlog(ctx context.Context, blog *Blog) error {
	query := `
		UPDATE blogs
		SET title = $1, author = $2, url = $3, likes = $4
		WHERE id = $5`

	res, err := m.db.ExecContext(ctx, query, blog.Title, blog.Author, blog.URL, blog.Likes, blog.ID)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// deleteBlog removes the row regardless of existence; a miss is not an error.
func (m *BlogModel) deleteBlog(ctx context.Context, id int) error {
	query := `
		DELETE FROM blogs
		WHERE id = $1`

	_, err := m.db.ExecContext(ctx, query, id)
	return err
}
