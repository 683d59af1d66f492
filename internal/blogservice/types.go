package blogservice

import (
	"database/sql"
	"time"

	"github.com/sushihentaime/bloglist/internal/common"
)

type Blog struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
	// User is the owner projection. The password hash and storage metadata
	// never appear here.
	User      *Owner    `json:"user,omitempty"`
	UserID    int       `json:"-"`
	CreatedAt time.Time `json:"-"`
}

// Owner is the reduced user projection attached to a blog response.
type Owner struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Adult    bool   `json:"adult"`
}

type BlogModel struct {
	db *sql.DB
}

type BlogService struct {
	m *BlogModel
	c *common.Cache
}
