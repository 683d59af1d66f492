package blogservice

import (
	"context"
	"database/sql"

	"github.com/sushihentaime/bloglist/internal/common"
	"github.com/sushihentaime/bloglist/internal/userservice"
)

func NewBlogService(db *sql.DB, c *common.Cache) *BlogService {
	return &BlogService{m: newBlogModel(db), c: c}
}

// CreateBlogRequest uses pointer fields so that an absent key can be told
// apart from a zero value.
type CreateBlogRequest struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	URL    *string `json:"url"`
	Likes  *int    `json:"likes"`
}

// CreateBlog validates the candidate fields, attaches the acting user as
// owner and persists the blog. The caller resolves the acting user first;
// authentication failures never reach this far.
func (s *BlogService) CreateBlog(ctx context.Context, req *CreateBlogRequest, owner *userservice.User) (*Blog, error) {
	v := common.NewValidator()
	validateNewBlog(v, req)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	likes := 0
	if req.Likes != nil {
		likes = *req.Likes
	}

	blog := Blog{
		Title:  *req.Title,
		Author: *req.Author,
		URL:    *req.URL,
		Likes:  likes,
		UserID: owner.ID,
		User: &Owner{
			Username: owner.Username,
			Name:     owner.Name,
			Adult:    owner.Adult,
		},
	}

	err := s.m.insert(ctx, &blog)
	if err != nil {
		return nil, err
	}

	s.c.Delete(common.CacheKeyBlogList)

	return &blog, nil
}

// GetBlogByID returns a blog with its owner projection.
func (s *BlogService) GetBlogByID(ctx context.Context, id int) (*Blog, error) {
	if cached, ok := s.c.Get(common.CacheKeyBlog(id)); ok {
		blog := cached.(Blog)
		return &blog, nil
	}

	blog, err := s.m.getBlogById(ctx, id)
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyBlog(id), *blog)

	return blog, nil
}

// GetBlogs returns all blogs, owner projections expanded.
func (s *BlogService) GetBlogs(ctx context.Context) ([]Blog, error) {
	if cached, ok := s.c.Get(common.CacheKeyBlogList); ok {
		return cached.([]Blog), nil
	}

	blogs, err := s.m.getBlogs(ctx)
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyBlogList, blogs)

	return blogs, nil
}

// UpdateBlogLikes replaces the like count of a stored blog. Everything else
// is carried over from the stored record, never from the request, and the
// returned entity is the in-memory reconstruction that was written.
func (s *BlogService) UpdateBlogLikes(ctx context.Context, id, likes int) (*Blog, error) {
	// The range check precedes the lookup: a negative value is rejected even
	// for ids that do not exist.
	v := common.NewValidator()
	validateLikes(v, likes)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	blog, err := s.m.getBlogById(ctx, id)
	if err != nil {
		return nil, err
	}

	blog.Likes = likes

	err = s.m.updateBlog(ctx, blog)
	if err != nil {
		return nil, err
	}

	s.c.Delete(common.CacheKeyBlog(id))
	s.c.Delete(common.CacheKeyBlogList)

	return blog, nil
}

// DeleteBlog removes a blog by id. Deleting an id that does not exist is not
// an error; the operation is idempotent.
func (s *BlogService) DeleteBlog(ctx context.Context, id int) error {
	err := s.m.deleteBlog(ctx, id)
	if err != nil {
		return err
	}

	s.c.Delete(common.CacheKeyBlog(id))
	s.c.Delete(common.CacheKeyBlogList)

	return nil
}
