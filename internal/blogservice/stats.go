package blogservice

import "context"

type Stats struct {
	Blogs      int   `json:"blogs"`
	TotalLikes int   `json:"totalLikes"`
	Favorite   *Blog `json:"favorite"`
}

// TotalLikes sums the like counts of the given blogs.
func TotalLikes(blogs []Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the highest like count, or nil when
// there are no blogs. Ties keep the earliest one.
func FavoriteBlog(blogs []Blog) *Blog {
	if len(blogs) == 0 {
		return nil
	}

	favorite := &blogs[0]
	for i := range blogs[1:] {
		if blogs[i+1].Likes > favorite.Likes {
			favorite = &blogs[i+1]
		}
	}

	return favorite
}

// BlogStats aggregates the whole collection.
func (s *BlogService) BlogStats(ctx context.Context) (*Stats, error) {
	blogs, err := s.GetBlogs(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Blogs:      len(blogs),
		TotalLikes: TotalLikes(blogs),
		Favorite:   FavoriteBlog(blogs),
	}, nil
}
