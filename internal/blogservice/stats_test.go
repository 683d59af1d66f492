package blogservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var statsBlogs = []Blog{
	{ID: 1, Title: "React patterns", Author: "Michael Chan", Likes: 7},
	{ID: 2, Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", Likes: 5},
	{ID: 3, Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", Likes: 12},
	{ID: 4, Title: "First class tests", Author: "Robert C. Martin", Likes: 10},
	{ID: 5, Title: "TDD harms architecture", Author: "Robert C. Martin", Likes: 0},
	{ID: 6, Title: "Type wars", Author: "Robert C. Martin", Likes: 2},
}

func TestTotalLikes(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		assert.Equal(t, 0, TotalLikes([]Blog{}))
	})

	t.Run("single blog equals its likes", func(t *testing.T) {
		assert.Equal(t, 5, TotalLikes(statsBlogs[1:2]))
	})

	t.Run("bigger list", func(t *testing.T) {
		assert.Equal(t, 36, TotalLikes(statsBlogs))
	})
}

func TestFavoriteBlog(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		assert.Nil(t, FavoriteBlog([]Blog{}))
	})

	t.Run("single blog", func(t *testing.T) {
		assert.Equal(t, "React patterns", FavoriteBlog(statsBlogs[:1]).Title)
	})

	t.Run("bigger list", func(t *testing.T) {
		assert.Equal(t, "Canonical string reduction", FavoriteBlog(statsBlogs).Title)
	})

	t.Run("tie keeps the earliest", func(t *testing.T) {
		tied := []Blog{
			{ID: 1, Title: "first", Likes: 3},
			{ID: 2, Title: "second", Likes: 3},
		}
		assert.Equal(t, "first", FavoriteBlog(tied).Title)
	})
}
