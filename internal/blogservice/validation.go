package blogservice

import (
	"github.com/sushihentaime/bloglist/internal/common"
)

// Presence, not emptiness: a request that carries the keys with empty strings
// is accepted, matching the observed API behaviour.
func validateNewBlog(v *common.Validator, req *CreateBlogRequest) {
	v.Check(req.Title != nil && req.Author != nil && req.URL != nil, "title, author and/or url missing")
}

func validateLikes(v *common.Validator, likes int) {
	v.Check(likes >= 0, "nagative value")
}
