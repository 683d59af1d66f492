package userservice

import (
	"github.com/sushihentaime/bloglist/internal/common"
)

// Checks are registered in contract order: the password length rule is
// reported before anything else.
func validateNewUser(v *common.Validator, username, password string) {
	v.Check(len(password) >= 3, "password must be atleast 3 characters long")
	v.Check(username != "", "username must be provided")
}

func validateCredentials(v *common.Validator, username, password string) {
	v.Check(username != "", "username must be provided")
	v.Check(password != "", "password must be provided")
}
