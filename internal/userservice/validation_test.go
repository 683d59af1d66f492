package userservice

import (
	"testing"

	"github.com/sushihentaime/bloglist/internal/common"
)

func TestValidateNewUser(t *testing.T) {
	testCases := []struct {
		name     string
		username string
		password string
		valid    bool
		message  string
	}{
		{name: "valid", username: "root", password: "sekret", valid: true},
		{name: "minimum length password", username: "root", password: "abc", valid: true},
		{name: "empty password", username: "root", password: "", valid: false, message: "password must be atleast 3 characters long"},
		{name: "short password", username: "root", password: "ab", valid: false, message: "password must be atleast 3 characters long"},
		{name: "empty username", username: "", password: "sekret", valid: false, message: "username must be provided"},
		{name: "both invalid reports password first", username: "", password: "ab", valid: false, message: "password must be atleast 3 characters long"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validateNewUser(v, tc.username, tc.password)
			if v.Valid() != tc.valid {
				t.Errorf("expected valid=%v, got %v", tc.valid, v.Valid())
			}
			if !tc.valid {
				if got := v.ValidationError().Error(); got != tc.message {
					t.Errorf("expected message %q, got %q", tc.message, got)
				}
			}
		})
	}
}
