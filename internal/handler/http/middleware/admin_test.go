package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownID   = "0192f3a4-5b6c-7d8e-9f01-23456789abcd"
	otherID = "0192f3a4-5b6c-7d8e-9f01-23456789ef01"
)

func tokenContext(t *testing.T, claims map[string]interface{}) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("middleware-test-secret"), nil)
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestCanActFor(t *testing.T) {
	cases := []struct {
		name   string
		ctx    context.Context
		target string
		want   bool
	}{
		{"no token", context.Background(), otherID, true},
		{"admin for anyone", tokenContext(t, map[string]interface{}{"role": RoleAdmin}), otherID, true},
		{"employee for self", tokenContext(t, map[string]interface{}{"role": "employee", "employee_id": ownID}), ownID, true},
		{"employee for colleague", tokenContext(t, map[string]interface{}{"role": "employee", "employee_id": ownID}), otherID, false},
		{"missing claim", tokenContext(t, map[string]interface{}{"role": "employee"}), "", false},
		{"verification error", jwtauth.NewContext(context.Background(), nil, errors.New("token is expired")), ownID, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanActFor(tc.ctx, tc.target))
		})
	}
}
