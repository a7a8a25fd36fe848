package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-labyrinth/domain"
)

type Authenticator interface {
	Register(ctx context.Context, username, password string) error
	SignIn(ctx context.Context, username, password string) (*dmn.Designer, string, error)
}
