package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-labyrinth/domain"
	"github.com/beka-birhanu/vinom-labyrinth/service/i"
	"github.com/google/uuid"
)

// ErrInvalidCredentials is returned by SignIn for an unknown username or a
// wrong password.
var ErrInvalidCredentials = errors.New("invalid username or password")

const tokenLifetime = 24 * time.Hour

// Claim keys carried by designer tokens.
const (
	ClaimDesignerID = "designerID"
	ClaimUsername   = "username"
)

// Auth registers designers and signs them in.
type Auth struct {
	designerRepo i.DesignerRepo
	tokenizer    i.Tokenizer
}

// NewAuthService creates an Auth service.
func NewAuthService(r i.DesignerRepo, t i.Tokenizer) (*Auth, error) {
	if r == nil || t == nil {
		return nil, errors.New("auth service needs a designer repository and a tokenizer")
	}
	return &Auth{
		designerRepo: r,
		tokenizer:    t,
	}, nil
}

// Register creates a designer account.
func (a *Auth) Register(ctx context.Context, username, password string) error {
	designerConfig := dmn.DesignerConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	}

	designer, err := dmn.NewDesigner(designerConfig)
	if err != nil {
		return err
	}

	_, err = a.designerRepo.ByUsername(ctx, username)
	if err == nil {
		return dmn.ErrUsernameConflict
	}
	if !errors.Is(err, dmn.ErrDesignerNotFound) {
		return err
	}

	return a.designerRepo.Save(ctx, designer)
}

// SignIn checks the credentials and issues a token for the designer.
func (a *Auth) SignIn(ctx context.Context, username, password string) (*dmn.Designer, string, error) {
	designer, err := a.designerRepo.ByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, dmn.ErrDesignerNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !designer.VerifyPassword(password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		ClaimDesignerID: designer.ID.String(),
		ClaimUsername:   designer.Username,
	}, tokenLifetime)
	if err != nil {
		return nil, "", fmt.Errorf("generating token: %w", err)
	}

	return designer, token, nil
}
