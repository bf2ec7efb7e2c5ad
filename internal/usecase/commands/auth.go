package commands

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/pkg/jwt"
	"hotel-reservation/internal/pkg/password"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/internal/usecase/shared"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrUserInactive       = errs.New("user inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	User      *queries.AuthorizedUserView
	TokenPair *TokenPair
}

type AuthCommands interface {
	Login(ctx context.Context, email, pass string) (*LoginResult, error)
	// RefreshToken re-reads the account, so a pair minted after a role change
	// carries the new role.
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommands struct {
	uow    shared.UnitOfWork
	users  queries.UserReadStore
	tokens *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, users queries.UserReadStore, tokens *jwt.Service) AuthCommands {
	return &authCommands{uow: uow, users: users, tokens: tokens}
}

func (a *authCommands) Login(ctx context.Context, email, pass string) (*LoginResult, error) {
	creds, err := user.NewCredentials(email, pass)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	account, err := a.checkCredentials(ctx, creds)
	if err != nil {
		return nil, err
	}

	pair, err := a.mint(account)
	if err != nil {
		return nil, err
	}

	stamp := func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), account.ID)
	}
	if err := a.uow.Within(ctx, stamp); err != nil {
		slog.Warn("last login not recorded", "user_id", account.ID, "error", err.Error())
	}

	return &LoginResult{User: account, TokenPair: pair}, nil
}

func (a *authCommands) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.tokens.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, errs.Mark(errs.Newf("got %s token", claims.TokenType), ErrTokenValidation)
	}

	account, err := a.users.FindByID(ctx, claims.UserID)
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return nil, errs.Mark(err, ErrTokenValidation)
	case err != nil:
		return nil, errs.Wrap(err, "load refresh token owner")
	case !account.IsActive:
		return nil, ErrUserInactive
	}

	return a.mint(account)
}

// checkCredentials answers an unknown address with the same error and
// bcrypt cost as a wrong password.
func (a *authCommands) checkCredentials(ctx context.Context, creds user.Credentials) (*queries.AuthorizedUserView, error) {
	plain := creds.Password().Value()

	account, hash, err := a.users.FindByEmail(ctx, creds.Email().Value())
	if infra.IsKind(err, infra.KindNotFound) {
		_ = password.CompareDummy(plain)
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}
	if err != nil {
		return nil, errs.Wrap(err, "load account for login")
	}

	if !account.IsActive {
		return nil, ErrUserInactive
	}
	if err := password.ComparePassword(hash, plain); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}
	return account, nil
}

func (a *authCommands) mint(account *queries.AuthorizedUserView) (*TokenPair, error) {
	role, err := user.NewRole(account.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	access, err := a.tokens.GenerateAccessToken(account.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refresh, err := a.tokens.GenerateRefreshToken(account.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
