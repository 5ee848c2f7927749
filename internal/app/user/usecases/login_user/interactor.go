package login_user

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/avick-dev/bizmarket-service/internal/app/user/contracts"
	"github.com/avick-dev/bizmarket-service/internal/app/user/domain"
)

// Request contains the login credentials.
type Request struct {
	Email    string
	Password string
}

// Result carries the signed token and basic account info.
type Result struct {
	Token  string
	UserID string
	Name   string
	Email  string
	Role   string
}

// Interactor handles the login use case.
type Interactor struct {
	users  contracts.UserRepository
	tokens contracts.TokenIssuer
}

// NewInteractor creates a new login interactor.
func NewInteractor(users contracts.UserRepository, tokens contracts.TokenIssuer) *Interactor {
	return &Interactor{
		users:  users,
		tokens: tokens,
	}
}

// Execute authenticates the credentials and issues an access token.
// An unknown email and a wrong password produce the same error so the
// response does not reveal which accounts exist.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := i.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash()), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := i.tokens.Issue(user.ID())
	if err != nil {
		return nil, err
	}

	return &Result{
		Token:  token,
		UserID: user.ID(),
		Name:   user.Name(),
		Email:  user.Email(),
		Role:   string(user.Role()),
	}, nil
}
