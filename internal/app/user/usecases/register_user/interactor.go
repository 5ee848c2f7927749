package register_user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/avick-dev/bizmarket-service/internal/app/user/contracts"
	"github.com/avick-dev/bizmarket-service/internal/app/user/domain"
	"github.com/avick-dev/bizmarket-service/internal/pkg/clock"
	"github.com/avick-dev/bizmarket-service/internal/pkg/committer"
)

// Request contains the data needed to register an account.
type Request struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     string
	Location string
}

// Interactor handles the register user use case.
type Interactor struct {
	users     contracts.UserRepository
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new register user interactor.
func NewInteractor(users contracts.UserRepository, c *committer.Committer, clk clock.Clock) *Interactor {
	return &Interactor{
		users:     users,
		committer: c,
		clock:     clk,
	}
}

// Execute registers a new account and returns its ID.
// Email uniqueness is checked up front; the unique index on the email
// column backs it up against concurrent registrations.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return "", err
	}
	if len(req.Password) < 6 {
		return "", fmt.Errorf("%w: password must be at least 6 characters", domain.ErrInvalidArgument)
	}

	taken, err := i.users.ExistsByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return "", err
	}
	if taken {
		return "", domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := domain.NewUser(
		uuid.New().String(),
		req.Name,
		req.Email,
		string(hash),
		req.Phone,
		role,
		req.Location,
		i.clock.Now(),
	)
	if err != nil {
		return "", err
	}

	plan := committer.NewPlan()
	insertMut, err := i.users.InsertMut(user)
	if err != nil {
		return "", err
	}
	plan.Add(insertMut)

	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return user.ID(), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
