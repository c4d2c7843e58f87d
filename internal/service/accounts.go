package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/protomem/licensing/internal/database"
	"github.com/protomem/licensing/internal/model"
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

type AccountsOption func(*Accounts)

func WithBcryptCost(cost int) AccountsOption {
	return func(a *Accounts) {
		a.bcryptCost = cost
	}
}

// Accounts manages the operators of the system and their logins.
type Accounts struct {
	logger     *slog.Logger
	users      UserStore
	logins     LoginStore
	bcryptCost int
}

func NewAccounts(logger *slog.Logger, users UserStore, logins LoginStore, opts ...AccountsOption) *Accounts {
	a := &Accounts{
		logger:     logger.With("module", "accounts"),
		users:      users,
		logins:     logins,
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

type NewUser struct {
	Username string
	FullName string
	Password string
	Role     model.Role
}

// UserChanges updates only the non-nil fields.
type UserChanges struct {
	FullName *string
	Password *string
	Role     *model.Role
}

// Login checks the credentials of an active user and records the login.
// Unknown users, disabled users and wrong passwords all yield ErrInvalidCredentials.
func (a *Accounts) Login(ctx context.Context, username, password, ip string) (model.User, error) {
	user, err := a.users.GetActiveByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrInvalidCredentials
		}
		return model.User{}, storeError("login", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		a.logger.Info("login refused", "username", user.Username)
		return model.User{}, model.ErrInvalidCredentials
	}

	if _, err := a.logins.Insert(ctx, database.InsertLoginRecordDTO{UserID: user.ID, IP: ip}); err != nil {
		return model.User{}, storeError("record login", err)
	}

	a.logger.Info("user logged in", "userId", user.ID, "role", user.Role)

	return user, nil
}

func (a *Accounts) CreateUser(ctx context.Context, input NewUser) (model.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.FullName = strings.TrimSpace(input.FullName)

	var violations []string
	if input.Username == "" {
		violations = append(violations, "username is required")
	}
	if input.FullName == "" {
		violations = append(violations, "full name is required")
	}
	if input.Password == "" {
		violations = append(violations, "password is required")
	}
	role, err := model.ParseRole(string(input.Role))
	if err != nil {
		violations = append(violations, "role must be ADMINISTRATOR or ANALYST")
	}
	if len(violations) > 0 {
		return model.User{}, model.NewInvalidDocumentError("user validation failed", violations...)
	}

	hash, err := a.hash(input.Password)
	if err != nil {
		return model.User{}, err
	}

	id, err := a.users.Insert(ctx, database.InsertUserDTO{
		Username:     input.Username,
		FullName:     input.FullName,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
	})
	if err != nil {
		if errors.Is(err, model.ErrExists) {
			return model.User{}, &model.InvalidDocumentError{
				Message: fmt.Sprintf("username %s is already taken", input.Username),
				Err:     model.ErrExists,
			}
		}
		return model.User{}, storeError("create user", err)
	}

	a.logger.Info("user created", "userId", id, "role", role)

	return a.GetUser(ctx, id)
}

func (a *Accounts) UpdateUser(ctx context.Context, id model.ID, changes UserChanges) (model.User, error) {
	if _, err := a.GetUser(ctx, id); err != nil {
		return model.User{}, err
	}

	var dto database.UpdateUserDTO

	if changes.FullName != nil {
		name := strings.TrimSpace(*changes.FullName)
		if name == "" {
			return model.User{}, model.NewInvalidDataError("fullName", "cannot be blank")
		}
		dto.FullName = &name
	}
	if changes.Role != nil {
		role, err := model.ParseRole(string(*changes.Role))
		if err != nil {
			return model.User{}, err
		}
		dto.Role = &role
	}
	if changes.Password != nil && *changes.Password != "" {
		hash, err := a.hash(*changes.Password)
		if err != nil {
			return model.User{}, err
		}
		dto.PasswordHash = &hash
	}

	if err := a.users.Update(ctx, id, dto); err != nil {
		return model.User{}, storeError("update user", err)
	}

	return a.GetUser(ctx, id)
}

func (a *Accounts) ToggleUserStatus(ctx context.Context, id model.ID) (model.User, error) {
	user, err := a.GetUser(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	active := !user.Active
	if err := a.users.Update(ctx, id, database.UpdateUserDTO{Active: &active}); err != nil {
		return model.User{}, storeError("toggle user status", err)
	}

	a.logger.Info("user status changed", "userId", id, "active", active)

	return a.GetUser(ctx, id)
}

func (a *Accounts) GetUser(ctx context.Context, id model.ID) (model.User, error) {
	user, err := a.users.Get(ctx, id)
	if err != nil {
		return model.User{}, storeError("get user", err)
	}
	return user, nil
}

func (a *Accounts) ListUsers(ctx context.Context, opts database.FindOptions) ([]model.User, error) {
	users, err := a.users.Find(ctx, opts)
	if err != nil {
		return nil, storeError("list users", err)
	}
	return users, nil
}

func (a *Accounts) LoginHistory(ctx context.Context, opts database.FindOptions) ([]model.LoginRecord, error) {
	records, err := a.logins.Find(ctx, opts)
	if err != nil {
		return nil, storeError("login history", err)
	}
	return records, nil
}

// EnsureAdministrator creates the first administrator when no user exists yet.
func (a *Accounts) EnsureAdministrator(ctx context.Context, username, password string) (bool, error) {
	count, err := a.users.Count(ctx)
	if err != nil {
		return false, storeError("count users", err)
	}
	if count > 0 {
		return false, nil
	}

	_, err = a.CreateUser(ctx, NewUser{
		Username: username,
		FullName: "Administrator",
		Password: password,
		Role:     model.RoleAdministrator,
	})
	if err != nil {
		return false, err
	}

	return true, nil
}

func (a *Accounts) hash(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", model.NewInvalidDataError("password", fmt.Sprintf("must not be more than %d bytes", MaxPasswordBytes))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
