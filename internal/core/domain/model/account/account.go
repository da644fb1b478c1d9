package account

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

	// ErrUserIsNotDriver is returned when a non-driver account is used as a driver.
	ErrUserIsNotDriver = errs.NewValueIsInvalidErrorWithCause("role", errors.New("user is not a driver"))

	// ErrDriverIsInactive is returned when an inactive driver is assigned a shipment.
	ErrDriverIsInactive = errs.NewValueIsInvalidErrorWithCause("driver", errors.New("driver is inactive"))

	// ErrEmailAlreadyRegistered is returned when the email belongs to an
	// existing account of any role.
	ErrEmailAlreadyRegistered = errs.NewValueIsInvalidErrorWithCause("email", errors.New("email is already registered"))
)

// Account is a customer, driver or administrator.
//
// Account follows these invariants:
//   - email is non-empty, trimmed and lower-cased
//   - the password hash is opaque to the domain and never empty
//   - role never changes after creation
type Account struct {
	id           kernel.UUID
	email        string
	passwordHash string
	fullName     string
	phone        string
	role         Role
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewAccount registers an account. New accounts of every role start active.
//
// Example:
//
//	driver, err := account.NewAccount(kernel.NewUUID(), "ravi@example.com", hash,
//	    "Ravi Kumar", "+91-9000000000", account.RoleDriver, time.Now())
func NewAccount(
	id kernel.UUID,
	email string,
	passwordHash string,
	fullName string,
	phone string,
	role Role,
	now time.Time,
) (*Account, error) {
	return RestoreAccount(id, email, passwordHash, fullName, phone, role, true, now, now)
}

// RestoreAccount rebuilds an account from persistence.
func RestoreAccount(
	id kernel.UUID,
	email string,
	passwordHash string,
	fullName string,
	phone string,
	role Role,
	isActive bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*Account, error) {
	a := &Account{
		phone:         strings.TrimSpace(phone),
		isActive:      isActive,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setEmail(email),
		a.setPasswordHash(passwordHash),
		a.setFullName(fullName),
		a.setRole(role),
	); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

func (a *Account) ID() kernel.UUID {
	return a.id
}

func (a *Account) Email() string {
	return a.email
}

func (a *Account) PasswordHash() string {
	return a.passwordHash
}

func (a *Account) FullName() string {
	return a.fullName
}

func (a *Account) Phone() string {
	return a.phone
}

func (a *Account) Role() Role {
	return a.role
}

func (a *Account) IsActive() bool {
	return a.isActive
}

func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Account) UpdatedAt() time.Time {
	return a.updatedAt
}

// EnsureAssignableDriver checks that the account may receive shipments.
func (a *Account) EnsureAssignableDriver() error {
	if a.role != RoleDriver {
		return ErrUserIsNotDriver
	}
	if !a.isActive {
		return ErrDriverIsInactive
	}
	return nil
}

// Activate approves the account. Activating an active account is a no-op.
func (a *Account) Activate(at time.Time) {
	if a.isActive {
		return
	}
	a.isActive = true
	a.updatedAt = at
}

// Deactivate suspends the account. Deactivating an inactive account is a no-op.
func (a *Account) Deactivate(at time.Time) {
	if !a.isActive {
		return
	}
	a.isActive = false
	a.updatedAt = at
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if at := strings.Index(email, "@"); at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidError("email")
	}
	a.email = email
	return nil
}

func (a *Account) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	a.passwordHash = hash
	return nil
}

func (a *Account) setFullName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("full name")
	}
	a.fullName = name
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
