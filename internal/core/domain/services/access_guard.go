package services

import (
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
)

// AccessGuard decides admission of an actor to a shipment operation.
// Every check runs before any mutation, so a denial leaves no side effects.
//
// Business rules:
//   - driver actions require an active driver bound to the shipment
//   - customer actions require the customer who booked the shipment
//   - admin actions require an active administrator
//
// Example usage:
//
//	guard := services.NewAccessGuard()
//	if err := guard.AuthorizeDriver(actor, s, shipment.ActionPickUp.String()); err != nil {
//	    return err // *errs.ForbiddenError
//	}
type AccessGuard struct{}

func NewAccessGuard() AccessGuard {
	return AccessGuard{}
}

// AuthorizeDriver admits the driver bound to the shipment.
func (g AccessGuard) AuthorizeDriver(actor *account.Account, s *shipment.Shipment, action string) error {
	if err := g.requireRole(actor, account.RoleDriver, action); err != nil {
		return err
	}
	if !actor.IsActive() {
		return errs.NewForbiddenError(action, "driver account is inactive")
	}
	if !s.IsAssignedTo(actor.ID()) {
		return errs.NewForbiddenError(action, "shipment is not assigned to this driver")
	}
	return nil
}

// AuthorizeCustomer admits the customer who booked the shipment.
func (g AccessGuard) AuthorizeCustomer(actor *account.Account, s *shipment.Shipment, action string) error {
	if err := g.requireRole(actor, account.RoleCustomer, action); err != nil {
		return err
	}
	if !s.IsOwnedBy(actor.ID()) {
		return errs.NewForbiddenError(action, "shipment belongs to another customer")
	}
	return nil
}

// AuthorizeAdmin admits active administrators. An inactive administrator is
// forbidden, not unauthenticated.
func (g AccessGuard) AuthorizeAdmin(actor *account.Account, action string) error {
	if err := g.requireRole(actor, account.RoleAdmin, action); err != nil {
		return err
	}
	if !actor.IsActive() {
		return errs.NewForbiddenError(action, "admin account is inactive")
	}
	return nil
}

// AuthorizeRole admits any account of the given role, for operations that are
// not tied to a single shipment (listings, dashboards, booking).
func (g AccessGuard) AuthorizeRole(actor *account.Account, role account.Role, action string) error {
	if err := g.requireRole(actor, role, action); err != nil {
		return err
	}
	if role != account.RoleCustomer && !actor.IsActive() {
		return errs.NewForbiddenError(action, role.String()+" account is inactive")
	}
	return nil
}

func (g AccessGuard) requireRole(actor *account.Account, role account.Role, action string) error {
	if err := actor.Validate(); err != nil {
		return errs.NewUnauthenticatedError(err)
	}
	if actor.Role() != role {
		return errs.NewForbiddenError(action, "requires "+role.String()+" role")
	}
	return nil
}
