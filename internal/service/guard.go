package service

import (
	"context"
	"errors"
)

// ErrNotOwner is returned when a caller tries to act on a home another
// realtor owns.
var ErrNotOwner = errors.New("caller does not own this home")

// AccessGuard enforces home ownership for mutation and restricted reads.
// Role checks are handled separately by the route middleware; both checks
// are independent and both must pass.
type AccessGuard struct {
	homes HomeService
}

// NewAccessGuard creates a new AccessGuard
func NewAccessGuard(homes HomeService) *AccessGuard {
	return &AccessGuard{homes: homes}
}

// CheckOwnership resolves the home's owner through the authoritative
// GetOwner lookup and rejects callers who are not that owner. A missing
// home surfaces as ErrHomeNotFound.
func (g *AccessGuard) CheckOwnership(ctx context.Context, homeID, userID int) error {
	owner, err := g.homes.GetOwner(ctx, homeID)
	if err != nil {
		return err
	}
	if owner.ID != userID {
		return ErrNotOwner
	}
	return nil
}
