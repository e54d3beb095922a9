package services

import (
	"context"
	"fmt"

	"github.com/joshua-takyi/kost/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Actor is the validated identity behind a request.
type Actor struct {
	ID   string
	Role models.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// EventPublisher delivers domain events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
}

// canManageListing reports whether the actor may change the listing or the
// records hanging off it.
func canManageListing(actor Actor, listing *models.Listing) bool {
	if actor.IsAdmin() {
		return true
	}
	if listing == nil {
		return false
	}
	id, err := primitive.ObjectIDFromHex(actor.ID)
	if err != nil {
		return false
	}
	return listing.OwnerID == id
}

func requireAdmin(actor Actor, what string) error {
	if actor.IsAdmin() {
		return nil
	}
	return fmt.Errorf("%w: only an admin may list all %s", models.ErrForbidden, what)
}

func requireSelfOrAdmin(actor Actor, userID, what string) error {
	if actor.IsAdmin() || actor.ID == userID {
		return nil
	}
	return fmt.Errorf("%w: you can only list your own %s", models.ErrForbidden, what)
}
