package services

import (
	"context"
	"log/slog"

	"github.com/joshua-takyi/kost/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// lookupListingNames resolves the names of the given listings for a read
// model. A failed lookup is logged and leaves the names empty.
func lookupListingNames(ctx context.Context, resolver models.ListingNameResolver, logger *slog.Logger, ids []primitive.ObjectID) map[primitive.ObjectID]string {
	if len(ids) == 0 {
		return map[primitive.ObjectID]string{}
	}
	names, err := resolver.GetListingNames(ctx, ids)
	if err != nil {
		logger.Warn("Failed to resolve listing names", "listings", len(ids), "error", err)
		return map[primitive.ObjectID]string{}
	}
	return names
}
