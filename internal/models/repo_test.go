package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseObjectID(t *testing.T) {
	id := primitive.NewObjectID()

	got, err := ParseObjectID("booking id", id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseObjectID("booking id", "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ParseObjectID("booking id", "not-hex")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "booking id")
}

func TestUniqueIDs(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	assert.Equal(t, []primitive.ObjectID{a, b}, uniqueIDs([]primitive.ObjectID{a, b, a, b}))
}
