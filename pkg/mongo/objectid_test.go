package mongo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/saasbase/pkg/mongo"
)

func TestObjectID(t *testing.T) {
	t.Parallel()

	const hex = "507f1f77bcf86cd799439011"

	assert.True(t, mongo.IsValidObjectID(hex))
	assert.True(t, mongo.IsValidObjectID(bson.NewObjectID().Hex()))
	assert.False(t, mongo.IsValidObjectID(""))
	assert.False(t, mongo.IsValidObjectID("xyz"))
	assert.False(t, mongo.IsValidObjectID("507f1f77bcf86cd79943901z"))

	oid, ok := mongo.ToObjectID(hex)
	assert.True(t, ok)
	assert.Equal(t, hex, oid.Hex())

	oid, ok = mongo.ToObjectID("nope")
	assert.False(t, ok)
	assert.True(t, oid.IsZero())
}
