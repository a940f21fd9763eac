package mongo

import "go.mongodb.org/mongo-driver/v2/bson"

// IsValidObjectID reports whether id is a 24 character hex ObjectID.
func IsValidObjectID(id string) bool {
	_, err := bson.ObjectIDFromHex(id)
	return err == nil
}

// ToObjectID converts id to an ObjectID. The second result is false for invalid input.
func ToObjectID(id string) (bson.ObjectID, bool) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, false
	}
	return oid, true
}
