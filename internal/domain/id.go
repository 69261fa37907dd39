package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// ParseID parses a 24 character hex document identifier.
func ParseID(s string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, Invalid("Invalid campaign id")
	}
	return oid, nil
}

// IsValidID reports whether s is a well-formed document identifier.
func IsValidID(s string) bool {
	return primitive.IsValidObjectID(s)
}
