package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserID is the canonical string form of a user identifier. Owner ids written
// by older clients exist in Mongo as raw ObjectIDs while newer records carry
// the hex string; decoding normalizes both to the same hex representation so
// ownership checks can always compare plain strings.
type UserID string

func (id UserID) String() string {
	return string(id)
}

// Equals compares the canonical forms of both sides.
func (id UserID) Equals(other string) bool {
	return string(id) == other
}

func (id UserID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(string(id))
}

func (id *UserID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bson.TypeString:
		var s string
		if err := bson.UnmarshalValue(t, data, &s); err != nil {
			return err
		}
		*id = UserID(s)
		return nil
	case bson.TypeObjectID:
		var oid primitive.ObjectID
		if err := bson.UnmarshalValue(t, data, &oid); err != nil {
			return err
		}
		*id = UserID(oid.Hex())
		return nil
	case bson.TypeNull:
		*id = ""
		return nil
	default:
		return fmt.Errorf("cannot decode %s into models.UserID", t)
	}
}
