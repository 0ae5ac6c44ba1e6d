package mongoconfig

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryRef is a lenient reference to a category document. Input that
// parses as an ObjectId keeps the typed form and is stored as one; anything
// else is carried and stored as the literal string it arrived with, so list
// and write operations never fail on a malformed category id.
type CategoryRef struct {
	oid   primitive.ObjectID
	raw   string
	typed bool
}

// ParseCategoryRef never fails: unparseable input falls back to the raw form.
func ParseCategoryRef(s string) CategoryRef {
	if oid, err := primitive.ObjectIDFromHex(s); err == nil {
		return CategoryRef{oid: oid, typed: true}
	}
	return CategoryRef{raw: s}
}

// RefFromObjectID wraps a store-assigned id in its typed reference form.
func RefFromObjectID(oid primitive.ObjectID) CategoryRef {
	return CategoryRef{oid: oid, typed: true}
}

// IsZero reports whether the ref is absent. The driver's omitempty handling
// relies on this, so absent refs are not written at all.
func (r CategoryRef) IsZero() bool {
	return !r.typed && r.raw == ""
}

// String returns the canonical string encoding: the hex form for typed refs,
// the literal input otherwise. Parsing the result yields an equal ref.
func (r CategoryRef) String() string {
	if r.typed {
		return r.oid.Hex()
	}
	return r.raw
}

// ObjectID returns the typed form and whether the ref carries one.
func (r CategoryRef) ObjectID() (primitive.ObjectID, bool) {
	return r.oid, r.typed
}

func (r CategoryRef) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if r.typed {
		return bson.MarshalValue(r.oid)
	}
	return bson.MarshalValue(r.raw)
}

func (r *CategoryRef) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.ObjectID:
		var oid primitive.ObjectID
		if err := bson.UnmarshalValue(t, data, &oid); err != nil {
			return err
		}
		*r = CategoryRef{oid: oid, typed: true}
		return nil
	case bsontype.String:
		var s string
		if err := bson.UnmarshalValue(t, data, &s); err != nil {
			return err
		}
		*r = ParseCategoryRef(s)
		return nil
	case bsontype.Null, bsontype.Undefined:
		*r = CategoryRef{}
		return nil
	default:
		return fmt.Errorf("cannot decode %v into a category ref", t)
	}
}
