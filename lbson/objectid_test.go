package lbson

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ennanzhai/hails/lio"
)

func TestGenObjectID(t *testing.T) {
	t.Parallel()

	m := lio.New[level, struct{}, struct{}](public, secret, struct{}{}, struct{}{})

	id := GenObjectID(m)
	if id == primitive.NilObjectID {
		t.Fatal("generated a nil object id")
	}
	if other := GenObjectID(m); other == id {
		t.Error("two generated ids are identical")
	}

	// The id embeds its creation time.
	if d := time.Since(id.Timestamp()); d < -time.Minute || d > time.Minute {
		t.Errorf("embedded timestamp %v is not near now", id.Timestamp())
	}

	// Round-trips through the value bridge as a plain value.
	v, err := Val[level](id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := CastMaybe[primitive.ObjectID](v)
	if !ok || got != id {
		t.Errorf("object id round trip gave (%v, %v)", got, ok)
	}
}

func TestGenObjectIDOutsideContext(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("expected a panic outside a computation context")
		}
	}()
	GenObjectID[level, struct{}, struct{}](nil)
}
