package lbson

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ennanzhai/hails/lio"
)

// GenObjectID returns a fresh object identifier, sequenced through the
// surrounding computation's effect discipline.  The identifier's embedded
// creation time is available via its Timestamp method.
func GenObjectID[L lio.Label, P any, S any](m *lio.LIO[L, P, S]) primitive.ObjectID {
	return lio.IOTCB(m, primitive.NewObjectID)
}
