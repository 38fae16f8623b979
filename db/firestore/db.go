// Package firestore implements db.Database on Cloud Firestore. Posts
// live in a single collection with comments embedded in each document;
// admins in a second small collection.
package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	db2 "github.com/inquirylab/inquiry-board-be/db"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	postsCollection  = "posts"
	adminsCollection = "admins"
)

type FirestoreDB struct {
	*PostDB
	*AdminDB
	client *firestore.Client
}

func GetDatabase(ctx context.Context, app *firebase.App) (db2.Database, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, err
	}
	return &FirestoreDB{
		PostDB:  getPostDB(client),
		AdminDB: getAdminDB(client),
		client:  client,
	}, nil
}

func (fdb *FirestoreDB) Close() error {
	return fdb.client.Close()
}

// mapErr folds a firestore/grpc error into the storage taxonomy.
// Anything that is not a missing document counts as the store being
// unavailable; callers decide whether a retry is safe.
func mapErr(op string, err error) error {
	if status.Code(err) == codes.NotFound {
		return db2.ErrNotFound
	}
	return errors.Wrapf(db2.ErrUnavailable, "%v: %v", op, err)
}
