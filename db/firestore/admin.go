package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	db2 "github.com/inquirylab/inquiry-board-be/db"
	"github.com/inquirylab/inquiry-board-be/model"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type AdminDB struct {
	client *firestore.Client
}

func getAdminDB(client *firestore.Client) *AdminDB {
	return &AdminDB{client}
}

func (adb *AdminDB) admins() *firestore.CollectionRef {
	return adb.client.Collection(adminsCollection)
}

func docToAdmin(doc *firestore.DocumentSnapshot) (*model.AdminAccount, error) {
	var admin model.AdminAccount
	if err := doc.DataTo(&admin); err != nil {
		return nil, errors.Wrap(err, "decode admin document")
	}
	admin.Id = doc.Ref.ID
	return &admin, nil
}

func (adb *AdminDB) GetAdmins(ctx context.Context) ([]*model.AdminAccount, error) {
	iter := adb.admins().OrderBy("createdAt", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	admins := []*model.AdminAccount{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapErr("list admins", err)
		}
		admin, err := docToAdmin(doc)
		if err != nil {
			return nil, err
		}
		admins = append(admins, admin)
	}
	return admins, nil
}

func (adb *AdminDB) GetAdmin(ctx context.Context, id string) (*model.AdminAccount, error) {
	if id == "" {
		return nil, db2.ErrNotFound
	}
	doc, err := adb.admins().Doc(id).Get(ctx)
	if err != nil {
		return nil, mapErr("get admin", err)
	}
	return docToAdmin(doc)
}

func (adb *AdminDB) CreateAdmin(ctx context.Context, req *db2.CreateAdmin) error {
	_, err := adb.admins().Doc(req.Id).Create(ctx, &model.AdminAccount{
		Name:         req.Name,
		PasswordHash: req.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return db2.ErrDuplicateId
		}
		return mapErr("create admin", err)
	}
	return nil
}

func (adb *AdminDB) DeleteAdmin(ctx context.Context, id string) error {
	if id == "" {
		return db2.ErrNotFound
	}
	if _, err := adb.admins().Doc(id).Delete(ctx, firestore.Exists); err != nil {
		return mapErr("delete admin", err)
	}
	return nil
}

func (adb *AdminDB) SetAdminPassword(ctx context.Context, id, passwordHash string) error {
	if id == "" {
		return db2.ErrNotFound
	}
	if _, err := adb.admins().Doc(id).Update(ctx, []firestore.Update{
		{Path: "passwordHash", Value: passwordHash},
	}); err != nil {
		return mapErr("set admin password", err)
	}
	return nil
}
