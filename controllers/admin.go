package controllers

import (
	"context"
	"net/http"

	"github.com/inquirylab/inquiry-board-be/config"
	db2 "github.com/inquirylab/inquiry-board-be/db"
	"github.com/inquirylab/inquiry-board-be/model"
	"github.com/inquirylab/inquiry-board-be/util"
	"github.com/inquirylab/inquiry-board-be/util/log"
	"golang.org/x/crypto/bcrypt"
)

// AdminController fronts the persisted admin registry. It is the only
// place that touches password hashes.
type AdminController struct {
	db db2.AdminDatabase
}

func NewAdminController(db db2.AdminDatabase) *AdminController {
	return &AdminController{db}
}

// EnsureDefaultAdmin seeds the registry on first boot so the panel is
// reachable before any admin exists.
func (ac *AdminController) EnsureDefaultAdmin(ctx context.Context) error {
	admins, err := ac.db.GetAdmins(ctx)
	if err != nil {
		return err
	}
	if len(admins) > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(config.DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := ac.db.CreateAdmin(ctx, &db2.CreateAdmin{
		Id:           config.DefaultAdminId,
		Name:         config.DefaultAdminName,
		PasswordHash: string(hash),
	}); err != nil {
		return err
	}
	log.Log.Warnf("seeded default admin account %q; change its password", config.DefaultAdminId)
	return nil
}

func (ac *AdminController) IsAdmin(ctx context.Context, actorId string) (bool, error) {
	_, err := ac.db.GetAdmin(ctx, actorId)
	if err != nil {
		if db2.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (ac *AdminController) CheckPassword(ctx context.Context, actorId, secret string) (bool, error) {
	admin, err := ac.db.GetAdmin(ctx, actorId)
	if err != nil {
		if db2.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(secret)) == nil, nil
}

// Login verifies registry credentials and returns the account, minus
// its hash, for the admin panel session.
func (ac *AdminController) Login(ctx context.Context, id, password string) (*model.AdminAccount, *util.HTTPError) {
	ok, err := ac.CheckPassword(ctx, id, password)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if !ok {
		return nil, util.BuildUnauthorizedHTTPErr()
	}
	admin, err := ac.db.GetAdmin(ctx, id)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return admin, nil
}

func (ac *AdminController) ListAdmins(ctx context.Context) ([]*model.AdminAccount, *util.HTTPError) {
	admins, err := ac.db.GetAdmins(ctx)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return admins, nil
}

func (ac *AdminController) CreateAdmin(ctx context.Context, id, name, password string) (*model.AdminAccount, *util.HTTPError) {
	if id == "" || password == "" {
		return nil, util.BuildBadRequestHTTPErr("id and password are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, &util.HTTPError{Status: http.StatusInternalServerError, Message: "hash error"}
	}
	if err := ac.db.CreateAdmin(ctx, &db2.CreateAdmin{
		Id:           id,
		Name:         name,
		PasswordHash: string(hash),
	}); err != nil {
		if err == db2.ErrDuplicateId {
			return nil, util.BuildBadRequestHTTPErr("admin id already exists")
		}
		return nil, util.BuildDbHTTPErr(err)
	}
	admin, err := ac.db.GetAdmin(ctx, id)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return admin, nil
}

// RemoveAdmin refuses to delete the last account so the registry can
// never lock everyone out.
func (ac *AdminController) RemoveAdmin(ctx context.Context, id string) *util.HTTPError {
	admins, err := ac.db.GetAdmins(ctx)
	if err != nil {
		return util.BuildDbHTTPErr(err)
	}
	if len(admins) <= 1 {
		return util.BuildBadRequestHTTPErr("cannot remove the last admin account")
	}
	if err := ac.db.DeleteAdmin(ctx, id); err != nil {
		return util.BuildDbHTTPErr(err)
	}
	return nil
}

func (ac *AdminController) ChangePassword(ctx context.Context, id, newPassword string) *util.HTTPError {
	if newPassword == "" {
		return util.BuildBadRequestHTTPErr("password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return &util.HTTPError{Status: http.StatusInternalServerError, Message: "hash error"}
	}
	if err := ac.db.SetAdminPassword(ctx, id, string(hash)); err != nil {
		return util.BuildDbHTTPErr(err)
	}
	return nil
}
