package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	db2 "github.com/inquirylab/inquiry-board-be/db"
	"github.com/inquirylab/inquiry-board-be/policy"
	"github.com/inquirylab/inquiry-board-be/util/log"
	"golang.org/x/crypto/bcrypt"
)

const actorKey = "actor"

// Identity resolves the acting user for the request and stores it in
// the context. Board identities are self-issued (X-User-Id); admin
// status only comes from registry credentials presented per request
// (X-Admin-Id / X-Admin-Key), never from a client-side flag.
func Identity(admins db2.AdminDatabase) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := policy.Actor{
			UserId: c.GetHeader("X-User-Id"),
		}

		adminId := c.GetHeader("X-Admin-Id")
		if adminId != "" {
			admin, err := admins.GetAdmin(c, adminId)
			if err == nil &&
				bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(c.GetHeader("X-Admin-Key"))) == nil {
				actor.IsAdmin = true
				if actor.UserId == "" {
					actor.UserId = adminId
				}
			} else {
				log.Log.WithField("adminId", adminId).Warn("rejected admin credentials")
			}
		}

		c.Set(actorKey, actor)
	}
}

// RequireAdmin aborts with 403 unless Identity established an admin
// actor. Must run after Identity.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetActor(c).IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "admin credentials required",
			})
			c.Abort()
		}
	}
}

func GetActor(c *gin.Context) policy.Actor {
	actor, ok := c.Get(actorKey)
	if !ok {
		return policy.Actor{}
	}
	return actor.(policy.Actor)
}
