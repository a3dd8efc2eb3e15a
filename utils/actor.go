package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
)

const actorKey = "actor"

// Actor is the authenticated caller. All role and branch checks go through
// its methods instead of being re-derived per handler.
type Actor struct {
	UserID     uint
	Role       string
	BranchID   uint
	BranchName string
}

func (a Actor) IsAdmin() bool   { return a.Role == entity.RoleAdmin }
func (a Actor) IsManager() bool { return a.Role == entity.RoleManager }
func (a Actor) IsKitchen() bool { return a.Role == entity.RoleKitchenStaff }

// CanAccessBranch: admins see every branch, everyone else only their own.
func (a Actor) CanAccessBranch(branchID uint) bool {
	if a.IsAdmin() {
		return true
	}
	return a.BranchID != 0 && a.BranchID == branchID
}

func SetActor(c *gin.Context, a Actor) {
	c.Set(actorKey, a)
}

func CurrentActor(c *gin.Context) Actor {
	if v, ok := c.Get(actorKey); ok {
		if a, ok := v.(Actor); ok {
			return a
		}
	}
	return Actor{}
}
