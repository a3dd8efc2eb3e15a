package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/pkg/resp"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/services"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/utils"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{Service: service}
}

func (ac *AuthController) Login(c *gin.Context) {
	var req services.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := ac.Service.Login(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "logged in", out)
}

func (ac *AuthController) Register(c *gin.Context) {
	actor := utils.CurrentActor(c)
	var req services.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := ac.Service.Register(actor, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "user created", user)
}

func (ac *AuthController) Me(c *gin.Context) {
	actor := utils.CurrentActor(c)
	user, err := ac.Service.Me(actor.UserID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ok", user)
}
