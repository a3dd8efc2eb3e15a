package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/pkg/resp"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/services"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/utils"
)

type BranchController struct {
	Service *services.BranchService
}

func NewBranchController(service *services.BranchService) *BranchController {
	return &BranchController{Service: service}
}

func (bc *BranchController) Create(c *gin.Context) {
	actor := utils.CurrentActor(c)
	var req services.BranchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	b, err := bc.Service.Create(actor, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "branch created", b)
}

func (bc *BranchController) List(c *gin.Context) {
	actor := utils.CurrentActor(c)
	out, err := bc.Service.List(actor)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ok", out)
}

func (bc *BranchController) Detail(c *gin.Context) {
	actor := utils.CurrentActor(c)
	b, err := bc.Service.Get(actor, paramID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ok", b)
}

func (bc *BranchController) Update(c *gin.Context) {
	actor := utils.CurrentActor(c)
	var req services.BranchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	b, err := bc.Service.Update(actor, paramID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "branch updated", b)
}

func (bc *BranchController) Delete(c *gin.Context) {
	actor := utils.CurrentActor(c)
	if err := bc.Service.Delete(actor, paramID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "branch deleted", nil)
}
