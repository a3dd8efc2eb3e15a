package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/pkg/resp"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/services"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/utils"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{Service: service}
}

// ----- Categories -----

func (mc *MenuController) CreateCategory(c *gin.Context) {
	actor := utils.CurrentActor(c)
	var req services.CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := mc.Service.CreateCategory(actor, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "category created", cat)
}

func (mc *MenuController) ListCategories(c *gin.Context) {
	out, err := mc.Service.ListCategories()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ok", out)
}

func (mc *MenuController) UpdateCategory(c *gin.Context) {
	actor := utils.CurrentActor(c)
	var req services.CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := mc.Service.UpdateCategory(actor, paramID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "category updated", cat)
}

func (mc *MenuController) DeleteCategory(c *gin.Context) {
	actor := utils.CurrentActor(c)
	if err := mc.Service.DeleteCategory(actor, paramID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "category deleted", nil)
}

// ----- Menu items -----

func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	actor := utils.CurrentActor(c)
	var req services.MenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := mc.Service.CreateMenuItem(actor, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "menu item created", m)
}

func (mc *MenuController) ListMenuItems(c *gin.Context) {
	actor := utils.CurrentActor(c)
	branchID, _ := strconv.Atoi(c.Query("branchId"))
	categoryID, _ := strconv.Atoi(c.Query("categoryId"))
	activeOnly := c.Query("active") == "true"
	out, err := mc.Service.ListMenuItems(actor, uint(branchID), uint(categoryID), activeOnly)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ok", out)
}

func (mc *MenuController) GetMenuItem(c *gin.Context) {
	actor := utils.CurrentActor(c)
	m, err := mc.Service.GetMenuItem(actor, paramID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ok", m)
}

func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	actor := utils.CurrentActor(c)
	var req services.MenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := mc.Service.UpdateMenuItem(actor, paramID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "menu item updated", m)
}

func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	actor := utils.CurrentActor(c)
	if err := mc.Service.DeleteMenuItem(actor, paramID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "menu item deleted", nil)
}

// ----- Modifiers -----

func (mc *MenuController) CreateModifier(c *gin.Context) {
	actor := utils.CurrentActor(c)
	var req services.ModifierReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := mc.Service.CreateModifier(actor, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "modifier created", m)
}

func (mc *MenuController) ListModifiers(c *gin.Context) {
	out, err := mc.Service.ListModifiers()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ok", out)
}

func (mc *MenuController) DeleteModifier(c *gin.Context) {
	actor := utils.CurrentActor(c)
	if err := mc.Service.DeleteModifier(actor, paramID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "modifier deleted", nil)
}
