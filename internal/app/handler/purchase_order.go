package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/a957924278/mogutouERP-go/internal/app/ds"
	"github.com/a957924278/mogutouERP-go/internal/app/middleware"
	"github.com/a957924278/mogutouERP-go/internal/app/service"
)

// toPurchaseOrderView - заказ поставщику со строками и деталями товаров
func toPurchaseOrderView(o ds.PurchaseOrder) gin.H {
	goods := make([]gin.H, 0, len(o.Goods))
	for _, item := range o.Goods {
		g := gin.H{
			"goodsId": item.GoodsID,
			"number":  item.Number,
		}
		if item.Commodity != nil {
			g["name"] = item.Commodity.Name
			g["colour"] = item.Commodity.Colour
			g["size"] = item.Commodity.Size
			g["brand"] = item.Commodity.Brand
			g["price"] = item.Commodity.Price
			g["purchasePrice"] = item.Commodity.PurchasePrice
		}
		goods = append(goods, g)
	}

	return gin.H{
		"id":           o.ID,
		"operator":     o.Operator,
		"operatorName": operatorName(o.OperatorUser),
		"amount":       o.Amount,
		"freight":      o.Freight,
		"remarks":      o.Remarks,
		"state":        o.State,
		"createdAt":    o.CreatedAt,
		"updatedAt":    o.UpdatedAt,
		"goods":        goods,
	}
}

// CreatePurchaseOrder - создание заказа поставщику (без складских эффектов)
func (h *Handler) CreatePurchaseOrder(ctx *gin.Context) {
	operatorID, exists := middleware.GetUserID(ctx)
	if !exists {
		fail(ctx, http.StatusUnauthorized, "authentication required")
		return
	}

	var req service.CreatePurchaseOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.PurchaseOrders.Create(req, operatorID)
	if err != nil {
		failDomain(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"status": "ok", "order": order})
}

// GetPurchaseOrders - постраничный список заказов поставщику
func (h *Handler) GetPurchaseOrders(ctx *gin.Context) {
	page, limit := pagination(ctx)

	orders, total, err := h.PurchaseOrders.List(page, limit)
	if err != nil {
		failDomain(ctx, err)
		return
	}

	views := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		views = append(views, toPurchaseOrderView(o))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"orders": views,
		"total":  total,
		"page":   page,
		"limit":  limit,
	})
}

// ConfirmPurchaseOrder - подтверждение заказа: приход на склад
func (h *Handler) ConfirmPurchaseOrder(ctx *gin.Context) {
	callerID, exists := middleware.GetUserID(ctx)
	if !exists {
		fail(ctx, http.StatusUnauthorized, "authentication required")
		return
	}

	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req confirmOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "invalid request body: freight must be >= 0")
		return
	}

	order, err := h.PurchaseOrders.Confirm(id, *req.Freight, callerID)
	if err != nil {
		failDomain(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok", "order": order})
}

// DeletePurchaseOrder - удаление неподтверждённого заказа (без складских
// эффектов: создание ничего не резервировало)
func (h *Handler) DeletePurchaseOrder(ctx *gin.Context) {
	callerID, exists := middleware.GetUserID(ctx)
	if !exists {
		fail(ctx, http.StatusUnauthorized, "authentication required")
		return
	}

	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := h.PurchaseOrders.Delete(id, callerID); err != nil {
		failDomain(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok", "message": "order deleted"})
}
