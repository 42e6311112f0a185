package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/a957924278/mogutouERP-go/internal/app/ds"
	"github.com/a957924278/mogutouERP-go/internal/app/middleware"
	"github.com/a957924278/mogutouERP-go/internal/app/service"
)

// confirmOrderRequest - тело запроса подтверждения заказа
type confirmOrderRequest struct {
	Freight *float64 `json:"freight" binding:"required,gte=0"`
}

// operatorName - имя оператора для ответа списка
func operatorName(u *ds.User) string {
	if u == nil {
		return "unknown"
	}
	return u.Name
}

// toCustomerOrderView - заказ со строками и деталями товаров
func toCustomerOrderView(o ds.CustomerOrder) gin.H {
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
		}
		goods = append(goods, g)
	}

	return gin.H{
		"id":              o.ID,
		"operator":        o.Operator,
		"operatorName":    operatorName(o.OperatorUser),
		"customerName":    o.CustomerName,
		"customerTel":     o.CustomerTel,
		"deliveryAddress": o.DeliveryAddress,
		"deliveryTime":    o.DeliveryTime,
		"amount":          o.Amount,
		"deposit":         o.Deposit,
		"remarks":         o.Remarks,
		"state":           o.State,
		"freight":         o.Freight,
		"createdAt":       o.CreatedAt,
		"updatedAt":       o.UpdatedAt,
		"goods":           goods,
	}
}

// CreateCustomerOrder - создание клиентского заказа
// @Summary Create customer order
// @Description Create a customer order and reserve presale stock for each line item
// @Tags customer-orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateCustomerOrderRequest true "Order data"
// @Success 201 {object} map[string]interface{} "Order created"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Commodity not found"
// @Router /api/customer-orders [post]
func (h *Handler) CreateCustomerOrder(ctx *gin.Context) {
	operatorID, exists := middleware.GetUserID(ctx)
	if !exists {
		fail(ctx, http.StatusUnauthorized, "authentication required")
		return
	}

	var req service.CreateCustomerOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.CustomerOrders.Create(req, operatorID)
	if err != nil {
		failDomain(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"status": "ok", "order": order})
}

// GetCustomerOrders - постраничный список клиентских заказов
func (h *Handler) GetCustomerOrders(ctx *gin.Context) {
	page, limit := pagination(ctx)

	orders, total, err := h.CustomerOrders.List(page, limit)
	if err != nil {
		failDomain(ctx, err)
		return
	}

	views := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		views = append(views, toCustomerOrderView(o))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"orders": views,
		"total":  total,
		"page":   page,
		"limit":  limit,
	})
}

// ConfirmCustomerOrder - подтверждение заказа создателем
// @Summary Confirm customer order
// @Description Deduct stock for every line item and mark the order confirmed
// @Tags customer-orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param request body confirmOrderRequest true "Freight"
// @Success 200 {object} map[string]interface{} "Order confirmed"
// @Failure 403 {object} map[string]string "Not the order creator"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 409 {object} map[string]string "Already confirmed or insufficient stock"
// @Router /api/customer-orders/{id}/confirm [put]
func (h *Handler) ConfirmCustomerOrder(ctx *gin.Context) {
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

	order, err := h.CustomerOrders.Confirm(id, *req.Freight, callerID)
	if err != nil {
		failDomain(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok", "order": order})
}

// DeleteCustomerOrder - удаление неподтверждённого заказа создателем
func (h *Handler) DeleteCustomerOrder(ctx *gin.Context) {
	callerID, exists := middleware.GetUserID(ctx)
	if !exists {
		fail(ctx, http.StatusUnauthorized, "authentication required")
		return
	}

	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := h.CustomerOrders.Delete(id, callerID); err != nil {
		failDomain(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok", "message": "order deleted"})
}
