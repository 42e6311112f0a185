package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/a957924278/mogutouERP-go/internal/app/ds"
)

// toCommodityView - представление товара; закупочная цена видна только
// администратору
func toCommodityView(c ds.Commodity, withPurchasePrice bool) gin.H {
	view := gin.H{
		"id":            c.ID,
		"name":          c.Name,
		"colour":        c.Colour,
		"size":          c.Size,
		"brand":         c.Brand,
		"number":        c.Number,
		"presaleNumber": c.PresaleNumber,
		"salesVolume":   c.SalesVolume,
		"price":         c.Price,
		"createdAt":     c.CreatedAt,
		"updatedAt":     c.UpdatedAt,
	}
	if withPurchasePrice {
		view["purchasePrice"] = c.PurchasePrice
	}
	return view
}

// CreateCommodity - создание товара (только администратор)
func (h *Handler) CreateCommodity(ctx *gin.Context) {
	var req struct {
		Name          string  `json:"name" binding:"required"`
		Colour        string  `json:"colour" binding:"required"`
		Size          string  `json:"size" binding:"required"`
		Brand         string  `json:"brand" binding:"required"`
		Number        int     `json:"number" binding:"gte=0"`
		PresaleNumber int     `json:"presaleNumber" binding:"gte=0"`
		SalesVolume   int     `json:"salesVolume" binding:"gte=0"`
		Price         float64 `json:"price" binding:"required,gt=0"`
		PurchasePrice float64 `json:"purchasePrice" binding:"required,gt=0"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "invalid request body")
		return
	}

	commodity := ds.Commodity{
		Name:          req.Name,
		Colour:        req.Colour,
		Size:          req.Size,
		Brand:         req.Brand,
		Number:        req.Number,
		PresaleNumber: req.PresaleNumber,
		SalesVolume:   req.SalesVolume,
		Price:         req.Price,
		PurchasePrice: req.PurchasePrice,
	}
	if err := h.Repository.CreateCommodity(&commodity); err != nil {
		failDomain(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"status": "ok", "commodity": toCommodityView(commodity, true)})
}

// GetCommodity - получение товара по ID
func (h *Handler) GetCommodity(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	commodity, err := h.Repository.GetCommodity(id)
	if err != nil {
		fail(ctx, http.StatusNotFound, "commodity not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok", "commodity": toCommodityView(commodity, true)})
}

// GetCommodities - список товаров без закупочной цены (любой сотрудник)
func (h *Handler) GetCommodities(ctx *gin.Context) {
	h.listCommodities(ctx, false)
}

// GetCommoditiesForAdmin - список товаров с закупочной ценой (администратор)
func (h *Handler) GetCommoditiesForAdmin(ctx *gin.Context) {
	h.listCommodities(ctx, true)
}

func (h *Handler) listCommodities(ctx *gin.Context, withPurchasePrice bool) {
	name := ctx.Query("name")
	page, limit := pagination(ctx)

	commodities, total, err := h.Repository.GetCommodities(name, page, limit)
	if err != nil {
		failDomain(ctx, err)
		return
	}

	views := make([]gin.H, 0, len(commodities))
	for _, c := range commodities {
		views = append(views, toCommodityView(c, withPurchasePrice))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"commodities": views,
		"total":       total,
		"page":        page,
		"limit":       limit,
	})
}

// UpdateCommodity - частичное обновление товара (только администратор)
func (h *Handler) UpdateCommodity(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req struct {
		Name          *string  `json:"name"`
		Colour        *string  `json:"colour"`
		Size          *string  `json:"size"`
		Brand         *string  `json:"brand"`
		Number        *int     `json:"number" binding:"omitempty,gte=0"`
		PresaleNumber *int     `json:"presaleNumber" binding:"omitempty,gte=0"`
		SalesVolume   *int     `json:"salesVolume" binding:"omitempty,gte=0"`
		Price         *float64 `json:"price" binding:"omitempty,gt=0"`
		PurchasePrice *float64 `json:"purchasePrice" binding:"omitempty,gt=0"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, "invalid request body")
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Colour != nil {
		fields["colour"] = *req.Colour
	}
	if req.Size != nil {
		fields["size"] = *req.Size
	}
	if req.Brand != nil {
		fields["brand"] = *req.Brand
	}
	if req.Number != nil {
		fields["number"] = *req.Number
	}
	if req.PresaleNumber != nil {
		fields["presale_number"] = *req.PresaleNumber
	}
	if req.SalesVolume != nil {
		fields["sales_volume"] = *req.SalesVolume
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.PurchasePrice != nil {
		fields["purchase_price"] = *req.PurchasePrice
	}
	if len(fields) == 0 {
		fail(ctx, http.StatusBadRequest, "no fields to update")
		return
	}

	commodity, err := h.Repository.UpdateCommodityFields(id, fields)
	if err != nil {
		failDomain(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok", "commodity": toCommodityView(commodity, true)})
}

// DeleteCommodity - мягкое удаление товара (только администратор)
func (h *Handler) DeleteCommodity(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := h.Repository.DeleteCommodity(id); err != nil {
		failDomain(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok", "message": "commodity deleted"})
}
