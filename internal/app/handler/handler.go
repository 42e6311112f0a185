package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/a957924278/mogutouERP-go/internal/app/ds"
	"github.com/a957924278/mogutouERP-go/internal/app/middleware"
	"github.com/a957924278/mogutouERP-go/internal/app/repository"
	"github.com/a957924278/mogutouERP-go/internal/app/service"
)

type Handler struct {
	Repository     *repository.Repository
	AuthService    *service.AuthService
	CustomerOrders *service.CustomerOrderService
	PurchaseOrders *service.PurchaseOrderService
	AuthMiddleware *middleware.AuthMiddleware
}

func NewHandler(
	r *repository.Repository,
	authService *service.AuthService,
	customerOrders *service.CustomerOrderService,
	purchaseOrders *service.PurchaseOrderService,
	authMiddleware *middleware.AuthMiddleware,
) *Handler {
	return &Handler{
		Repository:     r,
		AuthService:    authService,
		CustomerOrders: customerOrders,
		PurchaseOrders: purchaseOrders,
		AuthMiddleware: authMiddleware,
	}
}

// helper для единых ошибок
func fail(ctx *gin.Context, code int, message string) {
	ctx.JSON(code, gin.H{
		"status":  "fail",
		"message": message,
	})
}

// failDomain - маппинг доменных ошибок воркфлоу на HTTP статусы
func failDomain(ctx *gin.Context, err error) {
	var insufficient *ds.InsufficientStockError
	switch {
	case errors.As(err, &insufficient):
		ctx.JSON(http.StatusConflict, gin.H{
			"status":       "fail",
			"message":      insufficient.Error(),
			"commodity_id": insufficient.CommodityID,
			"stock":        insufficient.Stock,
			"requested":    insufficient.Requested,
		})
	case errors.Is(err, ds.ErrNotFound):
		fail(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, ds.ErrInvalidState):
		fail(ctx, http.StatusConflict, "order is already confirmed")
	case errors.Is(err, ds.ErrForbidden):
		fail(ctx, http.StatusForbidden, "only the order creator can perform this operation")
	default:
		logrus.Error(err)
		fail(ctx, http.StatusInternalServerError, "internal server error")
	}
}

// pagination - разбор query-параметров page/limit с дефолтами 1/10
func pagination(ctx *gin.Context) (int, int) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	return page, limit
}

// pathID - разбор числового ID из параметра пути
func pathID(ctx *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil || id <= 0 {
		fail(ctx, http.StatusBadRequest, "invalid "+name+", must be a positive integer")
		return 0, false
	}
	return id, true
}
