// Package handler はitemsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KoheiTanihara/Gado-back/internal/feature/items/domain/entity"
	"github.com/KoheiTanihara/Gado-back/internal/feature/items/transport/http/dto"
	"github.com/KoheiTanihara/Gado-back/internal/feature/items/usecase"
	jwtmw "github.com/KoheiTanihara/Gado-back/internal/platform/jwt"
)

// ItemUsecase はアイテム操作のユースケースを定義します。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ItemUsecase interface {
	CreateItem(ctx context.Context, ownerID uint, title, description string) (*entity.Item, error)
	ListItems(ctx context.Context, ownerID uint, skip, limit int) ([]entity.Item, error)
	GetItem(ctx context.Context, ownerID, id uint) (*entity.Item, error)
	UpdateItem(ctx context.Context, ownerID, id uint, title, description string) (*entity.Item, error)
	DeleteItem(ctx context.Context, ownerID, id uint) error
}

// ItemHandler はアイテムに関するHTTPリクエストを処理します。
// すべてのエンドポイントはAuthRequiredミドルウェアの背後に配置され、
// 解決済みユーザーのIDでリポジトリ操作がスコープされます。
type ItemHandler struct {
	uc ItemUsecase
}

// NewItemHandler は新しいItemHandlerを作成します。
func NewItemHandler(uc ItemUsecase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Create はアイテム作成APIを処理します。成功時は201を返却します。
func (h *ItemHandler) Create(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return
	}
	var req dto.ItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	item, err := h.uc.CreateItem(c.Request.Context(), user.ID, req.Title, req.Description)
	if err != nil {
		slog.Error("item create failed", "error", err, "owner_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, dto.ItemResponseFromEntity(item))
}

// List は認証済みユーザーのアイテム一覧APIを処理します。
// skip/limitクエリパラメータでページングします（デフォルト: skip=0, limit=100）。
func (h *ItemHandler) List(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return
	}
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid skip parameter"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit parameter"})
		return
	}

	items, err := h.uc.ListItems(c.Request.Context(), user.ID, skip, limit)
	if err != nil {
		slog.Error("item list failed", "error", err, "owner_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		out = append(out, dto.ItemResponseFromEntity(&items[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get は単一アイテム取得APIを処理します。
// 他ユーザーのアイテムは存在しないものとして404を返却します。
func (h *ItemHandler) Get(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return
	}
	id, err := parseItemID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}
	item, err := h.uc.GetItem(c.Request.Context(), user.ID, id)
	if err != nil {
		h.renderItemError(c, err, user.ID)
		return
	}
	c.JSON(http.StatusOK, dto.ItemResponseFromEntity(item))
}

// Update はアイテム更新APIを処理します。
func (h *ItemHandler) Update(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return
	}
	id, err := parseItemID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}
	var req dto.ItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	item, err := h.uc.UpdateItem(c.Request.Context(), user.ID, id, req.Title, req.Description)
	if err != nil {
		h.renderItemError(c, err, user.ID)
		return
	}
	c.JSON(http.StatusOK, dto.ItemResponseFromEntity(item))
}

// Delete はアイテム削除APIを処理します。
func (h *ItemHandler) Delete(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return
	}
	id, err := parseItemID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}
	if err := h.uc.DeleteItem(c.Request.Context(), user.ID, id); err != nil {
		h.renderItemError(c, err, user.ID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item deleted successfully"})
}

// renderItemError はユースケースエラーをHTTPステータスにマッピングします。
func (h *ItemHandler) renderItemError(c *gin.Context, err error, ownerID uint) {
	if errors.Is(err, usecase.ErrItemNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": usecase.ErrItemNotFound.Error()})
		return
	}
	slog.Error("item operation failed", "error", err, "owner_id", ownerID)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// parseItemID は:idパスパラメータを解析します。
func parseItemID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
