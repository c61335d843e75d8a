package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"loomspace_backend/internal/feature/auth/domain/entity"
	"loomspace_backend/internal/feature/auth/transport/http/dto"
	"loomspace_backend/internal/platform/http/httperr"
	jwtmw "loomspace_backend/internal/platform/jwt"
)

// UserUsecase は管理者向けのユーザー管理操作を定義します。
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]entity.User, error)
	DeleteUser(ctx context.Context, actorID, id string) error
}

// UserHandler は管理者向けのユーザー管理エンドポイントを処理します。
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// List は GET /admin/users を処理します。
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserListRes(users))
}

// Delete は DELETE /admin/users/:id を処理します。
func (h *UserHandler) Delete(c *gin.Context) {
	actorID, _ := jwtmw.UserID(c)
	id := c.Param("id")
	if err := h.users.DeleteUser(c.Request.Context(), actorID, id); err != nil {
		httperr.Respond(c, err)
		return
	}
	slog.Info("user deleted", "user_id", id, "actor_id", actorID)
	c.JSON(http.StatusOK, dto.MessageRes{Message: "user deleted"})
}
