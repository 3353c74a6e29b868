package routes

import (
	"net/http"

	"Fluxo/internal/contracts"
	appErrors "Fluxo/internal/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Registration(c *gin.Context) {
	var body contracts.RegisterRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	userEntity, err := h.UserService.Register(ctx, body.Name, body.Email, body.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.JwtService.GenerateToken(userEntity.Id)
	if err != nil {
		h.respondError(c, appErrors.ErrInternalServer.WithError(err))
		return
	}

	c.JSON(http.StatusCreated, contracts.AuthResponse{
		Message: "Usuário criado com sucesso",
		Token:   token,
		User:    userEntity,
	})
}

func (h *Handler) Authenticate(c *gin.Context) {
	var body contracts.LoginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	userEntity, err := h.UserService.Authenticate(ctx, body.Email, body.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.JwtService.GenerateToken(userEntity.Id)
	if err != nil {
		h.respondError(c, appErrors.ErrInternalServer.WithError(err))
		return
	}

	c.JSON(http.StatusOK, contracts.AuthResponse{
		Message: "Autenticado com sucesso",
		Token:   token,
		User:    userEntity,
	})
}

func (h *Handler) GetProfile(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	userEntity, err := h.UserService.GetByID(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.UserProfileResponse{User: userEntity})
}

func (h *Handler) UpdateUserName(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.UserUpdateNameRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	if err := h.UserService.UpdateName(ctx, userID, body.Name); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Nome atualizado com sucesso"})
}

func (h *Handler) UpdateUserPassword(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.UserUpdatePasswordRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	if err := h.UserService.UpdatePassword(ctx, userID, body.CurrentPassword, body.NewPassword); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Senha atualizada com sucesso"})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.UserService.Delete(ctx, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Usuário removido com sucesso"})
}
