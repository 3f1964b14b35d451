package handler

import (
	"net/http"

	"digipasal-be/internal/user"

	"github.com/gin-gonic/gin"
)

type userHandler struct {
	svc user.Service
}

func newUserHandler(svc user.Service) *userHandler {
	return &userHandler{svc: svc}
}

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	Token string   `json:"token"`
	User  userView `json:"user"`
}

type userView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// setSessionCookie stores the token in the slot the guards read first.
func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie("access_token", token, 60*60*24, "/", "", false, true)
}

func (h *userHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, u, err := h.svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	setSessionCookie(c, token)
	c.JSON(http.StatusCreated, authResponse{
		Token: token,
		User:  userView{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role)},
	})
}

func (h *userHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, u, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	setSessionCookie(c, token)
	c.JSON(http.StatusOK, authResponse{
		Token: token,
		User:  userView{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role)},
	})
}
