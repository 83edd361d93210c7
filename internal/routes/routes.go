package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/memoday/memoday-backend/internal/handler"
	"github.com/memoday/memoday-backend/internal/middleware"
	"github.com/memoday/memoday-backend/pkg/jwt"
)

// SetupMemos configures the memo CRUD routes
func SetupMemos(router *gin.Engine, h *handler.MemoHandler, jwtManager *jwt.Manager, sessionCookie string) {
	memos := router.Group("/api/memos", middleware.SessionAuth(jwtManager, sessionCookie))
	memos.GET("", h.ListMemos)
	memos.GET("/:id", h.GetMemo)
	memos.POST("", h.CreateMemo)
	memos.PUT("/:id", h.UpdateMemo)
	memos.DELETE("/:id", h.DeleteMemo)
}

// SetupAuth configures OAuth sign-in and session routes
func SetupAuth(router *gin.Engine, h *handler.AuthHandler, jwtManager *jwt.Manager, sessionCookie string) {
	auth := router.Group("/api/auth")
	auth.GET("/:provider/login", h.Login)
	auth.GET("/:provider/callback", h.Callback)
	auth.GET("/me", middleware.SessionAuth(jwtManager, sessionCookie), h.Me)
	auth.POST("/logout", h.Logout)
}
