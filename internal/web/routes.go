package web

import "github.com/gin-gonic/gin"

func RegisterRoutes(r gin.IRouter, h *Handler) {
	r.GET("/", h.ShowForm)
	r.POST("/", h.SubmitForm)
	r.POST("/validate", h.Validate)
	r.GET("/employees-dashboard", h.Dashboard)
}
