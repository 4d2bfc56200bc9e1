package router

import (
	"github.com/gin-gonic/gin"
	"github.com/invoicing/backend/internal/interfaces/http/handler"
)

// AuthRoutes registers authentication endpoints
type AuthRoutes struct {
	handler *handler.AuthHandler
}

// NewAuthRoutes creates the auth route registrar
func NewAuthRoutes(h *handler.AuthHandler) *AuthRoutes {
	return &AuthRoutes{handler: h}
}

// RegisterRoutes implements RouteRegistrar
func (r *AuthRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/login", r.handler.Login)
	auth.GET("/me", r.handler.Me)
}

// CustomerRoutes registers customer endpoints
type CustomerRoutes struct {
	handler *handler.CustomerHandler
}

// NewCustomerRoutes creates the customer route registrar
func NewCustomerRoutes(h *handler.CustomerHandler) *CustomerRoutes {
	return &CustomerRoutes{handler: h}
}

// RegisterRoutes implements RouteRegistrar
func (r *CustomerRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	customers.GET("", r.handler.List)
	customers.POST("", r.handler.Create)
	customers.PUT("", r.handler.Update)
	customers.DELETE("/:id", r.handler.Delete)
}

// InvoiceRoutes registers invoice endpoints
type InvoiceRoutes struct {
	handler *handler.InvoiceHandler
}

// NewInvoiceRoutes creates the invoice route registrar
func NewInvoiceRoutes(h *handler.InvoiceHandler) *InvoiceRoutes {
	return &InvoiceRoutes{handler: h}
}

// RegisterRoutes implements RouteRegistrar
func (r *InvoiceRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices")
	invoices.GET("", r.handler.List)
	invoices.POST("", r.handler.Create)
	invoices.PUT("", r.handler.Update)
	invoices.DELETE("", r.handler.Delete)
}
