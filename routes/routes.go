package routes

import (
	"velour/auth"
	"velour/cart"
	"velour/middleware"
	"velour/orders"
	"velour/products"
	"velour/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, svc *auth.Service, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(svc.Register))
	router.POST("/api/auth/login", rl.Limit(svc.Login))
	router.POST("/api/auth/logout", rl.Limit(middleware.Authenticate(svc.Logout)))
	router.GET("/api/auth/me", middleware.Authenticate(svc.Me))
}

func AddProductRoutes(router *httprouter.Router, svc *products.Service) {
	router.GET("/api/products", svc.GetProducts)
	router.GET("/api/products/:productid", svc.GetProduct)
	router.POST("/api/products", svc.CreateProduct)
	router.POST("/api/init-data", svc.InitData)
}

func AddCartRoutes(router *httprouter.Router, svc *cart.Service) {
	router.GET("/api/cart", middleware.Authenticate(svc.GetCart))
	router.POST("/api/cart/add", middleware.Authenticate(svc.AddToCart))
	router.DELETE("/api/cart/remove/:productid", middleware.Authenticate(svc.RemoveFromCart))
}

func AddOrderRoutes(router *httprouter.Router, svc *orders.Service) {
	router.POST("/api/orders", middleware.Authenticate(svc.CreateOrder))
	router.GET("/api/orders", middleware.Authenticate(svc.GetOrders))
	router.GET("/api/orders/:orderid", middleware.Authenticate(svc.GetOrder))
	router.GET("/api/orders/:orderid/invoice", middleware.Authenticate(svc.PrintInvoice))
}
