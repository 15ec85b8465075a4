package routes

import (
	"daily-shops/internal/api/handlers"
	"daily-shops/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	ShopHandler    handlers.ShopHandler
	GoodHandler    handlers.GoodHandler
	PriceHandler   handlers.PriceHandler
	ReceiptHandler handlers.ReceiptHandler
	Middleware     middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Shops()
	c.Goods()
	c.Prices()
	c.Receipts()
	c.GuestRoute()
}

func (c *Config) Shops() {
	shops := c.App.Group("/api/v1/shops")
	{
		shops.Post("", c.ShopHandler.AddShop)
		shops.Get("", c.ShopHandler.GetShops)
		shops.Get("/search", c.ShopHandler.SearchShops)
		shops.Get("/:id", c.ShopHandler.GetShopByID)
		shops.Put("/:id", c.ShopHandler.UpdateShop)
		shops.Delete("/:id", c.ShopHandler.DeleteShop)
	}
}

func (c *Config) Goods() {
	goods := c.App.Group("/api/v1/goods")
	{
		goods.Post("", c.GoodHandler.AddGood)
		goods.Get("", c.GoodHandler.GetGoods)
		goods.Get("/search", c.GoodHandler.SearchGoods)
		goods.Get("/:id", c.GoodHandler.GetGoodByID)
		goods.Put("/:id", c.GoodHandler.UpdateGood)
		goods.Delete("/:id", c.GoodHandler.DeleteGood)
	}
}

func (c *Config) Prices() {
	prices := c.App.Group("/api/v1/prices")
	{
		prices.Post("", c.PriceHandler.SetPrice)
		prices.Get("", c.PriceHandler.GetPrices)
		prices.Get("/range", c.PriceHandler.GetPricesInRange)
		prices.Get("/currency/:currency", c.PriceHandler.GetPricesByCurrency)
		prices.Get("/search/good", c.PriceHandler.SearchPricesByGoodName)
		prices.Get("/search/shop", c.PriceHandler.SearchPricesByShopName)
		prices.Get("/good/:goodId/cheapest", c.PriceHandler.GetCheapestPrice)
		prices.Get("/good/:goodId/most-expensive", c.PriceHandler.GetMostExpensivePrice)
		prices.Get("/good/:goodId/shop/:shopId", c.PriceHandler.GetPriceByGoodAndShop)
		prices.Delete("/good/:goodId/shop/:shopId", c.PriceHandler.DeletePriceByGoodAndShop)
		prices.Get("/good/:goodId", c.PriceHandler.GetPricesByGood)
		prices.Get("/shop/:shopId", c.PriceHandler.GetPricesByShop)
		prices.Get("/:id", c.PriceHandler.GetPriceByID)
		prices.Delete("/:id", c.PriceHandler.DeletePriceByID)
	}
}

func (c *Config) Receipts() {
	receipts := c.App.Group("/api/v1/receipts")
	{
		receipts.Post("/upload", c.ReceiptHandler.UploadReceipt)
		receipts.Get("/status", c.ReceiptHandler.OcrStatus)
		receipts.Get("/search/filename", c.ReceiptHandler.SearchReceiptsByFileName)
		receipts.Get("/search", c.ReceiptHandler.SearchReceipts)
		receipts.Get("/after", c.ReceiptHandler.GetReceiptsAfter)
		receipts.Get("/between", c.ReceiptHandler.GetReceiptsBetween)
		receipts.Get("", c.ReceiptHandler.GetReceipts)
		receipts.Get("/:id", c.ReceiptHandler.GetReceiptByID)
		receipts.Put("/:id", c.ReceiptHandler.UpdateReceipt)
		receipts.Delete("/:id", c.ReceiptHandler.DeleteReceipt)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
