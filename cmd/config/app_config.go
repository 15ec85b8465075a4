package config

import (
	"os"
	"strings"
	"time"

	"daily-shops/internal/api/handlers"
	"daily-shops/internal/api/routes"
	"daily-shops/internal/bot"
	"daily-shops/internal/middleware"
	"daily-shops/internal/utils"
	"daily-shops/internal/utils/storage"
	"daily-shops/pkg/good"
	"daily-shops/pkg/ocr"
	"daily-shops/pkg/price"
	"daily-shops/pkg/receipt"
	"daily-shops/pkg/shop"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, *bot.Handler, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	uploadStorage := newUploadStorage()
	engine := newOcrEngine()

	// Repository
	shopRepository := shop.NewShopRepository(db)
	goodRepository := good.NewGoodRepository(db)
	priceRepository := price.NewPriceRepository(db)
	receiptRepository := receipt.NewReceiptRepository(db)

	// Service
	shopService := shop.NewShopService(shopRepository)
	goodService := good.NewGoodService(goodRepository)
	priceService := price.NewPriceService(priceRepository, goodRepository, shopRepository)
	receiptService := receipt.NewReceiptService(receiptRepository, engine, uploadStorage)

	// Handler
	shopHandler := handlers.NewShopHandler(shopService, validator)
	goodHandler := handlers.NewGoodHandler(goodService, validator)
	priceHandler := handlers.NewPriceHandler(priceService, validator)
	receiptHandler := handlers.NewReceiptHandler(receiptService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		ShopHandler:    shopHandler,
		GoodHandler:    goodHandler,
		PriceHandler:   priceHandler,
		ReceiptHandler: receiptHandler,
		Middleware:     middlewares,
	}
	routesConfig.Setup()

	botHandler, err := newBotHandler(shopService, goodService, priceService, receiptService)
	if err != nil {
		return nil, nil, err
	}

	return app, botHandler, nil
}

func newUploadStorage() storage.Storage {
	if utils.GetConfig("STORAGE_DRIVER") == "s3" {
		return storage.NewAwsS3("receipts")
	}

	uploadDir := utils.GetConfig("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads/receipts"
	}
	return storage.NewLocalStorage(uploadDir)
}

func newOcrEngine() ocr.Engine {
	languages := strings.Split(utils.GetConfig("TESSERACT_LANGUAGES"), "+")
	if len(languages) == 1 && languages[0] == "" {
		languages = []string{"eng"}
	}
	return ocr.NewTesseractEngine(utils.GetConfig("TESSDATA_PREFIX"), languages...)
}

func newBotHandler(
	shopService shop.ShopService,
	goodService good.GoodService,
	priceService price.PriceService,
	receiptService receipt.ReceiptService,
) (*bot.Handler, error) {
	if utils.GetConfig("TELEGRAM_BOT_ENABLED") != "true" {
		return nil, nil
	}
	return bot.NewHandler(
		utils.GetConfig("TELEGRAM_BOT_TOKEN"),
		shopService,
		goodService,
		priceService,
		receiptService,
	)
}
