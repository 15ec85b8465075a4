package bot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"daily-shops/pkg/good"
	"daily-shops/pkg/price"
	"daily-shops/pkg/receipt"
	"daily-shops/pkg/shop"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofiber/fiber/v2/log"
)

type (
	// Handler consumes Telegram updates and maps them onto the same
	// service operations the HTTP surface uses.
	Handler struct {
		api            *tgbotapi.BotAPI
		shopService    shop.ShopService
		goodService    good.GoodService
		priceService   price.PriceService
		receiptService receipt.ReceiptService
		commands       map[string]commandFunc
	}

	commandFunc func(ctx context.Context, args string, chatID int64)
)

func NewHandler(
	token string,
	shopService shop.ShopService,
	goodService good.GoodService,
	priceService price.PriceService,
	receiptService receipt.ReceiptService,
) (*Handler, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	h := &Handler{
		api:            api,
		shopService:    shopService,
		goodService:    goodService,
		priceService:   priceService,
		receiptService: receiptService,
	}
	h.commands = map[string]commandFunc{
		"/start":         h.handleStart,
		"/help":          h.handleHelp,
		"/shops":         h.handleShops,
		"/goods":         h.handleGoods,
		"/addshop":       h.handleAddShop,
		"/addgood":       h.handleAddGood,
		"/searchshop":    h.handleSearchShop,
		"/searchgood":    h.handleSearchGood,
		"/setprice":      h.handleSetPrice,
		"/prices":        h.handlePrices,
		"/cheapest":      h.handleCheapest,
		"/receipts":      h.handleReceipts,
		"/searchreceipt": h.handleSearchReceipt,
	}
	return h, nil
}

// Run polls for updates until ctx is cancelled.
func (h *Handler) Run(ctx context.Context) {
	log.Infof("telegram bot authorized as @%s", h.api.Self.UserName)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := h.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			h.api.StopReceivingUpdates()
			return
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil && update.Message.Text != "":
		chatID := update.Message.Chat.ID
		text := update.Message.Text
		if strings.HasPrefix(text, "/") {
			h.dispatch(ctx, text, chatID)
		} else {
			h.send(chatID, "I received your message: "+text+"\nUse /help to see available commands.")
		}
	case update.Message != nil && len(update.Message.Photo) > 0:
		h.handlePhoto(ctx, update.Message.Photo, update.Message.Chat.ID)
	case update.CallbackQuery != nil:
		h.handleCallback(ctx, update.CallbackQuery.Data, update.CallbackQuery.Message.Chat.ID)
	}
}

func (h *Handler) dispatch(ctx context.Context, text string, chatID int64) {
	command, args := parseCommand(text)
	handler, ok := h.commands[command]
	if !ok {
		h.send(chatID, "Unknown command. Use /help to see available commands.")
		return
	}
	handler(ctx, args, chatID)
}

// Callback data from inline replies identifies a single entity by a
// fixed prefix.
func (h *Handler) handleCallback(ctx context.Context, data string, chatID int64) {
	switch {
	case strings.HasPrefix(data, "shop_"):
		shopResp, err := h.shopService.GetShopByID(ctx, strings.TrimPrefix(data, "shop_"))
		if err != nil {
			h.send(chatID, "❌ Shop not found.")
			return
		}
		h.send(chatID, fmt.Sprintf("🏪 Shop Details:\n\nName: %s\nID: %s", shopResp.Name, shopResp.ID))
	case strings.HasPrefix(data, "good_"):
		goodResp, err := h.goodService.GetGoodByID(ctx, strings.TrimPrefix(data, "good_"))
		if err != nil {
			h.send(chatID, "❌ Good not found.")
			return
		}
		h.send(chatID, fmt.Sprintf("🛍️ Good Details:\n\nName: %s\nID: %s", goodResp.Name, goodResp.ID))
	}
}

func (h *Handler) handlePhoto(ctx context.Context, photos []tgbotapi.PhotoSize, chatID int64) {
	h.send(chatID, "🔄 Processing receipt image...")

	// Last photo size is the largest.
	photo := photos[len(photos)-1]

	fileURL, err := h.api.GetFileDirectURL(photo.FileID)
	if err != nil {
		log.Errorf("failed to resolve telegram file %s: %v", photo.FileID, err)
		h.send(chatID, "❌ Error downloading photo. Please try again.")
		return
	}

	data, err := downloadFile(ctx, fileURL)
	if err != nil {
		log.Errorf("failed to download telegram file: %v", err)
		h.send(chatID, "❌ Error downloading photo. Please try again.")
		return
	}

	fileName := fmt.Sprintf("receipt_%d.jpg", time.Now().UnixMilli())
	res, err := h.receiptService.ProcessReceipt(ctx, fileName, "image/jpeg", data)
	if err != nil {
		log.Errorf("failed to process receipt photo: %v", err)
		h.send(chatID, receiptErrorMessage(err))
		return
	}

	reply := "✅ Receipt processed successfully!\nID: " + res.ID
	if res.ProcessedText != "" {
		reply += "\n\n📝 Recognized text:\n" + res.ProcessedText
	}
	h.send(chatID, reply)
}

func (h *Handler) send(chatID int64, text string) {
	message := tgbotapi.NewMessage(chatID, text)
	if _, err := h.api.Send(message); err != nil {
		log.Errorf("failed to send telegram message: %v", err)
	}
}

func downloadFile(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
