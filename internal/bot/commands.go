package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"daily-shops/domain"
	"daily-shops/pkg/price"
)

// parseCommand splits a command line into a lowercased command name and
// the remaining argument string, on the first run of whitespace.
func parseCommand(text string) (string, string) {
	if i := strings.IndexAny(text, " \t\n"); i >= 0 {
		return strings.ToLower(text[:i]), strings.TrimSpace(text[i:])
	}
	return strings.ToLower(text), ""
}

func (h *Handler) handleStart(_ context.Context, _ string, chatID int64) {
	h.send(chatID, "🎉 Welcome to Daily Shops Bot!\n\n"+
		"I can help you manage shops and goods. Here are some commands:\n\n"+
		"📋 /help - Show all available commands\n"+
		"🏪 /shops - List all shops\n"+
		"🛍️ /goods - List all goods\n"+
		"➕ /addshop <name> - Add a new shop\n"+
		"➕ /addgood <name> - Add a new good\n"+
		"💰 /setprice <goodId> <shopId> <price> - Set price for good\n"+
		"🔍 /searchshop <name> - Search shops\n"+
		"🔍 /searchgood <name> - Search goods\n"+
		"💵 /prices <goodId> - Show all prices for good\n"+
		"🏆 /cheapest <goodId> - Show cheapest price for good\n"+
		"🧾 /receipts - List all receipts\n"+
		"🔍 /searchreceipt <text> - Search receipts by text\n"+
		"📸 Send photo of receipt to process it")
}

func (h *Handler) handleHelp(_ context.Context, _ string, chatID int64) {
	h.send(chatID, "🤖 Available Commands:\n\n"+
		"🏪 Shop Management:\n"+
		"• /shops - List all shops\n"+
		"• /addshop <name> - Add a new shop\n"+
		"• /searchshop <name> - Search shops by name\n\n"+
		"🛍️ Good Management:\n"+
		"• /goods - List all goods\n"+
		"• /addgood <name> - Add a new good\n"+
		"• /searchgood <name> - Search goods by name\n\n"+
		"💰 Price Management:\n"+
		"• /setprice <goodId> <shopId> <price> - Set price for good\n"+
		"• /prices <goodId> - Show all prices for good\n"+
		"• /cheapest <goodId> - Show cheapest price for good\n\n"+
		"🧾 Receipt Management:\n"+
		"• /receipts - List all receipts\n"+
		"• /searchreceipt <text> - Search receipts by text\n"+
		"• Send photo of receipt to process it\n\n"+
		"💡 Examples:\n"+
		"• /addshop Electronics Store\n"+
		"• /addgood Smartphone\n"+
		"• /setprice good123 shop456 999.99\n"+
		"• /prices good123\n"+
		"• /cheapest good123")
}

func (h *Handler) handleShops(ctx context.Context, _ string, chatID int64) {
	shops, err := h.shopService.GetShops(ctx)
	if err != nil {
		h.send(chatID, "❌ Error retrieving shops. Please try again.")
		return
	}
	if len(shops) == 0 {
		h.send(chatID, "No shops found. Use /addshop to create your first shop!")
		return
	}

	var sb strings.Builder
	sb.WriteString("🏪 Available Shops:\n\n")
	for _, shop := range shops {
		fmt.Fprintf(&sb, "• %s (ID: %s)\n", shop.Name, shop.ID)
	}
	h.send(chatID, sb.String())
}

func (h *Handler) handleGoods(ctx context.Context, _ string, chatID int64) {
	goods, err := h.goodService.GetGoods(ctx)
	if err != nil {
		h.send(chatID, "❌ Error retrieving goods. Please try again.")
		return
	}
	if len(goods) == 0 {
		h.send(chatID, "No goods found. Use /addgood to create your first good!")
		return
	}

	var sb strings.Builder
	sb.WriteString("🛍️ Available Goods:\n\n")
	for _, good := range goods {
		fmt.Fprintf(&sb, "• %s (ID: %s)\n", good.Name, good.ID)
	}
	h.send(chatID, sb.String())
}

func (h *Handler) handleAddShop(ctx context.Context, args string, chatID int64) {
	if strings.TrimSpace(args) == "" {
		h.send(chatID, "❌ Please provide a shop name.\nUsage: /addshop <shop name>")
		return
	}

	res, err := h.shopService.AddShop(ctx, domain.AddShopRequest{Name: args})
	if err != nil {
		h.send(chatID, "❌ Error creating shop. Please try again.")
		return
	}
	h.send(chatID, fmt.Sprintf("✅ Shop '%s' created successfully!\nID: %s", res.Name, res.ID))
}

func (h *Handler) handleAddGood(ctx context.Context, args string, chatID int64) {
	if strings.TrimSpace(args) == "" {
		h.send(chatID, "❌ Please provide a good name.\nUsage: /addgood <good name>")
		return
	}

	res, err := h.goodService.AddGood(ctx, domain.AddGoodRequest{Name: args})
	if err != nil {
		h.send(chatID, "❌ Error creating good. Please try again.")
		return
	}
	h.send(chatID, fmt.Sprintf("✅ Good '%s' created successfully!\nID: %s", res.Name, res.ID))
}

func (h *Handler) handleSearchShop(ctx context.Context, args string, chatID int64) {
	term := strings.TrimSpace(args)
	if term == "" {
		h.send(chatID, "❌ Please provide a search term.\nUsage: /searchshop <search term>")
		return
	}

	shops, err := h.shopService.SearchShops(ctx, term)
	if err != nil {
		h.send(chatID, "❌ Error searching shops. Please try again.")
		return
	}
	if len(shops) == 0 {
		h.send(chatID, "🔍 No shops found matching '"+term+"'")
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🔍 Shops matching '%s':\n\n", term)
	for _, shop := range shops {
		fmt.Fprintf(&sb, "• %s (ID: %s)\n", shop.Name, shop.ID)
	}
	h.send(chatID, sb.String())
}

func (h *Handler) handleSearchGood(ctx context.Context, args string, chatID int64) {
	term := strings.TrimSpace(args)
	if term == "" {
		h.send(chatID, "❌ Please provide a search term.\nUsage: /searchgood <search term>")
		return
	}

	goods, err := h.goodService.SearchGoods(ctx, term)
	if err != nil {
		h.send(chatID, "❌ Error searching goods. Please try again.")
		return
	}
	if len(goods) == 0 {
		h.send(chatID, "🔍 No goods found matching '"+term+"'")
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🔍 Goods matching '%s':\n\n", term)
	for _, good := range goods {
		fmt.Fprintf(&sb, "• %s (ID: %s)\n", good.Name, good.ID)
	}
	h.send(chatID, sb.String())
}

func (h *Handler) handleSetPrice(ctx context.Context, args string, chatID int64) {
	parts := strings.Fields(args)
	if len(parts) < 3 {
		h.send(chatID, "❌ Please provide good ID, shop ID, and price.\nUsage: /setprice <goodId> <shopId> <price>")
		return
	}

	amount, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		h.send(chatID, "❌ Invalid price format. Please use numbers (e.g., 999.99)")
		return
	}

	res, err := h.priceService.SetPrice(ctx, domain.SetPriceRequest{
		GoodID:   parts[0],
		ShopID:   parts[1],
		Price:    amount,
		Currency: price.DefaultCurrency,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPrice) {
			h.send(chatID, "❌ Invalid price format. Please use numbers (e.g., 999.99)")
			return
		}
		h.send(chatID, "❌ Error setting price. Please check good ID and shop ID.")
		return
	}

	h.send(chatID, fmt.Sprintf("✅ Price set successfully!\nGood: %s\nShop: %s\nPrice: $%.2f\nID: %s",
		res.GoodName, res.ShopName, res.Price, res.ID))
}

func (h *Handler) handlePrices(ctx context.Context, args string, chatID int64) {
	goodID := strings.TrimSpace(args)
	if goodID == "" {
		h.send(chatID, "❌ Please provide a good ID.\nUsage: /prices <goodId>")
		return
	}

	prices, err := h.priceService.GetPricesByGood(ctx, goodID)
	if err != nil || len(prices) == 0 {
		h.send(chatID, "🔍 No prices found for good ID: "+goodID)
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "💵 Prices for good '%s':\n\n", prices[0].GoodName)
	for _, p := range prices {
		fmt.Fprintf(&sb, "🏪 %s: $%.2f (%s)\n", p.ShopName, p.Price, p.Currency)
	}
	h.send(chatID, sb.String())
}

func (h *Handler) handleCheapest(ctx context.Context, args string, chatID int64) {
	goodID := strings.TrimSpace(args)
	if goodID == "" {
		h.send(chatID, "❌ Please provide a good ID.\nUsage: /cheapest <goodId>")
		return
	}

	res, err := h.priceService.GetCheapestPrice(ctx, goodID)
	if err != nil {
		h.send(chatID, "🔍 No prices found for good ID: "+goodID)
		return
	}

	h.send(chatID, fmt.Sprintf("🏆 Cheapest price for '%s':\n\n🏪 Shop: %s\n💰 Price: $%.2f\n💱 Currency: %s",
		res.GoodName, res.ShopName, res.Price, res.Currency))
}

func (h *Handler) handleReceipts(ctx context.Context, _ string, chatID int64) {
	receipts, err := h.receiptService.GetReceipts(ctx)
	if err != nil {
		h.send(chatID, "❌ Error retrieving receipts. Please try again.")
		return
	}
	if len(receipts) == 0 {
		h.send(chatID, "No receipts found. Send a photo of a receipt to process it!")
		return
	}

	var sb strings.Builder
	sb.WriteString("🧾 Receipts:\n\n")
	for _, r := range receipts {
		fmt.Fprintf(&sb, "• %s (%s)\nID: %s\n", r.FileName, r.CreatedAt.Format("2006-01-02 15:04"), r.ID)
	}
	h.send(chatID, sb.String())
}

func (h *Handler) handleSearchReceipt(ctx context.Context, args string, chatID int64) {
	term := strings.TrimSpace(args)
	if term == "" {
		h.send(chatID, "❌ Please provide a search term.\nUsage: /searchreceipt <text>")
		return
	}

	receipts, err := h.receiptService.SearchReceiptsByText(ctx, term)
	if err != nil {
		h.send(chatID, "❌ Error searching receipts. Please try again.")
		return
	}
	if len(receipts) == 0 {
		h.send(chatID, "🔍 No receipts found matching '"+term+"'")
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🔍 Receipts matching '%s':\n\n", term)
	for _, r := range receipts {
		fmt.Fprintf(&sb, "• %s\nID: %s\n", r.FileName, r.ID)
	}
	h.send(chatID, sb.String())
}

func receiptErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrOcrUnavailable):
		return "❌ OCR service is not available. Please check Tesseract installation."
	case errors.Is(err, domain.ErrEmptyFile), errors.Is(err, domain.ErrInvalidImageFormat):
		return "❌ The photo could not be read as an image. Please try another one."
	default:
		return "❌ Error processing receipt. Please try again."
	}
}
