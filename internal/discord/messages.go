package discord

// Friendly message constants for Discord responses
const (
	// Valuation
	MsgItemNotFound         = "❓ **Item Not Found**\nMaybe check the spelling?"
	MsgMaterialPriceMissing = "🏷️ **Price Missing**\nA material in this recipe has no price yet: **%s**"
	MsgCircularDependency   = "🔁 **Circular Recipe**\nThis recipe ends up needing itself: **%s**"
	MsgGenericCost          = "🪙 **No Cost**\nThis item costs nothing to make, so efficiency can't be measured."
	MsgInvalidMode          = "⚙️ **Unknown Mode**\nUse best, 1, 2, 3, 5 or 10."

	MsgAPIUnavailable = "📡 **Calculator Offline**\nCouldn't reach the valuation server. Try again shortly."
	MsgGenericError   = "❌ Something went wrong."
)

// Embed colors
const (
	ColorInfo      = 0x3498db
	ColorRecommend = 0x2ecc71
	ColorSkip      = 0xe74c3c
	ColorStamina   = 0xf1c40f
)

// Footer constants for standardized embed footers.
const (
	FooterCraftValue = "Craft Value"
)
