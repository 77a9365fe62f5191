// models/token_pair.go
package models

// TokenPair is the display-ready market snapshot shape served to the landing
// page. Live upstream data and the backup dataset both normalize into it, so
// callers cannot tell the two sources apart.
type TokenPair struct {
	ID          string      `json:"id"`
	BaseToken   BaseToken   `json:"baseToken"`
	ChainID     string      `json:"chainId"`
	ChainName   string      `json:"chainName"`
	PriceUsd    string      `json:"priceUsd"`
	PriceChange PriceChange `json:"priceChange"`
	Volume      VolumeSet   `json:"volume"`
	Liquidity   Liquidity   `json:"liquidity"`
	FDV         string      `json:"fdv"`
	PairAddress string      `json:"pairAddress"`
	URL         string      `json:"url"`
}

type BaseToken struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// PriceChange percentages per timeframe bucket. Only h24 is measured
// upstream; h6 and h12 are linear estimates (h24/4, h24/2).
type PriceChange struct {
	H24 string `json:"h24"`
	H6  string `json:"h6"`
	H12 string `json:"h12"`
}

type VolumeSet struct {
	H24 string `json:"h24"`
	H6  string `json:"h6"`
	H12 string `json:"h12"`
}

type Liquidity struct {
	USD string `json:"usd"`
}

// NetworkByIdentifier maps known coin ids and ticker symbols to their native
// chain label. Static configuration data, not branching logic; extend by
// adding rows.
var NetworkByIdentifier = map[string]string{
	// Bitcoin ecosystem
	"bitcoin": "Bitcoin",
	"btc":     "Bitcoin",

	// Ethereum ecosystem
	"ethereum":        "Ethereum",
	"eth":             "Ethereum",
	"usdt":            "Ethereum",
	"usdc":            "Ethereum",
	"dai":             "Ethereum",
	"shiba-inu":       "Ethereum",
	"shib":            "Ethereum",
	"chainlink":       "Ethereum",
	"link":            "Ethereum",
	"uniswap":         "Ethereum",
	"uni":             "Ethereum",
	"wrapped-bitcoin": "Ethereum",
	"wbtc":            "Ethereum",
	"pepe":            "Ethereum",
	"floki":           "Ethereum",
	"apecoin":         "Ethereum",
	"ape":             "Ethereum",

	// Binance ecosystem
	"binancecoin": "BSC",
	"bnb":         "BSC",
	"cake":        "BSC",

	// Solana ecosystem
	"solana":      "Solana",
	"sol":         "Solana",
	"bonk":        "Solana",
	"dogwifhat":   "Solana",
	"wif":         "Solana",
	"samoyedcoin": "Solana",
	"samo":        "Solana",

	// Other major chains
	"cardano":     "Cardano",
	"ada":         "Cardano",
	"polkadot":    "Polkadot",
	"dot":         "Polkadot",
	"polygon":     "Polygon",
	"matic":       "Polygon",
	"avalanche-2": "Avalanche",
	"avax":        "Avalanche",
	"cosmos":      "Cosmos",
	"atom":        "Cosmos",
	"ripple":      "Ripple",
	"xrp":         "Ripple",
	"dogecoin":    "Dogecoin",
	"doge":        "Dogecoin",
	"litecoin":    "Litecoin",
	"ltc":         "Litecoin",
	"near":        "NEAR",
	"filecoin":    "Filecoin",
	"fil":         "Filecoin",
	"algorand":    "Algorand",
	"algo":        "Algorand",
	"terra-luna":  "Terra",
	"luna":        "Terra",
}

// BackupToken is one row of the fixed dataset served when the upstream
// provider is unavailable. Change and Volume are 24h figures; the shorter
// buckets are derived with the same estimation math as the live path.
type BackupToken struct {
	Symbol  string
	Name    string
	Price   string
	Change  string
	Volume  string
	Network string
}

var BackupTokens = []BackupToken{
	{Symbol: "BTC", Name: "Bitcoin", Price: "58432.21", Change: "+2.3", Volume: "12500000000", Network: "Bitcoin"},
	{Symbol: "ETH", Name: "Ethereum", Price: "3105.65", Change: "+1.8", Volume: "8970000000", Network: "Ethereum"},
	{Symbol: "SOL", Name: "Solana", Price: "123.45", Change: "+8.7", Volume: "3860000000", Network: "Solana"},
	{Symbol: "BNB", Name: "Binance Coin", Price: "567.82", Change: "+0.9", Volume: "2340000000", Network: "BSC"},
	{Symbol: "ADA", Name: "Cardano", Price: "1.23", Change: "-2.1", Volume: "1950000000", Network: "Cardano"},
	{Symbol: "XRP", Name: "Ripple", Price: "0.65", Change: "+1.2", Volume: "1680000000", Network: "Ripple"},
	{Symbol: "AVAX", Name: "Avalanche", Price: "35.67", Change: "+5.4", Volume: "1420000000", Network: "Avalanche"},
	{Symbol: "DOT", Name: "Polkadot", Price: "15.78", Change: "-0.8", Volume: "1180000000", Network: "Polkadot"},
	{Symbol: "MATIC", Name: "Polygon", Price: "0.98", Change: "+4.6", Volume: "927000000", Network: "Polygon"},
	{Symbol: "DOGE", Name: "Dogecoin", Price: "0.123", Change: "+12.3", Volume: "835000000", Network: "Dogecoin"},
	{Symbol: "SHIB", Name: "Shiba Inu", Price: "0.00002846", Change: "+18.5", Volume: "780000000", Network: "Ethereum"},
	{Symbol: "LINK", Name: "Chainlink", Price: "14.39", Change: "+2.7", Volume: "650000000", Network: "Ethereum"},
	{Symbol: "UNI", Name: "Uniswap", Price: "8.56", Change: "-1.3", Volume: "620000000", Network: "Ethereum"},
	{Symbol: "ATOM", Name: "Cosmos", Price: "12.18", Change: "+3.9", Volume: "580000000", Network: "Cosmos"},
	{Symbol: "DAI", Name: "Dai", Price: "1.00", Change: "+0.01", Volume: "560000000", Network: "Ethereum"},
	{Symbol: "USDC", Name: "USD Coin", Price: "1.00", Change: "+0.00", Volume: "540000000", Network: "Ethereum"},
	{Symbol: "LUNA", Name: "Terra", Price: "0.0002", Change: "-5.8", Volume: "520000000", Network: "Terra"},
	{Symbol: "NEAR", Name: "NEAR Protocol", Price: "5.68", Change: "+7.6", Volume: "485000000", Network: "NEAR"},
	{Symbol: "FIL", Name: "Filecoin", Price: "6.23", Change: "+1.4", Volume: "460000000", Network: "Filecoin"},
	{Symbol: "ALGO", Name: "Algorand", Price: "0.35", Change: "-0.9", Volume: "440000000", Network: "Algorand"},
	{Symbol: "APE", Name: "ApeCoin", Price: "3.28", Change: "+24.5", Volume: "412000000", Network: "Ethereum"},
	{Symbol: "BONK", Name: "Bonk", Price: "0.00002134", Change: "+31.2", Volume: "385000000", Network: "Solana"},
	{Symbol: "WIF", Name: "Dogwifhat", Price: "0.68", Change: "+14.7", Volume: "374000000", Network: "Solana"},
	{Symbol: "PEPE", Name: "Pepe", Price: "0.00000987", Change: "+17.9", Volume: "350000000", Network: "Ethereum"},
	{Symbol: "BORK", Name: "BorkToken", Price: "0.07", Change: "+28.3", Volume: "328000000", Network: "Solana"},
	{Symbol: "WOJAK", Name: "Wojak", Price: "0.00001345", Change: "+16.2", Volume: "315000000", Network: "Ethereum"},
	{Symbol: "FLOKI", Name: "Floki Inu", Price: "0.0002134", Change: "+9.3", Volume: "297000000", Network: "Ethereum"},
	{Symbol: "MEME", Name: "MemeToken", Price: "0.0425", Change: "+21.4", Volume: "285000000", Network: "Ethereum"},
	{Symbol: "CAT", Name: "CatCoin", Price: "0.00005678", Change: "+13.1", Volume: "268000000", Network: "BSC"},
	{Symbol: "POPCAT", Name: "PopCat", Price: "0.00008765", Change: "+11.7", Volume: "255000000", Network: "Solana"},
}
