package portfolio

// Holding 為投資組合中單一資產的持倉。
type Holding struct {
	AssetID       string  `json:"assetId"`
	Quantity      float64 `json:"quantity"`
	AvgBuyPrice   float64 `json:"avgBuyPrice"`
	CurrentPrice  float64 `json:"currentPrice"`
	Value         float64 `json:"value"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
}

// Portfolio 描述使用者的持倉快照，隨每次同步週期整批汰換。
// Assets 為後端既有的欄位名稱，內容即持倉清單。
type Portfolio struct {
	TotalValue         float64   `json:"totalValue"`
	TotalChange        float64   `json:"totalChange"`
	TotalChangePercent float64   `json:"totalChangePercent"`
	Assets             []Holding `json:"assets"`
	Watchlist          []string  `json:"watchlist,omitempty"`
}
