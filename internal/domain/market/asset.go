package market

import "time"

// Class 列舉支援的資產類別。
type Class string

const (
	ClassStock  Class = "stock"
	ClassCrypto Class = "crypto"
)

// PricePoint 為價格歷史中的單一取樣點。
type PricePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
}

// KeyMetrics 彙整個股的基本面指標，加密資產通常不帶。
type KeyMetrics struct {
	PERatio       float64 `json:"peRatio"`
	EPS           float64 `json:"eps"`
	DividendYield float64 `json:"dividendYield"`
	Beta          float64 `json:"beta"`
}

// Asset 描述單一市場資產的即時報價與歷史。
// 每次同步週期整批汰換，任何欄位都不做就地修改。
type Asset struct {
	Symbol        string       `json:"symbol"`
	Name          string       `json:"name"`
	Class         Class        `json:"class,omitempty"`
	CurrentPrice  float64      `json:"currentPrice"`
	ChangePercent float64      `json:"changePercent"`
	Volume        int64        `json:"volume"`
	MarketCap     float64      `json:"marketCap,omitempty"`
	Sector        string       `json:"sector,omitempty"`
	Description   string       `json:"description,omitempty"`
	KeyMetrics    *KeyMetrics  `json:"keyMetrics,omitempty"`
	PriceHistory  []PricePoint `json:"priceHistory,omitempty"`
}

// BySymbol 建立 symbol -> Asset 的查詢表，重複鍵以先出現者為準。
func BySymbol(assets []Asset) map[string]Asset {
	index := make(map[string]Asset, len(assets))
	for _, a := range assets {
		if _, ok := index[a.Symbol]; ok {
			continue
		}
		index[a.Symbol] = a
	}
	return index
}
