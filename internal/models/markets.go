package models

import "encoding/json"

// Respuesta del endpoint de mercados de Wallex (api.wallex.ir/v1/markets)

func UnmarshalWallexMarkets(data []byte) (WallexMarkets, error) {
	var r WallexMarkets
	err := json.Unmarshal(data, &r)
	return r, err
}

type WallexMarkets struct {
	Result WallexResult `json:"result"`
}

type WallexResult struct {
	Symbols map[string]WallexSymbol `json:"symbols"`
}

type WallexSymbol struct {
	Symbol     string      `json:"symbol"`
	BaseAsset  string      `json:"baseAsset"`
	QuoteAsset string      `json:"quoteAsset"`
	Stats      WallexStats `json:"stats"`
}

type WallexStats struct {
	LastPrice string `json:"lastPrice"`
	BidPrice  string `json:"bidPrice"`
	AskPrice  string `json:"askPrice"`
}

// Respuesta del endpoint de mercados de Bitpin (api.bitpin.ir/v1/mkt/markets/)

func UnmarshalBitpinMarkets(data []byte) (BitpinMarkets, error) {
	var r BitpinMarkets
	err := json.Unmarshal(data, &r)
	return r, err
}

type BitpinMarkets struct {
	Results []BitpinMarket `json:"results"`
}

type BitpinMarket struct {
	ID        int            `json:"id"`
	Code      string         `json:"code"`
	Price     string         `json:"price"`
	Currency1 BitpinCurrency `json:"currency1"` // Moneda base
	Currency2 BitpinCurrency `json:"currency2"` // Moneda de cotización
}

type BitpinCurrency struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}
