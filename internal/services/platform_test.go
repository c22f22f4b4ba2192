package services

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/models"
)

func TestMain(m *testing.M) {
	// La caché de precios es compartida por todos los tests del paquete
	if err := InitPriceCache(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestGetPlatform(t *testing.T) {
	platform, err := GetPlatform(models.ExchangeWallex)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if platform.Name() != models.ExchangeWallex {
		t.Errorf("Name = %s, se esperaba %s", platform.Name(), models.ExchangeWallex)
	}

	platform, err = GetPlatform(models.ExchangeBitpin)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if platform.Name() != models.ExchangeBitpin {
		t.Errorf("Name = %s, se esperaba %s", platform.Name(), models.ExchangeBitpin)
	}

	if _, err := GetPlatform("binance"); err == nil {
		t.Error("se esperaba un error para un exchange no soportado")
	}
}

func TestMarketFromQuote(t *testing.T) {
	cases := []struct {
		quote    string
		expected string
	}{
		{"TMN", models.MarketToman},
		{"IRT", models.MarketToman},
		{"irt", models.MarketToman},
		{"USDT", models.MarketTether},
		{"usdt", models.MarketTether},
		{"EUR", ""},
	}

	for _, c := range cases {
		if got := marketFromQuote(c.quote); got != c.expected {
			t.Errorf("marketFromQuote(%s) = %q, se esperaba %q", c.quote, got, c.expected)
		}
	}
}

const wallexMarketsJSON = `{
	"result": {
		"symbols": {
			"BTCTMN": {
				"symbol": "BTCTMN",
				"baseAsset": "BTC",
				"quoteAsset": "TMN",
				"stats": {"lastPrice": "4100000000"}
			},
			"ETHUSDT": {
				"symbol": "ETHUSDT",
				"baseAsset": "ETH",
				"quoteAsset": "USDT",
				"stats": {"lastPrice": "3250.50"}
			},
			"BTCEUR": {
				"symbol": "BTCEUR",
				"baseAsset": "BTC",
				"quoteAsset": "EUR",
				"stats": {"lastPrice": "60000"}
			}
		}
	}
}`

func newWallexTestServer(t *testing.T, requests *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/markets" {
			http.NotFound(w, r)
			return
		}
		if requests != nil {
			*requests++
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(wallexMarketsJSON))
	}))
}

func TestWallexGetPrice(t *testing.T) {
	requests := 0
	server := newWallexTestServer(t, &requests)
	defer server.Close()

	wallex := NewWallex()
	wallex.BaseURL = server.URL

	price, err := wallex.GetPrice("btc", models.MarketToman)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if price.String() != "4100000000" {
		t.Errorf("precio = %s, se esperaba 4100000000", price.String())
	}

	// La segunda consulta debe salir de la caché sin llamar a la red
	if _, err := wallex.GetPrice("btc", models.MarketToman); err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if requests != 1 {
		t.Errorf("peticiones HTTP = %d, se esperaba 1", requests)
	}

	if _, err := wallex.GetPrice("doge", models.MarketToman); err == nil {
		t.Error("se esperaba un error para un símbolo inexistente")
	}
}

func TestWallexCacheAllPrices(t *testing.T) {
	server := newWallexTestServer(t, nil)
	defer server.Close()

	wallex := NewWallex()
	wallex.BaseURL = server.URL

	count, err := wallex.CacheAllPrices()
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	// El mercado en EUR no está soportado y no se cachea
	if count != 2 {
		t.Errorf("precios cacheados = %d, se esperaban 2", count)
	}

	price, exists := GetCachedPrice(models.ExchangeWallex, "eth", models.MarketTether)
	if !exists {
		t.Fatal("el precio de eth/usdt debería estar en la caché")
	}
	if price.String() != "3250.5" {
		t.Errorf("precio cacheado = %s, se esperaba 3250.5", price.String())
	}
}

const bitpinMarketsJSON = `{
	"results": [
		{
			"id": 1,
			"code": "BTC_IRT",
			"price": "4000000000",
			"currency1": {"code": "BTC", "title": "Bitcoin"},
			"currency2": {"code": "IRT", "title": "Toman"}
		},
		{
			"id": 2,
			"code": "ADA_USDT",
			"price": "0.4500",
			"currency1": {"code": "ADA", "title": "Cardano"},
			"currency2": {"code": "USDT", "title": "Tether"}
		}
	]
}`

func newBitpinTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/mkt/markets/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(bitpinMarketsJSON))
	}))
}

func TestBitpinGetPrice(t *testing.T) {
	server := newBitpinTestServer(t)
	defer server.Close()

	bitpin := NewBitpin()
	bitpin.BaseURL = server.URL

	price, err := bitpin.GetPrice("btc", models.MarketToman)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if price.String() != "4000000000" {
		t.Errorf("precio = %s, se esperaba 4000000000", price.String())
	}

	if _, err := bitpin.GetPrice("doge", models.MarketTether); err == nil {
		t.Error("se esperaba un error para un mercado inexistente")
	}
}

func TestBitpinCacheAllPrices(t *testing.T) {
	server := newBitpinTestServer(t)
	defer server.Close()

	bitpin := NewBitpin()
	bitpin.BaseURL = server.URL

	count, err := bitpin.CacheAllPrices()
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if count != 2 {
		t.Errorf("precios cacheados = %d, se esperaban 2", count)
	}

	price, exists := GetCachedPrice(models.ExchangeBitpin, "ada", models.MarketTether)
	if !exists {
		t.Fatal("el precio de ada/usdt debería estar en la caché")
	}
	if price.String() != "0.45" {
		t.Errorf("precio cacheado = %s, se esperaba 0.45", price.String())
	}
}
