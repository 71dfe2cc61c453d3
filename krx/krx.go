// Package krx implements the domestic market source on the Naver Finance
// public endpoints, the accepted unofficial way to read Korean exchange data
// without a market data subscription.
//
// Three endpoints are used: the ETF item list for the fund reference listing,
// siseJson for daily price history, and the mobile basic endpoint for stock
// names. None of them need credentials.
package krx

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/dykim/etfwatch"
)

// Client fetches Korean exchange data from Naver Finance.
// It implements etfwatch.DomesticSource.
type Client struct {
	financeURL string // finance.naver.com
	apiURL     string // api.finance.naver.com
	mobileURL  string // m.stock.naver.com
	timeout    time.Duration
}

// New returns a client using the given per-request timeout.
func New(timeout time.Duration) *Client {
	return &Client{
		financeURL: "https://finance.naver.com",
		apiURL:     "https://api.finance.naver.com",
		mobileURL:  "https://m.stock.naver.com",
		timeout:    timeout,
	}
}

// Funds returns the full ETF listing of the exchange, in the upstream order
// (market cap descending).
func (c *Client) Funds() ([]etfwatch.ListedFund, error) {
	// https://finance.naver.com/api/sise/etfItemList.nhn
	// {
	//   "resultCode": "success",
	//   "result": {
	//     "etfItemList": [
	//       {"itemcode": "069500", "itemname": "KODEX 200", "nowVal": 36715, ...},
	//       ...
	//     ]
	//   }
	// }
	addr := c.financeURL + "/api/sise/etfItemList.nhn"

	var jobj any
	if err := c.jwget(addr, &jobj); err != nil {
		return nil, fmt.Errorf("krx etf listing: %w", err)
	}

	jval, err := jsonpath.Get("$.result.etfItemList", jobj)
	if err != nil {
		return nil, etfwatch.BadData("etfItemList", err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, etfwatch.BadData("etfItemList", fmt.Errorf("not a list: %T", jval))
	}

	var funds []etfwatch.ListedFund
	for _, item := range jlist {
		jmap, ok := item.(map[string]any)
		if !ok {
			continue
		}
		// the key casing has changed before, accept both spellings
		code := stringField(jmap, "itemcode", "code")
		name := stringField(jmap, "itemname", "name")
		if code == "" || name == "" {
			continue
		}
		funds = append(funds, etfwatch.ListedFund{Code: code, Name: name})
	}
	if len(funds) == 0 {
		return nil, etfwatch.BadData("etfItemList", fmt.Errorf("no items in listing"))
	}
	return funds, nil
}

// StockName resolves the display name of any listed code, stocks included.
func (c *Client) StockName(code string) (string, error) {
	// https://m.stock.naver.com/api/stock/005930/basic
	// {"stockName": "삼성전자", "itemCode": "005930", ...}
	addr := fmt.Sprintf("%s/api/stock/%s/basic", c.mobileURL, code)

	var jobj map[string]any
	if err := c.jwget(addr, &jobj); err != nil {
		return "", fmt.Errorf("krx name %s: %w", code, err)
	}
	name, _ := jobj["stockName"].(string)
	return name, nil
}

func stringField(jmap map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := jmap[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// jwget performs a GET against addr and unmarshals the JSON body into data.
func (c *Client) jwget(addr string, data any) error {
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)")

	client := &http.Client{Timeout: c.timeout}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v: %v", req.URL.Path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return unmarshalLenient(body, data)
}
