package yahoo

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dykim/etfwatch"
	"github.com/dykim/etfwatch/date"
	"github.com/shopspring/decimal"
)

// Daily returns the daily bars for ticker between from and to, oldest first.
func (c *Client) Daily(ticker string, from, to date.Date) ([]etfwatch.Bar, error) {
	// https://query1.finance.yahoo.com/v8/finance/chart/JEPI?interval=1d&period1=...&period2=...
	// {
	//   "chart": {
	//     "result": [{
	//       "timestamp": [1709512200, ...],
	//       "indicators": {
	//         "quote": [{
	//           "close": [56.5, null, ...],
	//           "volume": [3456700, ...]
	//         }]
	//       }
	//     }],
	//     "error": null
	//   }
	// }
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d",
		c.chartURL, ticker, from.Unix(), to.Add(1).Unix())

	type chartQuote struct {
		Close  []*float64 `json:"close"` // null on sessions with no trade
		Volume []*int64   `json:"volume"`
	}
	type result struct {
		Timestamp  []int64 `json:"timestamp"`
		Indicators struct {
			Quote []chartQuote `json:"quote"`
		} `json:"indicators"`
	}
	type payload struct {
		Chart struct {
			Result []result `json:"result"`
			Error  *struct {
				Code        string `json:"code"`
				Description string `json:"description"`
			} `json:"error"`
		} `json:"chart"`
	}

	var content payload
	if err := c.jwget(addr, &content); err != nil {
		return nil, fmt.Errorf("yahoo chart %s: %w", ticker, err)
	}
	if e := content.Chart.Error; e != nil {
		if e.Code == "Not Found" {
			return nil, etfwatch.NotFound(ticker)
		}
		return nil, etfwatch.BadData(ticker, fmt.Errorf("%s: %s", e.Code, e.Description))
	}
	if len(content.Chart.Result) == 0 || len(content.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, etfwatch.NotFound(ticker)
	}

	r := content.Chart.Result[0]
	q := r.Indicators.Quote[0]
	if len(q.Close) != len(r.Timestamp) {
		return nil, etfwatch.BadData(ticker, fmt.Errorf("%d closes for %d timestamps", len(q.Close), len(r.Timestamp)))
	}

	var bars []etfwatch.Bar
	for i, ts := range r.Timestamp {
		if q.Close[i] == nil {
			continue
		}
		bar := etfwatch.Bar{
			Day:   date.FromTime(time.Unix(ts, 0).UTC()),
			Close: decimal.NewFromFloat(*q.Close[i]),
		}
		if i < len(q.Volume) && q.Volume[i] != nil {
			bar.Volume = *q.Volume[i]
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

// jwget performs a GET against addr and unmarshals the JSON body into data.
// Yahoo rejects requests without a browser-looking user agent.
func (c *Client) jwget(addr string, data interface{}) error {
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

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusNotFound {
		// the chart error payload still carries the reason, try it first
		if json.Unmarshal(body, data) == nil {
			return nil
		}
		return fmt.Errorf("cannot http GET %v: %v", req.URL.Path, resp.Status)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v: %v", req.URL.Path, resp.Status)
	}
	return json.Unmarshal(body, data)
}
