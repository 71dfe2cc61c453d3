package krx

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dykim/etfwatch"
	"github.com/dykim/etfwatch/date"
	"github.com/shopspring/decimal"
)

// Daily returns the daily bars for a 6-digit code between from and to,
// oldest first.
func (c *Client) Daily(code string, from, to date.Date) ([]etfwatch.Bar, error) {
	// https://api.finance.naver.com/siseJson.naver?symbol=005930&requestType=1
	//     &startTime=20240101&endTime=20240301&timeframe=day
	//
	// The response is almost JSON, with single quotes and stray whitespace:
	// [['날짜', '시가', '고가', '저가', '종가', '거래량', '외국인소진율'],
	// ["20240102", 78200, 79800, 78200, 79600, 17142847, 54.5],
	// ...]
	addr := fmt.Sprintf("%s/siseJson.naver?symbol=%s&requestType=1&startTime=%s&endTime=%s&timeframe=day",
		c.apiURL, code, from.Compact(), to.Compact())

	var rows [][]any
	if err := c.jwget(addr, &rows); err != nil {
		return nil, fmt.Errorf("krx daily %s: %w", code, err)
	}
	if len(rows) == 0 {
		return nil, etfwatch.NotFound(code)
	}

	// first row is the column header
	var bars []etfwatch.Bar
	for _, row := range rows[1:] {
		if len(row) < 6 {
			return nil, etfwatch.BadData(code, fmt.Errorf("row has %d columns, want 6", len(row)))
		}
		dayStr, ok := row[0].(string)
		if !ok {
			return nil, etfwatch.BadData(code, fmt.Errorf("date column is %T", row[0]))
		}
		day, err := date.ParseCompact(dayStr)
		if err != nil {
			return nil, etfwatch.BadData(code, err)
		}
		closeVal, ok := row[4].(float64)
		if !ok {
			return nil, etfwatch.BadData(code, fmt.Errorf("close column is %T", row[4]))
		}
		bar := etfwatch.Bar{Day: day, Close: decimal.NewFromFloat(closeVal)}
		if vol, ok := row[5].(float64); ok {
			bar.Volume = int64(vol)
		}
		bars = append(bars, bar)
	}
	if len(bars) == 0 {
		return nil, etfwatch.NotFound(code)
	}
	return bars, nil
}

// unmarshalLenient parses the quasi-JSON Naver emits: single quoted strings
// and non-breaking spaces between rows. Proper JSON passes through untouched.
func unmarshalLenient(body []byte, data any) error {
	if err := json.Unmarshal(body, data); err == nil {
		return nil
	}
	clean := bytes.ReplaceAll(body, []byte{'\''}, []byte{'"'})
	clean = bytes.ReplaceAll(clean, []byte(" "), []byte(" "))
	return json.Unmarshal(bytes.TrimSpace(clean), data)
}
