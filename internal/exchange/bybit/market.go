package bybit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bybit_api "github.com/bybit-exchange/bybit.go.api"
)

// KlineInterval represents the time interval for kline data
type KlineInterval string

const (
	Interval1m  KlineInterval = "1"
	Interval3m  KlineInterval = "3"
	Interval5m  KlineInterval = "5"
	Interval15m KlineInterval = "15"
	Interval30m KlineInterval = "30"
	Interval1h  KlineInterval = "60"
	Interval2h  KlineInterval = "120"
	Interval4h  KlineInterval = "240"
	Interval6h  KlineInterval = "360"
	Interval12h KlineInterval = "720"
	Interval1d  KlineInterval = "D"
	Interval1w  KlineInterval = "W"
	Interval1M  KlineInterval = "M"
)

// IntervalFromString maps a configured interval value onto a Bybit
// kline interval, accepting both API codes ("D", "60") and common
// shorthand ("1d", "1h").
func IntervalFromString(s string) (KlineInterval, error) {
	switch s {
	case "1", "1m":
		return Interval1m, nil
	case "3", "3m":
		return Interval3m, nil
	case "5", "5m":
		return Interval5m, nil
	case "15", "15m":
		return Interval15m, nil
	case "30", "30m":
		return Interval30m, nil
	case "60", "1h":
		return Interval1h, nil
	case "120", "2h":
		return Interval2h, nil
	case "240", "4h":
		return Interval4h, nil
	case "360", "6h":
		return Interval6h, nil
	case "720", "12h":
		return Interval12h, nil
	case "D", "d", "1d":
		return Interval1d, nil
	case "W", "w", "1w":
		return Interval1w, nil
	case "M", "1M":
		return Interval1M, nil
	default:
		return "", fmt.Errorf("unsupported kline interval %q", s)
	}
}

// Kline represents a single kline/candlestick data point
type Kline struct {
	StartTime  time.Time
	OpenPrice  float64
	HighPrice  float64
	LowPrice   float64
	ClosePrice float64
	Volume     float64
	Turnover   float64
}

// KlineParams holds parameters for fetching kline data
type KlineParams struct {
	Category string        // "spot", "linear", "inverse"
	Symbol   string        // Trading pair symbol (e.g., "BTCUSDT")
	Interval KlineInterval // Time interval
	Start    *time.Time    // Start time (optional)
	End      *time.Time    // End time (optional)
	Limit    int           // Number of records to return (max 1000, default 200)
}

// historyPageDelay spaces paged history requests to stay inside the
// public-endpoint rate limit (120 requests per minute).
const historyPageDelay = 500 * time.Millisecond

// GetKlines fetches kline/candlestick data from Bybit
func (c *Client) GetKlines(ctx context.Context, params KlineParams) ([]Kline, error) {
	if params.Category == "" {
		params.Category = "spot"
	}
	if params.Limit == 0 {
		params.Limit = 200
	}
	if params.Limit > 1000 {
		params.Limit = 1000
	}

	reqParams := map[string]interface{}{
		"category": params.Category,
		"symbol":   params.Symbol,
		"interval": string(params.Interval),
		"limit":    params.Limit,
	}

	if params.Start != nil {
		reqParams["start"] = params.Start.UnixMilli()
	}
	if params.End != nil {
		reqParams["end"] = params.End.UnixMilli()
	}

	result, err := c.httpClient.NewUtaBybitServiceWithParams(reqParams).GetMarketKline(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get klines: %w", err)
	}

	klines, err := c.parseKlineResponse(result)
	if err != nil {
		return nil, fmt.Errorf("failed to parse kline response: %w", err)
	}

	return klines, nil
}

// GetKlineHistory fetches every kline between params.Start and
// params.End, paging backwards through the API. Bybit serves pages
// newest-first, so each request re-anchors End just before the oldest
// bar already seen; the result is returned in ascending time order.
func (c *Client) GetKlineHistory(ctx context.Context, params KlineParams) ([]Kline, error) {
	if params.Start == nil || params.End == nil {
		return nil, fmt.Errorf("kline history requires both start and end times")
	}
	startMs := params.Start.UnixMilli()

	var all []Kline
	end := *params.End
	for {
		page := params
		page.Start = nil
		page.End = &end
		page.Limit = 1000

		klines, err := c.GetKlines(ctx, page)
		if err != nil {
			return nil, err
		}
		if len(klines) == 0 {
			break
		}

		oldest := klines[0].StartTime
		for _, k := range klines {
			if k.StartTime.Before(oldest) {
				oldest = k.StartTime
			}
			if k.StartTime.UnixMilli() >= startMs && !k.StartTime.After(*params.End) {
				all = append(all, k)
			}
		}

		if oldest.UnixMilli() <= startMs {
			break
		}
		end = oldest.Add(-time.Millisecond)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(historyPageDelay):
		}
	}

	// Pages arrive newest-first; flip into ascending order.
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}

	return all, nil
}

// parseKlineResponse parses the API response into Kline structs
func (c *Client) parseKlineResponse(response interface{}) ([]Kline, error) {
	serverResp, ok := response.(*bybit_api.ServerResponse)
	if !ok {
		return nil, fmt.Errorf("invalid response type")
	}

	if err := ParseAPIError(serverResp.RetCode, serverResp.RetMsg); err != nil {
		return nil, err
	}

	resultBytes, err := json.Marshal(serverResp.Result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	var result klineResult
	if err := json.Unmarshal(resultBytes, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal kline result: %w", err)
	}

	var klines []Kline
	for _, item := range result.List {
		if len(item) < 7 {
			continue // Skip incomplete data
		}

		// Bybit kline format: [startTime, openPrice, highPrice, lowPrice, closePrice, volume, turnover]
		kline := Kline{
			StartTime:  time.UnixMilli(parseInt64(item[0])),
			OpenPrice:  parseFloat64(item[1]),
			HighPrice:  parseFloat64(item[2]),
			LowPrice:   parseFloat64(item[3]),
			ClosePrice: parseFloat64(item[4]),
			Volume:     parseFloat64(item[5]),
			Turnover:   parseFloat64(item[6]),
		}

		klines = append(klines, kline)
	}

	return klines, nil
}
