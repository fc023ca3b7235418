package report

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"

	"github.com/jcferrara/investment-report/date"
)

// DefaultLookbackMonths is how far back the price feed reaches by default.
const DefaultLookbackMonths = 60

// quoteURL is the daily chart endpoint; it serves one symbol per request.
const quoteURL = "https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=%dmo"

/*
	{
	  "chart": {
	    "result": [
	      {
	        "timestamp": [1700055000, ...],
	        "indicators": { "quote": [ { "close": [189.37, ...] } ] }
	      }
	    ]
	  }
	}
*/

// FetchPrices downloads daily close prices for the given symbols over the
// lookback window and returns them as a Market. Responses are cached on
// disk until the end of the day, so re-running a report does not hammer the
// service. A symbol that cannot be fetched fails the whole call.
func FetchPrices(symbols []string, lookbackMonths int) (*Market, error) {
	if lookbackMonths <= 0 {
		lookbackMonths = DefaultLookbackMonths
	}
	client := daily()
	market := NewMarket()
	for _, symbol := range symbols {
		if err := fetchSymbol(client, market, symbol, lookbackMonths); err != nil {
			return nil, fmt.Errorf("cannot fetch prices for %q: %w", symbol, err)
		}
	}
	return market, nil
}

func fetchSymbol(client *http.Client, market *Market, symbol string, lookbackMonths int) error {
	addr := fmt.Sprintf(quoteURL, url.PathEscape(symbol), lookbackMonths)

	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return err
	}
	return decodeChart(market, symbol, jobj)
}

// decodeChart extracts the (timestamp, close) series from a chart response
// and records it in the market.
func decodeChart(market *Market, symbol string, jobj any) error {
	stamps, err := jsonlist(jobj, "$.chart.result[0].timestamp")
	if err != nil {
		return err
	}
	closes, err := jsonlist(jobj, "$.chart.result[0].indicators.quote[0].close")
	if err != nil {
		return err
	}
	if len(stamps) != len(closes) {
		return fmt.Errorf("mismatched series: %d timestamps, %d closes", len(stamps), len(closes))
	}

	for i, jstamp := range stamps {
		stamp, ok := jstamp.(float64)
		if !ok {
			return fmt.Errorf("timestamp %d is not a number: %v", i, jstamp)
		}
		// a null close marks a feed gap on an otherwise valid trading day
		close, ok := closes[i].(float64)
		if !ok {
			continue
		}
		on := date.New(time.Unix(int64(stamp), 0).UTC().Date())
		market.Add(symbol, on, close)
	}
	return nil
}

// jsonlist extracts a list at the given jsonpath.
func jsonlist(jobj any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%q is not a list: %v", path, jval)
	}
	return jlist, nil
}
