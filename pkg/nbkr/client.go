// Package nbkr fetches the daily exchange rate feed published by the
// National Bank of the Kyrgyz Republic. Rates are quoted in SOM per
// Nominal units of the foreign currency.
package nbkr

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Client manages requests against the NBKR daily rates feed
type Client struct {
	feedURL    string
	httpClient *http.Client
}

// NewClient creates a new NBKR feed client
func NewClient(feedURL string) *Client {
	return &Client{
		feedURL: feedURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Rate is a single parsed feed record. Value is the quoted SOM price for
// Nominal units of the currency; callers divide Value by Nominal to get the
// per-unit rate.
type Rate struct {
	ISOCode string
	Nominal float64
	Value   float64
}

type currencyRates struct {
	XMLName    xml.Name   `xml:"CurrencyRates"`
	Date       string     `xml:"Date,attr"`
	Currencies []currency `xml:"Currency"`
}

type currency struct {
	ISOCode string `xml:"ISOCode,attr"`
	Nominal string `xml:"Nominal"`
	Value   string `xml:"Value"`
}

// FetchDailyRates downloads and parses the daily feed. A failed fetch or an
// unparseable document is fatal; individual records with malformed numeric
// fields are returned in skipped rather than aborting the batch.
func (c *Client) FetchDailyRates(ctx context.Context) (rates []Rate, skipped []string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build feed request: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch rate feed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("rate feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read rate feed: %v", err)
	}

	return ParseDailyRates(body)
}

// ParseDailyRates decodes a daily.xml document. Exposed separately from
// FetchDailyRates so the decoding rules are testable without a live feed.
func ParseDailyRates(data []byte) (rates []Rate, skipped []string, err error) {
	var doc currencyRates
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("invalid XML from rate feed: %v", err)
	}
	if len(doc.Currencies) == 0 {
		return nil, nil, fmt.Errorf("rate feed contains no currency records")
	}

	for _, cur := range doc.Currencies {
		if cur.ISOCode == "" {
			skipped = append(skipped, "(missing ISO code)")
			continue
		}
		nominal, err := parseFeedNumber(cur.Nominal)
		if err != nil || nominal <= 0 {
			skipped = append(skipped, cur.ISOCode)
			continue
		}
		value, err := parseFeedNumber(cur.Value)
		if err != nil {
			skipped = append(skipped, cur.ISOCode)
			continue
		}
		rates = append(rates, Rate{
			ISOCode: cur.ISOCode,
			Nominal: nominal,
			Value:   value,
		})
	}
	return rates, skipped, nil
}

// The feed uses a comma as the decimal separator.
func parseFeedNumber(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	return strconv.ParseFloat(s, 64)
}
