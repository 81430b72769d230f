package collector

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"FXBridge/internal/model"

	"github.com/shopspring/decimal"
)

// DefaultECBURL is the ECB historical euro reference-rate feed.
const DefaultECBURL = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-hist.xml"

// ECBFetcher implements Fetcher using the ECB euro foreign exchange reference rates feed.
type ECBFetcher struct {
	URL    string
	Client *http.Client
}

// NewECBFetcher creates a fetcher with optional proxy support.
func NewECBFetcher(feedURL, proxyURL string, timeout time.Duration) *ECBFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if feedURL == "" {
		feedURL = DefaultECBURL
	}
	return &ECBFetcher{
		URL: feedURL,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

func (f *ECBFetcher) Name() string { return "ecb" }

// FetchRates downloads the feed and extracts one RateTable per published day.
func (f *ECBFetcher) FetchRates(ctx context.Context) ([]model.RateTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, &FetchError{URL: f.URL, Cause: err}
	}
	req.Header.Set("User-Agent", "FXBridge/1.0")
	req.Header.Set("Accept", "application/xml, text/xml")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: f.URL, Cause: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{URL: f.URL, StatusCode: resp.StatusCode}
	}
	return ParseECB(resp.Body)
}

// ecbEnvelope is the gesmes envelope of the ECB feed:
//
//	<gesmes:Envelope>
//	  <Cube>
//	    <Cube time="2024-01-05">
//	      <Cube currency="USD" rate="1.0921"/>
type ecbEnvelope struct {
	XMLName xml.Name `xml:"Envelope"`
	Cube    struct {
		Days []ecbDay `xml:"http://www.ecb.int/vocabulary/2002-08-01/eurofxref Cube"`
	} `xml:"http://www.ecb.int/vocabulary/2002-08-01/eurofxref Cube"`
}

type ecbDay struct {
	Time  string    `xml:"time,attr"`
	Rates []ecbRate `xml:"http://www.ecb.int/vocabulary/2002-08-01/eurofxref Cube"`
}

type ecbRate struct {
	Currency string `xml:"currency,attr"`
	Rate     string `xml:"rate,attr"`
}

// ParseECB decodes an ECB reference-rate document. Day cubes without a time
// attribute and rate cubes without a currency attribute are ignored; any other
// irregularity is a ParseError.
func ParseECB(r io.Reader) ([]model.RateTable, error) {
	var env ecbEnvelope
	if err := xml.NewDecoder(r).Decode(&env); err != nil {
		return nil, &ParseError{Msg: "decode xml", Cause: err}
	}

	tables := make([]model.RateTable, 0, len(env.Cube.Days))
	for _, d := range env.Cube.Days {
		if d.Time == "" {
			continue
		}
		date, err := model.ParseDay(d.Time)
		if err != nil {
			return nil, &ParseError{Msg: fmt.Sprintf("invalid date %q", d.Time), Cause: err}
		}
		t := model.RateTable{Date: date, Rates: make(map[string]decimal.Decimal, len(d.Rates))}
		for _, r := range d.Rates {
			if r.Currency == "" {
				continue
			}
			rate, err := decimal.NewFromString(r.Rate)
			if err != nil {
				return nil, &ParseError{Msg: fmt.Sprintf("invalid %s rate %q on %s", r.Currency, r.Rate, d.Time), Cause: err}
			}
			if rate.IsNegative() {
				return nil, &ParseError{Msg: fmt.Sprintf("negative %s rate %q on %s", r.Currency, r.Rate, d.Time)}
			}
			t.Rates[r.Currency] = rate
		}
		tables = append(tables, t)
	}

	// Ensure chronological order; the feed lists newest first.
	sort.SliceStable(tables, func(i, j int) bool { return tables[i].Date.Before(tables[j].Date) })
	return tables, nil
}
