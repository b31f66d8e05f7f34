package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/rabitt1ove/koyomi"
)

const (
	// CKAN API endpoint for the holiday dataset on the e-Gov Data Portal.
	ckanAPIURL = "https://data.e-gov.go.jp/data/api/action/package_show?id=cao_20190522_0002"

	// Direct CSV URLs used when the CKAN API is unavailable.
	fallbackURL1 = "https://www8.cao.go.jp/chosei/shukujitsu/syukujitsu.csv"
	fallbackURL2 = "https://www8.cao.go.jp/chosei/shukujitsu/shukujitsu.csv"

	minExpectedRows = 1000

	httpTimeout = 30 * time.Second
	maxRetries  = 3

	maxJSONResponseSize = 1 * 1024 * 1024
	maxCSVResponseSize  = 5 * 1024 * 1024

	userAgent = "koyomi/1.0 (https://github.com/rabitt1ove/koyomi)"
)

// retryBaseDelay is the base delay between retry attempts.
var retryBaseDelay = 2 * time.Second

// allowedCSVHosts is the set of hostnames allowed for CSV download URLs.
var allowedCSVHosts = map[string]bool{
	"www8.cao.go.jp": true,
	"www.cao.go.jp":  true,
}

type ckanResource struct {
	URL    string `json:"url"`
	Format string `json:"format"`
}

// ckanResponse represents the relevant parts of the CKAN API response.
type ckanResponse struct {
	Success bool `json:"success"`
	Result  struct {
		Resources []ckanResource `json:"resources"`
	} `json:"result"`
}

// officialHoliday is one row of the official CSV.
type officialHoliday struct {
	date koyomi.Date
	name string
}

// errNotRetryable marks a response that retrying will not fix.
var errNotRetryable = errors.New("not retryable")

// loadOfficial reads the official list from path, or downloads it when path
// is empty.
func loadOfficial(ctx context.Context, client *http.Client, path string) ([]officialHoliday, error) {
	var (
		body []byte
		err  error
	)
	if path != "" {
		body, err = os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "reading CSV")
		}
	} else {
		body, err = fetchCSV(ctx, client)
		if err != nil {
			return nil, errors.Wrap(err, "fetching CSV")
		}
	}

	holidays, err := parseCSV(decodeCSV(body))
	if err != nil {
		return nil, errors.Wrap(err, "parsing CSV")
	}
	if path == "" && len(holidays) < minExpectedRows {
		return nil, errors.Errorf("validation failed: expected at least %d rows, got %d", minExpectedRows, len(holidays))
	}
	return holidays, nil
}

// resolveCSVURLWithRetry queries the given CKAN endpoint for the CSV
// download URL, retrying transient failures.
func resolveCSVURLWithRetry(ctx context.Context, client *http.Client, apiURL string) (string, error) {
	log.Printf("resolving CSV URL via CKAN API: %s", apiURL)

	body, err := fetchWithRetry(ctx, client, apiURL, maxJSONResponseSize)
	if err != nil {
		return "", errors.Wrap(err, "CKAN API request failed")
	}

	var ckan ckanResponse
	if err := json.Unmarshal(body, &ckan); err != nil {
		return "", errors.Wrap(err, "CKAN API response decode failed")
	}
	if !ckan.Success {
		return "", errors.New("CKAN API returned success=false")
	}

	for _, r := range ckan.Result.Resources {
		if strings.EqualFold(r.Format, "CSV") && r.URL != "" {
			if err := validateCSVURL(r.URL); err != nil {
				return "", errors.Wrap(err, "CKAN returned invalid URL")
			}
			log.Printf("  resolved URL: %s", r.URL)
			return r.URL, nil
		}
	}
	return "", errors.New("no CSV resource found in CKAN response")
}

// validateCSVURL checks that a URL points to an allowed host over HTTPS.
func validateCSVURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.Wrapf(err, "invalid URL %q", rawURL)
	}
	if parsed.Scheme != "https" {
		return errors.Errorf("URL %q: only HTTPS is allowed", rawURL)
	}
	if !allowedCSVHosts[parsed.Hostname()] {
		return errors.Errorf("URL %q: host %q is not in the allowed list", rawURL, parsed.Hostname())
	}
	return nil
}

// fetchCSV resolves the CSV URL and downloads it.
// Strategy: CKAN API -> fallback URL 1 -> fallback URL 2.
func fetchCSV(ctx context.Context, client *http.Client) ([]byte, error) {
	return fetchCSVWithFallbacks(ctx, client, ckanAPIURL, fallbackURL1, fallbackURL2)
}

func fetchCSVWithFallbacks(ctx context.Context, client *http.Client, ckanURL, fb1, fb2 string) ([]byte, error) {
	var urls []string

	if resolved, err := resolveCSVURLWithRetry(ctx, client, ckanURL); err != nil {
		log.Printf("  CKAN API failed: %v (falling back to direct URLs)", err)
	} else {
		urls = append(urls, resolved)
	}

	for _, fb := range []string{fb1, fb2} {
		if len(urls) == 0 || urls[0] != fb {
			urls = append(urls, fb)
		}
	}

	var lastErr error
	for _, u := range urls {
		body, err := fetchWithRetry(ctx, client, u, maxCSVResponseSize)
		if err != nil {
			lastErr = err
			continue
		}
		return body, nil
	}
	return nil, errors.Wrap(lastErr, "all URLs failed")
}

// fetchWithRetry GETs a URL with exponential backoff on network errors,
// 429 and 5xx responses. At most limit bytes of the body are read.
func fetchWithRetry(ctx context.Context, client *http.Client, u string, limit int64) ([]byte, error) {
	var lastErr error
	for attempt := range maxRetries {
		if attempt > 0 {
			delay := retryBaseDelay * time.Duration(1<<(attempt-1))
			log.Printf("  retrying in %v (attempt %d/%d)", delay, attempt+1, maxRetries)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		body, err := fetchOnce(ctx, client, u, limit)
		if err == nil {
			return body, nil
		}
		if errors.Is(err, errNotRetryable) {
			return nil, err
		}
		lastErr = err
		log.Printf("  failed: %v", err)
	}
	return nil, lastErr
}

func fetchOnce(ctx context.Context, client *http.Client, u string, limit int64) ([]byte, error) {
	log.Printf("fetching %s", u)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrapf(errNotRetryable, "creating request: %v", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", u)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, errors.Errorf("GET %s: status %d", u, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, errors.Wrapf(errNotRetryable, "GET %s: status %d", u, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", u)
	}
	return body, nil
}

// decodeCSV returns a UTF-8 reader over the CSV. The official file is
// Shift_JIS; UTF-8 input, such as the output of export, passes through.
func decodeCSV(body []byte) io.Reader {
	if utf8.Valid(body) {
		return bytes.NewReader(body)
	}
	return transform.NewReader(bytes.NewReader(body), japanese.ShiftJIS.NewDecoder())
}

// parseCSV parses the Cabinet Office holiday CSV and validates its format.
func parseCSV(r io.Reader) ([]officialHoliday, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "reading header")
	}
	if len(header) < 2 {
		return nil, errors.Errorf("unexpected header columns: %d (expected 2)", len(header))
	}
	if !strings.Contains(header[0], "国民の祝日") {
		return nil, errors.Errorf("unexpected header: %q (expected to contain '国民の祝日')", header[0])
	}

	var holidays []officialHoliday
	lineNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNum+1)
		}
		lineNum++

		if len(record) < 2 {
			return nil, errors.Errorf("line %d: expected 2 columns, got %d", lineNum, len(record))
		}

		dateStr := strings.TrimSpace(record[0])
		name := strings.TrimSpace(record[1])
		if dateStr == "" || name == "" {
			continue
		}

		d, err := koyomi.Parse(dateStr)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: invalid date %q", lineNum, dateStr)
		}
		holidays = append(holidays, officialHoliday{date: d, name: name})
	}
	return holidays, nil
}
