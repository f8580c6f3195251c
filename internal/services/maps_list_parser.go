package services

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ParsedPlace is one entry scraped from a shared Google Maps list, before
// categorization and dedup.
type ParsedPlace struct {
	Title       string
	Description string
	Category    string // free text from the source page
	Address     string
	Latitude    *float64
	Longitude   *float64
	Rating      *float64
	RatingCount *int
	PlaceID     string // source-native id, empty when the page omits it
}

type ParsedList struct {
	Title  string
	Places []ParsedPlace
}

type MapsListParser interface {
	ParseSharedList(ctx context.Context, listURL string) (*ParsedList, error)
}

var (
	initStateRe = regexp.MustCompile(`window\.APP_INITIALIZATION_STATE=(\[.+?\]);window\.`)
	ogTitleRe   = regexp.MustCompile(`<meta\s+property="og:title"\s+content="([^"]*)"`)
	ftidRe      = regexp.MustCompile(`^0x[0-9a-fA-F]+:0x[0-9a-fA-F]+$`)
)

type googleMapsListParser struct {
	httpClient *http.Client
	logger     *zap.Logger
}

func NewGoogleMapsListParser(logger *zap.Logger) MapsListParser {
	return &googleMapsListParser{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		logger:     logger,
	}
}

// ParseSharedList fetches a shared list page (short links redirect to the
// full page) and extracts the list title plus its place entries from the
// APP_INITIALIZATION_STATE blob the page embeds.
func (p *googleMapsListParser) ParseSharedList(ctx context.Context, listURL string) (*ParsedList, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; withme-import/1.0)")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching shared list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("shared list fetch bad status: %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, fmt.Errorf("reading shared list page: %w", err)
	}

	list, err := parseListPage(string(body))
	if err != nil {
		return nil, err
	}
	p.logger.Debug("parsed shared list",
		zap.String("title", list.Title),
		zap.Int("places", len(list.Places)))
	return list, nil
}

func parseListPage(page string) (*ParsedList, error) {
	m := initStateRe.FindStringSubmatch(page)
	if m == nil {
		return nil, fmt.Errorf("no initialization state found in page")
	}

	var root []interface{}
	if err := json.Unmarshal([]byte(m[1]), &root); err != nil {
		return nil, fmt.Errorf("decoding initialization state: %w", err)
	}

	list := &ParsedList{Title: pageTitle(page)}
	for _, payload := range embeddedPayloads(root) {
		collectPlaces(payload, &list.Places)
	}
	return list, nil
}

func pageTitle(page string) string {
	m := ogTitleRe.FindStringSubmatch(page)
	if m == nil {
		return ""
	}
	title := html.UnescapeString(m[1])
	// og:title carries a " · Google Maps" style suffix
	if i := strings.Index(title, " · "); i >= 0 {
		title = title[:i]
	}
	return strings.TrimSpace(title)
}

// embeddedPayloads finds the ")]}'"-prefixed JSON strings nested inside the
// initialization state and decodes each one.
func embeddedPayloads(node interface{}) []interface{} {
	var out []interface{}
	switch v := node.(type) {
	case string:
		if rest, ok := strings.CutPrefix(v, ")]}'"); ok {
			var decoded interface{}
			if err := json.Unmarshal([]byte(strings.TrimLeft(rest, "\n")), &decoded); err == nil {
				out = append(out, decoded)
			}
		}
	case []interface{}:
		for _, child := range v {
			out = append(out, embeddedPayloads(child)...)
		}
	}
	return out
}

// collectPlaces walks a decoded payload and appends every node that looks
// like a place entry. Entries are arrays laid out as:
//
//	[0] geometry [null, null, lat, lng]
//	[1] [ftid, name]
//	[2] address
//	[3] rating, [4] review count
//	[5] category text, [6] description
//
// Trailing elements are optional; anything malformed is skipped.
func collectPlaces(node interface{}, out *[]ParsedPlace) {
	arr, ok := node.([]interface{})
	if !ok {
		return
	}
	if place, ok := placeFromEntry(arr); ok {
		*out = append(*out, place)
		return
	}
	for _, child := range arr {
		collectPlaces(child, out)
	}
}

func placeFromEntry(arr []interface{}) (ParsedPlace, bool) {
	if len(arr) < 2 {
		return ParsedPlace{}, false
	}

	ref, ok := arr[1].([]interface{})
	if !ok || len(ref) < 2 {
		return ParsedPlace{}, false
	}
	ftid, ok := ref[0].(string)
	if !ok || !ftidRe.MatchString(ftid) {
		return ParsedPlace{}, false
	}
	name, ok := ref[1].(string)
	if !ok || name == "" {
		return ParsedPlace{}, false
	}

	place := ParsedPlace{Title: name, PlaceID: ftid}

	if geo, ok := arr[0].([]interface{}); ok && len(geo) >= 4 {
		if lat, ok := geo[2].(float64); ok {
			if lng, ok := geo[3].(float64); ok {
				place.Latitude = &lat
				place.Longitude = &lng
			}
		}
	}
	if len(arr) > 2 {
		if addr, ok := arr[2].(string); ok {
			place.Address = addr
		}
	}
	if len(arr) > 3 {
		if rating, ok := arr[3].(float64); ok && rating > 0 {
			place.Rating = &rating
		}
	}
	if len(arr) > 4 {
		if count, ok := arr[4].(float64); ok && count > 0 {
			n := int(count)
			place.RatingCount = &n
		}
	}
	if len(arr) > 5 {
		if category, ok := arr[5].(string); ok {
			place.Category = category
		}
	}
	if len(arr) > 6 {
		if desc, ok := arr[6].(string); ok {
			place.Description = desc
		}
	}

	return place, true
}
