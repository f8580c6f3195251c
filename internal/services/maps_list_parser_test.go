package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// listPageFixture builds a minimal shared-list page: an og:title meta tag and
// an initialization state whose embedded payload carries the given entries.
func listPageFixture(t *testing.T, title string, entries []interface{}) string {
	t.Helper()

	payload, err := json.Marshal(entries)
	require.NoError(t, err)

	state, err := json.Marshal([]interface{}{nil, ")]}'\n" + string(payload)})
	require.NoError(t, err)

	return fmt.Sprintf(`<!DOCTYPE html><html><head>
<meta property="og:title" content="%s">
</head><body>
<script>window.APP_INITIALIZATION_STATE=%s;window.APP_FLAGS=[];</script>
</body></html>`, title, state)
}

func placeEntry(ftid, name string, extras ...interface{}) []interface{} {
	entry := []interface{}{
		[]interface{}{nil, nil, 35.6595, 139.7005},
		[]interface{}{ftid, name},
	}
	return append(entry, extras...)
}

func TestParseListPage(t *testing.T) {
	page := listPageFixture(t, "Tokyo weekend · Google Maps", []interface{}{
		placeEntry("0x6018f4a:0xdeadbeef", "Shibuya Crossing",
			"Shibuya, Tokyo", 4.7, 1200.0, "Tourist attraction", "Famous scramble crossing"),
		placeEntry("0x6018f4b:0xcafe", "Ichiran Shibuya"),
	})

	list, err := parseListPage(page)
	require.NoError(t, err)
	assert.Equal(t, "Tokyo weekend", list.Title, "og:title suffix is trimmed")
	require.Len(t, list.Places, 2)

	first := list.Places[0]
	assert.Equal(t, "Shibuya Crossing", first.Title)
	assert.Equal(t, "0x6018f4a:0xdeadbeef", first.PlaceID)
	assert.Equal(t, "Shibuya, Tokyo", first.Address)
	require.NotNil(t, first.Latitude)
	assert.InDelta(t, 35.6595, *first.Latitude, 1e-9)
	require.NotNil(t, first.Longitude)
	assert.InDelta(t, 139.7005, *first.Longitude, 1e-9)
	require.NotNil(t, first.Rating)
	assert.InDelta(t, 4.7, *first.Rating, 1e-9)
	require.NotNil(t, first.RatingCount)
	assert.Equal(t, 1200, *first.RatingCount)
	assert.Equal(t, "Tourist attraction", first.Category)
	assert.Equal(t, "Famous scramble crossing", first.Description)

	second := list.Places[1]
	assert.Equal(t, "Ichiran Shibuya", second.Title)
	assert.Empty(t, second.Address)
	assert.Nil(t, second.Rating)
	assert.Nil(t, second.RatingCount)
}

func TestParseListPage_SkipsMalformedEntries(t *testing.T) {
	page := listPageFixture(t, "Mixed bag", []interface{}{
		placeEntry("not-an-ftid", "Bad ref"),
		[]interface{}{nil, []interface{}{"0x1:0x2"}}, // ref too short
		placeEntry("0x1:0x2", "Good one"),
	})

	list, err := parseListPage(page)
	require.NoError(t, err)
	require.Len(t, list.Places, 1)
	assert.Equal(t, "Good one", list.Places[0].Title)
}

func TestParseListPage_NoInitializationState(t *testing.T) {
	_, err := parseListPage("<html><body>nothing to see</body></html>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no initialization state")
}

func TestPageTitle(t *testing.T) {
	tests := []struct {
		name string
		page string
		want string
	}{
		{"suffix trimmed", `<meta property="og:title" content="My list · Google Maps">`, "My list"},
		{"no suffix", `<meta property="og:title" content="Plain title">`, "Plain title"},
		{"entities unescaped", `<meta property="og:title" content="Caf&amp;eacute;s">`, "Caf&eacute;s"},
		{"missing tag", `<html></html>`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pageTitle(tt.page))
		})
	}
}

func TestParseSharedList_FetchesAndParses(t *testing.T) {
	page := listPageFixture(t, "Short trip · Google Maps", []interface{}{
		placeEntry("0xa:0x1", "Somewhere"),
	})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		fmt.Fprint(w, page)
	}))
	defer server.Close()

	parser := &googleMapsListParser{httpClient: server.Client(), logger: zap.NewNop()}
	list, err := parser.ParseSharedList(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "Short trip", list.Title)
	require.Len(t, list.Places, 1)
}

func TestParseSharedList_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	parser := &googleMapsListParser{httpClient: server.Client(), logger: zap.NewNop()}
	_, err := parser.ParseSharedList(context.Background(), server.URL)
	require.Error(t, err)
}
