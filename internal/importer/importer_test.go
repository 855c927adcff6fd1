package importer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"upath/internal/database"
	"upath/internal/domain/resource"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDB struct {
	mu        sync.Mutex
	resources map[string]resource.Resource
	runs      map[uuid.UUID]string
	imported  map[uuid.UUID]int
	failExec  error
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		resources: map[string]resource.Resource{},
		runs:      map[uuid.UUID]string{},
		imported:  map[uuid.UUID]int{},
	}
}

func (db *fakeDB) Ping(context.Context) error { return nil }
func (db *fakeDB) Close() error               { return nil }
func (db *fakeDB) SQLDB() *sql.DB             { return nil }

func (db *fakeDB) Begin(context.Context) (database.Tx, error) {
	return nil, errors.New("not implemented")
}

func (db *fakeDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("not implemented")
}

func (db *fakeDB) QueryRow(context.Context, string, ...any) database.Row {
	return nil
}

func (db *fakeDB) Exec(_ context.Context, query string, args ...any) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	switch {
	case strings.HasPrefix(q, "insert into resource_import_runs"):
		if db.failExec != nil {
			return 0, db.failExec
		}
		db.runs[args[0].(uuid.UUID)] = args[2].(string)
		return 1, nil

	case strings.HasPrefix(q, "update resource_import_runs"):
		id := args[0].(uuid.UUID)
		db.runs[id] = args[1].(string)
		db.imported[id] = args[2].(int)
		return 1, nil

	case strings.HasPrefix(q, "insert into resources"):
		link := args[3].(string)
		db.resources[link] = resource.Resource{
			Title:       args[0].(string),
			Description: args[1].(string),
			Category:    args[2].(string),
			Link:        link,
		}
		return 1, nil
	}
	return 0, fmt.Errorf("unexpected query: %s", q)
}

type fakeCache struct {
	patterns []string
}

func (c *fakeCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.patterns = append(c.patterns, pattern)
	return nil
}

func listingServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/scholarships", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			<a href="/scholarships/alpha">Alpha</a>
			<a href="/scholarships/beta#apply">Beta</a>
			<a href="/scholarships/beta">Beta again</a>
			<a href="/scholarships/untitled">Untitled</a>
			<a href="/about">About</a>
			<a href="https://elsewhere.example/scholarships/x">Offsite</a>
		</body></html>`))
	})
	mux.HandleFunc("/scholarships/alpha", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head>
			<meta property="og:title" content="Alpha Scholarship">
			<meta property="og:description" content="Covers tuition.">
			<title>ignored</title>
		</head><body><h1>ignored</h1></body></html>`))
	})
	mux.HandleFunc("/scholarships/beta", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head>
			<title>  Beta   Grant </title>
			<meta name="description" content="For first generation students.">
		</head><body></body></html>`))
	})
	mux.HandleFunc("/scholarships/untitled", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head></head><body><p>nothing</p></body></html>`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testSource(srv *httptest.Server) Source {
	return Source{
		Name:         "local",
		Category:     resource.CategoryScholarships,
		ListURL:      srv.URL + "/scholarships",
		LinkContains: "/scholarships/",
		LinkSelector: defaultSelector,
		Pages:        1,
	}
}

func TestImporter_ImportsAndInvalidatesCache(t *testing.T) {
	srv := listingServer(t)
	db := newFakeDB()
	cache := &fakeCache{}
	im := New(db, cache, nil, Options{Workers: 2, RatePerSecond: -1})

	runs, err := im.Run(context.Background(), []Source{testSource(srv)})
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, resource.RunSucceeded, run.Status)
	assert.Equal(t, 2, run.Imported)
	assert.NotNil(t, run.FinishedAt)
	assert.Equal(t, resource.RunSucceeded, db.runs[run.ID])
	assert.Equal(t, 2, db.imported[run.ID])

	alpha := db.resources[srv.URL+"/scholarships/alpha"]
	assert.Equal(t, "Alpha Scholarship", alpha.Title)
	assert.Equal(t, "Covers tuition.", alpha.Description)
	assert.Equal(t, resource.CategoryScholarships, alpha.Category)

	beta := db.resources[srv.URL+"/scholarships/beta"]
	assert.Equal(t, "Beta Grant", beta.Title)
	assert.Equal(t, "For first generation students.", beta.Description)

	assert.NotContains(t, db.resources, srv.URL+"/scholarships/untitled")
	assert.Equal(t, []string{"resources:list:*"}, cache.patterns)
}

func TestImporter_RerunIsIdempotent(t *testing.T) {
	srv := listingServer(t)
	db := newFakeDB()
	im := New(db, nil, nil, Options{RatePerSecond: -1})

	_, err := im.Run(context.Background(), []Source{testSource(srv)})
	require.NoError(t, err)
	_, err = im.Run(context.Background(), []Source{testSource(srv)})
	require.NoError(t, err)

	assert.Len(t, db.resources, 2)
	assert.Len(t, db.runs, 2)
}

func TestImporter_MaxItems(t *testing.T) {
	srv := listingServer(t)
	db := newFakeDB()
	im := New(db, nil, nil, Options{RatePerSecond: -1, MaxItems: 1})

	runs, err := im.Run(context.Background(), []Source{testSource(srv)})
	require.NoError(t, err)
	assert.Equal(t, 1, runs[0].Imported)
	assert.Len(t, db.resources, 1)
}

func TestImporter_FailedSourceDoesNotStopOthers(t *testing.T) {
	srv := listingServer(t)
	db := newFakeDB()
	cache := &fakeCache{}
	im := New(db, cache, nil, Options{RatePerSecond: -1})

	broken := testSource(srv)
	broken.Name = "broken"
	broken.ListURL = srv.URL + "/missing"

	runs, err := im.Run(context.Background(), []Source{broken, testSource(srv)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	require.Len(t, runs, 2)
	assert.Equal(t, resource.RunFailed, runs[0].Status)
	assert.Equal(t, resource.RunFailed, db.runs[runs[0].ID])
	assert.Equal(t, resource.RunSucceeded, runs[1].Status)
	assert.Len(t, cache.patterns, 1)
}

func TestImporter_HeadlessSourcesUseBrowserCollector(t *testing.T) {
	srv := listingServer(t)
	db := newFakeDB()
	im := New(db, nil, nil, Options{RatePerSecond: -1})

	var called bool
	im.headless = func(_ context.Context, _ Source, pageURL string) ([]string, error) {
		called = true
		return []string{srv.URL + "/scholarships/alpha"}, nil
	}

	src := testSource(srv)
	src.Headless = true
	runs, err := im.Run(context.Background(), []Source{src})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, 1, runs[0].Imported)
}

func TestImporter_RunCreationFailure(t *testing.T) {
	srv := listingServer(t)
	db := newFakeDB()
	db.failExec = errors.New("relation does not exist")
	im := New(db, nil, nil, Options{RatePerSecond: -1})

	runs, err := im.Run(context.Background(), []Source{testSource(srv)})
	require.Error(t, err)
	assert.Equal(t, resource.RunFailed, runs[0].Status)
	assert.Empty(t, db.resources)
}

func TestFilterLinks(t *testing.T) {
	got := filterLinks([]string{
		"https://site.test/a#x",
		"https://site.test/a",
		"mailto:hi@site.test",
		"https://other.test/a",
		"https://site.test/list",
		"https://site.test/b",
	}, "", "https://site.test/list")
	assert.Equal(t, []string{"https://site.test/a", "https://site.test/b"}, got)
}

func TestClip(t *testing.T) {
	assert.Equal(t, "short", clip("short", 10))
	assert.Equal(t, "abcd…", clip("abcdefghij", 5))
}
