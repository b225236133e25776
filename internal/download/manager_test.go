package download

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/handiism/3gpp-downloader/internal/config"
	"github.com/handiism/3gpp-downloader/internal/model"
)

const listingPage = `<html><body>
<table>
	<thead>
	  <tr>
		<th></th>
		<th><a href="?sortby=name">sort by name</a></th>
		<th><a href="?sortby=date">sort by date</a></th>
	  </tr>
	</thead>
	<tbody>
	  <tr>
		<td></td>
		<td><a href="ARCHIVE/23501-g50.zip">23501-g50.zip</a></td>
		<td>2020/7/3 18:02</td>
	  </tr>
	  <tr>
		<td></td>
		<td><a href="ARCHIVE/23501-h20.zip">23501-h20.zip</a></td>
		<td>2022/6/15 9:30</td>
	  </tr>
	</tbody>
</table>
</body></html>`

// newTestManager serves a two-row listing plus the archives themselves
// and returns a manager pointed at the server and a temp downloads dir.
func newTestManager(t *testing.T) *Manager {
	t.Helper()

	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/ftp/Specs/archive/23_series/23.501", func(w http.ResponseWriter, r *http.Request) {
		page := strings.ReplaceAll(listingPage, "ARCHIVE", srv.URL+"/ftp/Specs/archive/23_series/23.501")
		w.Write([]byte(page))
	})
	mux.HandleFunc("/ftp/Specs/archive/23_series/23.501/23501-g50.zip", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("release sixteen archive"))
	})
	mux.HandleFunc("/ftp/Specs/archive/23_series/23.501/23501-h20.zip", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("release seventeen archive"))
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	settings := config.DefaultSettings()
	settings.DownloadsPath = t.TempDir()
	settings.ArchiveBaseURL = srv.URL + "/ftp/Specs/archive/"
	settings.DownloadMaxRetries = 1

	return NewManager(settings, nil)
}

func TestManager_InitializeAndDownloadFirst(t *testing.T) {
	m := newTestManager(t)

	if err := m.Initialize(context.Background(), "23.501", nil, nil); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if len(m.Items()) != 2 {
		t.Fatalf("got %d items, want 2", len(m.Items()))
	}

	dest, err := m.DownloadFirst(context.Background())
	if err != nil {
		t.Fatalf("DownloadFirst failed: %v", err)
	}
	if filepath.Base(dest) != "23501-g50.zip" {
		t.Errorf("destination = %q, want the first row's archive", dest)
	}

	content, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "release sixteen archive" {
		t.Errorf("downloaded content = %q", content)
	}
}

func TestManager_LatestItem(t *testing.T) {
	m := newTestManager(t)

	if err := m.Initialize(context.Background(), "23501", nil, nil); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	latest, ok := m.LatestItem()
	if !ok {
		t.Fatal("LatestItem reported no items")
	}
	if latest.Version != (model.Version{Major: 17, Minor: 2, Editorial: 0}) {
		t.Errorf("latest = %v, want 17.2.0", latest.Version)
	}
}

func TestManager_ReleaseFilterAndNoMatches(t *testing.T) {
	m := newTestManager(t)

	release := 16
	if err := m.Initialize(context.Background(), "23.501", &release, nil); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if len(m.Items()) != 1 {
		t.Fatalf("got %d items for release 16, want 1", len(m.Items()))
	}

	release = 99
	if err := m.Initialize(context.Background(), "23.501", &release, nil); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if len(m.Items()) != 0 {
		t.Fatalf("got %d items for release 99, want 0", len(m.Items()))
	}
	if _, err := m.DownloadFirst(context.Background()); !errors.Is(err, ErrNoMatches) {
		t.Errorf("DownloadFirst error = %v, want ErrNoMatches", err)
	}
}

func TestManager_DownloadAll(t *testing.T) {
	m := newTestManager(t)

	if err := m.Initialize(context.Background(), "23.501", nil, nil); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if err := m.DownloadAll(context.Background()); err != nil {
		t.Fatalf("DownloadAll failed: %v", err)
	}

	for _, name := range []string{"23501-g50.zip", "23501-h20.zip"} {
		if _, err := os.Stat(filepath.Join(m.settings.DownloadsPath, name)); err != nil {
			t.Errorf("expected %s to be downloaded: %v", name, err)
		}
	}

	_, _, files, total := m.GetProgress()
	if files != 2 || total != 2 {
		t.Errorf("progress counters = %d/%d, want 2/2", files, total)
	}
}

func TestManager_SkipsExisting(t *testing.T) {
	m := newTestManager(t)

	if err := m.Initialize(context.Background(), "23.501", nil, nil); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	// Pre-create the file with the exact remote size.
	dest := filepath.Join(m.settings.DownloadsPath, "23501-g50.zip")
	if err := os.WriteFile(dest, []byte("release sixteen archive"), 0644); err != nil {
		t.Fatal(err)
	}
	before, err := os.Stat(dest)
	if err != nil {
		t.Fatal(err)
	}

	var skipped bool
	m.onProgress = func(event ProgressEvent) {
		if event.Level == LevelVerbose {
			skipped = true
		}
	}

	if _, err := m.DownloadFirst(context.Background()); err != nil {
		t.Fatalf("DownloadFirst failed: %v", err)
	}

	after, err := os.Stat(dest)
	if err != nil {
		t.Fatal(err)
	}
	if !skipped {
		t.Error("expected a skip event for the existing file")
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Error("existing file was rewritten")
	}
}

func TestManager_InvalidSpecNumber(t *testing.T) {
	m := newTestManager(t)

	err := m.Initialize(context.Background(), "2a", nil, nil)
	if !errors.Is(err, model.ErrInvalidSpecNumber) {
		t.Fatalf("error = %v, want ErrInvalidSpecNumber", err)
	}
}
