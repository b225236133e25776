package download

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/handiism/3gpp-downloader/internal/config"
	"github.com/handiism/3gpp-downloader/internal/http"
	ioutils "github.com/handiism/3gpp-downloader/internal/io"
	"github.com/handiism/3gpp-downloader/internal/model"
	"github.com/handiism/3gpp-downloader/internal/threegpp"
	"golang.org/x/sync/errgroup"
)

// ErrNoMatches is returned when a listing yields no archives that pass
// the filters, so there is nothing to download.
var ErrNoMatches = errors.New("no matching spec archives")

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a download progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Manager coordinates spec archive downloads: it fetches and filters a
// listing once, then downloads one, the latest, or all matching
// archives with retries and progress reporting.
type Manager struct {
	settings   *config.Settings
	httpClient *http.Client
	lister     *threegpp.Lister

	spec  model.SpecNumber
	items []model.SpecItem

	totalBytes      int64
	receivedBytes   int64
	totalFiles      int32
	downloadedFiles int32

	onProgress func(ProgressEvent)
}

// NewManager creates a new download Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	client := http.NewClient(settings.HTTPTimeout(), settings.UserAgent)

	return &Manager{
		settings:   settings,
		httpClient: client,
		lister:     threegpp.NewLister(client, settings.ArchiveBaseURL),
		onProgress: onProgress,
	}
}

// Initialize parses the spec number, fetches its listing page, and
// retains the archives that pass the optional release and date filters.
// A nil release or date means that filter is not applied. An empty
// result is not an error here; the download entry points report
// ErrNoMatches instead, so listing callers can render "nothing found"
// themselves.
func (m *Manager) Initialize(ctx context.Context, specInput string, release *int, date *model.DateFilter) error {
	spec, err := model.ParseSpecNumber(specInput)
	if err != nil {
		return err
	}
	m.spec = spec

	m.progress(ProgressEvent{Message: fmt.Sprintf("Fetching listing for %s", spec), Level: LevelVerbose})

	items, err := m.lister.List(ctx, spec, threegpp.Filters{Release: release, Date: date})
	if err != nil {
		return err
	}

	m.items = items
	m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d matching archive(s) for %s", len(items), spec), Level: LevelInfo})

	return nil
}

// Spec returns the parsed spec number from Initialize.
func (m *Manager) Spec() model.SpecNumber {
	return m.spec
}

// Items returns the filtered listing rows in document order.
func (m *Manager) Items() []model.SpecItem {
	return m.items
}

// LatestItem returns the item with the highest version, or false when
// the listing matched nothing.
func (m *Manager) LatestItem() (model.SpecItem, bool) {
	if len(m.items) == 0 {
		return model.SpecItem{}, false
	}
	latest := m.items[0]
	for _, item := range m.items[1:] {
		if latest.Version.Less(item.Version) {
			latest = item
		}
	}
	return latest, true
}

// GetProgress returns current download progress.
func (m *Manager) GetProgress() (received, total int64, filesReceived, filesTotal int32) {
	return atomic.LoadInt64(&m.receivedBytes), atomic.LoadInt64(&m.totalBytes),
		atomic.LoadInt32(&m.downloadedFiles), atomic.LoadInt32(&m.totalFiles)
}

// DownloadFirst downloads the first matching archive, the reference
// selection for non-list invocations, and returns its destination path.
func (m *Manager) DownloadFirst(ctx context.Context) (string, error) {
	if len(m.items) == 0 {
		return "", fmt.Errorf("%w for %s", ErrNoMatches, m.spec)
	}
	return m.DownloadItem(ctx, m.items[0])
}

// DownloadLatest downloads the highest-versioned matching archive and
// returns its destination path.
func (m *Manager) DownloadLatest(ctx context.Context) (string, error) {
	item, ok := m.LatestItem()
	if !ok {
		return "", fmt.Errorf("%w for %s", ErrNoMatches, m.spec)
	}
	return m.DownloadItem(ctx, item)
}

// DownloadItem downloads a single archive and returns its destination
// path.
func (m *Manager) DownloadItem(ctx context.Context, item model.SpecItem) (string, error) {
	m.prepareTotals(ctx, []model.SpecItem{item})
	return m.downloadItem(ctx, item)
}

// DownloadAll downloads every matching archive, bounding concurrency by
// the configured limit. Individual failures are reported through the
// progress callback and do not stop the remaining downloads.
func (m *Manager) DownloadAll(ctx context.Context) error {
	if len(m.items) == 0 {
		return fmt.Errorf("%w for %s", ErrNoMatches, m.spec)
	}

	m.prepareTotals(ctx, m.items)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.MaxConcurrentDownloads)

	for _, item := range m.items {
		g.Go(func() error {
			if _, err := m.downloadItem(ctx, item); err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error downloading %s: %v", item.Version, err), Level: LevelError})
			}
			return nil // Continue with other archives
		})
	}

	return g.Wait()
}

// prepareTotals resets the counters and sums the expected bytes for the
// upcoming downloads so UIs can show overall progress.
func (m *Manager) prepareTotals(ctx context.Context, targets []model.SpecItem) {
	atomic.StoreInt64(&m.receivedBytes, 0)
	atomic.StoreInt32(&m.downloadedFiles, 0)
	atomic.StoreInt32(&m.totalFiles, int32(len(targets)))

	var totalBytes int64
	for _, item := range targets {
		size, err := m.httpClient.GetFileSize(ctx, item.URL)
		if err == nil {
			totalBytes += size
		}
	}
	atomic.StoreInt64(&m.totalBytes, totalBytes)
}

func (m *Manager) downloadItem(ctx context.Context, item model.SpecItem) (string, error) {
	if err := ioutils.EnsureDir(m.settings.DownloadsPath); err != nil {
		return "", fmt.Errorf("creating downloads directory: %w", err)
	}

	destPath := filepath.Join(m.settings.DownloadsPath, ioutils.FileNameFromURL(item.URL))

	// Keep an existing file whose size is close enough to the remote one.
	if info, err := os.Stat(destPath); err == nil {
		expectedSize, _ := m.httpClient.GetFileSize(ctx, item.URL)
		if expectedSize > 0 {
			sizeDiff := float64(info.Size()-expectedSize) / float64(expectedSize)
			if math.Abs(sizeDiff) <= m.settings.AllowedFileSizeDifference {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping existing: %s", filepath.Base(destPath)), Level: LevelVerbose})
				atomic.AddInt32(&m.downloadedFiles, 1)
				return destPath, nil
			}
		}
	}

	var lastWritten int64
	onProgress := func(written, total int64) {
		atomic.AddInt64(&m.receivedBytes, written-lastWritten)
		lastWritten = written
	}

	var err error
	for tries := 0; tries < m.settings.DownloadMaxRetries; tries++ {
		err = m.httpClient.DownloadFile(ctx, item.URL, destPath, onProgress)
		if err == nil {
			break
		}
		if ctx.Err() != nil {
			return "", err
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Retry %d/%d for %s", tries+1, m.settings.DownloadMaxRetries, item.Version), Level: LevelWarning})
		m.waitForRetry(ctx, tries)
	}

	if err != nil {
		return "", err
	}

	atomic.AddInt32(&m.downloadedFiles, 1)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Downloaded: %s", filepath.Base(destPath)), Level: LevelSuccess})
	return destPath, nil
}

func (m *Manager) waitForRetry(ctx context.Context, tries int) {
	cooldown := m.settings.DownloadRetryCooldown * math.Pow(m.settings.DownloadRetryExponent, float64(tries))
	select {
	case <-ctx.Done():
	case <-time.After(time.Duration(cooldown * float64(time.Second))):
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
