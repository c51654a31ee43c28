package downloadmgr

import (
	"context"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/minepkg/mclaunch/internals/merrors"
)

// DownloadManager includes a queue to download. Items are downloaded one after another
type DownloadManager struct {
	queue  []*Item
	root   string
	client *http.Client
	Logger *log.Logger
	// OnProgress is called after every item
	OnProgress func(done int, total int)
}

// Failure is a download that did not work
type Failure struct {
	Item *Item
	Err  error
}

// Report is the result of a finished queue
type Report struct {
	// Changed is the number of files that were (re)written
	Changed  int
	Failures []Failure
}

// Add adds a new item to the queue
func (d *DownloadManager) Add(i *Item) {
	d.queue = append(d.queue, i)
}

// Len returns the number of queued items
func (d *DownloadManager) Len() int {
	return len(d.queue)
}

// Start downloads every queued item in order and empties the queue.
// Failing items are collected in the report. Only path escapes and
// context cancellation stop the queue.
func (d *DownloadManager) Start(ctx context.Context) (*Report, error) {
	report := &Report{}
	queue := d.queue
	d.queue = nil

	for i, item := range queue {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		changed, err := Fetch(ctx, d.client, item, d.root)
		switch {
		case errors.Is(err, merrors.ErrPathEscape):
			return report, err
		case err != nil:
			d.Logger.Warn("download failed", "url", item.URL, "err", err)
			report.Failures = append(report.Failures, Failure{Item: item, Err: err})
		case changed:
			d.Logger.Debug("downloaded", "target", item.Target)
			report.Changed++
		}

		if d.OnProgress != nil {
			d.OnProgress(i+1, len(queue))
		}
	}
	return report, nil
}

// New creates a new downloadmgr. All targets have to be inside of root
func New(root string, client *http.Client) *DownloadManager {
	return &DownloadManager{
		root:   root,
		client: client,
		Logger: log.Default().WithPrefix("downloadmgr"),
	}
}
