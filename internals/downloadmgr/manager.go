package downloadmgr

import (
	"context"
)

// Downloader allows downloadmgr to download the file
type Downloader interface {
	Download(ctx context.Context) error
}

// DownloadManager includes a queue to download
type DownloadManager struct {
	queue []Downloader
	// OnProgress is called with the queue completion in percent
	OnProgress func(p int)
}

// New creates a new downloadmgr
func New() *DownloadManager {
	return &DownloadManager{}
}

// Add adds a new item to the queue
func (d *DownloadManager) Add(i Downloader) {
	d.queue = append(d.queue, i)
}

// Len returns the number of queued items
func (d *DownloadManager) Len() int {
	return len(d.queue)
}

// Start starts the download queue. 16 items are downloaded in parallel.
// The first error stops the whole queue.
func (d *DownloadManager) Start(ctx context.Context) error {
	if d.queue == nil {
		return nil
	}

	sem := make(chan int, 16)
	// buffered so workers can finish (and exit) even when an earlier
	// error already made Start return
	errc := make(chan error, len(d.queue))

	go func() {
		for _, item := range d.queue {
			sem <- 1
			go func(item Downloader) {
				errc <- item.Download(ctx)
				<-sem
			}(item)
		}
	}()

	for i := 0; i < len(d.queue); i++ {
		if err := <-errc; err != nil {
			return err
		}
		if d.OnProgress != nil {
			d.OnProgress(int(float32(i+1) / float32(len(d.queue)) * 100))
		}
	}
	return nil
}
