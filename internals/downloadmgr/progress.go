package downloadmgr

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// FetchWithProgress downloads a single (usually large) file to target.
// onProgress is called with the completion in percent while the body is
// read. Servers that send no Content-Length produce no progress calls.
func FetchWithProgress(ctx context.Context, url string, target string, onProgress func(p int)) error {
	if err := os.MkdirAll(filepath.Dir(target), os.ModePerm); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}

	res, err := defaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("error while fetching %s: %w", url, err)
	}
	defer res.Body.Close()

	if res.StatusCode != 200 {
		return fmt.Errorf("invalid status code: %s from %s", res.Status, res.Request.URL)
	}

	dest, err := os.Create(target)
	if err != nil {
		return err
	}
	defer dest.Close()

	var body io.Reader = res.Body
	if res.ContentLength > 0 && onProgress != nil {
		body = &progressReader{r: res.Body, total: res.ContentLength, onProgress: onProgress}
	}

	if _, err := io.Copy(dest, body); err != nil {
		return err
	}
	return dest.Sync()
}

type progressReader struct {
	r          io.Reader
	total      int64
	read       int64
	lastPct    int
	onProgress func(p int)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.read += int64(n)

	pct := int(float64(p.read) / float64(p.total) * 100)
	if pct != p.lastPct {
		p.lastPct = pct
		p.onProgress(pct)
	}
	return n, err
}
