package cv

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"termcv/internal/jsonutil"
)

// fetchTimeout bounds the one-time startup fetch; there is no retry.
const fetchTimeout = 10 * time.Second

// Load reads a CV document from a local file path or an http(s) URL.
// The document is fetched exactly once; callers surface errors as a
// visible fallback message and continue with empty panels.
func Load(source string) (*Document, error) {
	data, err := read(source)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := jsonutil.UnmarshalWithContext(data, &doc, "parse cv "+source); err != nil {
		return nil, err
	}
	return &doc, nil
}

func read(source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		client := &http.Client{Timeout: fetchTimeout}
		resp, err := client.Get(source)
		if err != nil {
			return nil, fmt.Errorf("fetch cv: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch cv: unexpected status %s", resp.Status)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("fetch cv: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read cv: %w", err)
	}
	return data, nil
}
