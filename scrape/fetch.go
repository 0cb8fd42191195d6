package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// fetchPage downloads the specification document from url.
func fetchPage(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Source: url, Err: err}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{Source: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Source: url, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}
	page, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Source: url, Err: err}
	}
	return page, nil
}

// readPage reads a local copy of the specification document.
func readPage(path string) ([]byte, error) {
	page, err := os.ReadFile(path)
	if err != nil {
		return nil, &FetchError{Source: path, Err: err}
	}
	return page, nil
}
