package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"vastgoed-sync/internal/pkg/apperrors"
)

// SendJSON performs one marketplace call. body may be nil. A non-2xx answer
// is returned as a Result together with a network error.
func SendJSON(ctx context.Context, client *http.Client, method, url string, headers map[string]string, body any) (Result, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return Result{}, apperrors.Internal("encoding marketplace payload", err)
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return Result{}, apperrors.Internal("creating marketplace request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return Result{}, apperrors.Network(method+" "+url, err)
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	res := Result{Status: resp.StatusCode, Body: string(respBody)}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return res, apperrors.Network(fmt.Sprintf("%s %s: status %d: %s", method, url, resp.StatusCode, res.Body), nil)
	}
	return res, nil
}
