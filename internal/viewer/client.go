package viewer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/bryanwahyu/medscan/internal/domain/analysis"
)

// ServerError is a non-200 reply from the relay. Error returns the message
// the server put in its {"error": ...} body.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string { return e.Message }

// HTTPClient posts files to a running relay.
type HTTPClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// Analyze uploads f under the "image" field of a multipart form.
func (c *HTTPClient) Analyze(ctx context.Context, f File) (analysis.Result, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, f.Name))
	if f.MIMEType != "" {
		h.Set("Content-Type", f.MIMEType)
	}
	part, err := mw.CreatePart(h)
	if err != nil {
		return analysis.Result{}, err
	}
	if _, err := part.Write(f.Content); err != nil {
		return analysis.Result{}, err
	}
	if err := mw.Close(); err != nil {
		return analysis.Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/analyze", &body)
	if err != nil {
		return analysis.Result{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return analysis.Result{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error == "" {
			e.Error = fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)
		}
		return analysis.Result{}, &ServerError{Status: resp.StatusCode, Message: e.Error}
	}

	var res analysis.Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return analysis.Result{}, fmt.Errorf("decode response: %w", err)
	}
	return res, nil
}
