package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TokenSource supplies the bearer token for protected calls. It is read
// once per request.
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL string
	client  *http.Client
	tokens  TokenSource
	logger  *log.Logger
}

// NewClient builds a client for the backend rooted at baseURL
// (e.g. http://localhost:8000/api). A zero timeout leaves requests unbounded.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, logger *log.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:  &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  logger,
	}
}

// SetTransport replaces the underlying round tripper.
func (c *Client) SetTransport(rt http.RoundTripper) {
	c.client.Transport = rt
}

type filePart struct {
	field    string
	filename string
	content  []byte
}

type multipartBody struct {
	fields [][2]string
	files  []filePart
}

func (m *multipartBody) add(field, value string) {
	m.fields = append(m.fields, [2]string{field, value})
}

func (m *multipartBody) attach(field, filename string, content []byte) {
	m.files = append(m.files, filePart{field: field, filename: filename, content: content})
}

type call struct {
	method string
	path   string
	query  url.Values
	json   any
	form   *multipartBody
	auth   bool
}

func (c *Client) do(ctx context.Context, cl call, out any) error {
	if c == nil {
		return errors.New("nil api client")
	}

	var token string
	if cl.auth {
		if c.tokens != nil {
			token = c.tokens.Token()
		}
		if token == "" {
			return ErrNoSession
		}
	}

	endpoint := c.baseURL + cl.path
	if len(cl.query) > 0 {
		endpoint += "?" + cl.query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case cl.form != nil:
		buf, ct, err := encodeMultipart(cl.form)
		if err != nil {
			return err
		}
		body, contentType = buf, ct
	case cl.json != nil:
		b, err := json.Marshal(cl.json)
		if err != nil {
			return err
		}
		body, contentType = bytes.NewReader(b), "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, endpoint, body)
	if err != nil {
		return err
	}
	rid := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", rid)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logf("[API] %s %s error rid=%s err=%v", cl.method, cl.path, rid, err)
		return err
	}
	defer resp.Body.Close()
	c.logf("[API] %s %s status=%d latency=%s rid=%s", cl.method, cl.path, resp.StatusCode, time.Since(start), rid)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &Error{StatusCode: resp.StatusCode, Detail: parseDetail(rb)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", cl.method, cl.path, err)
	}
	return nil
}

func encodeMultipart(m *multipartBody) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, f := range m.fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", err
		}
	}
	for _, f := range m.files {
		part, err := w.CreateFormFile(f.field, f.filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(f.content); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

func (c *Client) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}
