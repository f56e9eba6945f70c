package restrepos

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/shulehub/shule/core"
)

// Client is the shared HTTP transport behind every resource repository:
// bearer auth, JSON bodies, multipart uploads, binary downloads and the
// error taxonomy live here once.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  core.TokenSource
	log     core.Logger
}

func NewClient(conf *core.Config, tokens core.TokenSource, log core.Logger) (*Client, error) {
	if _, err := url.Parse(conf.APIBaseURL); err != nil {
		return nil, errors.Wrap(err, "parsing API base URL")
	}
	return &Client{
		baseURL: strings.TrimRight(conf.APIBaseURL, "/"),
		http:    &http.Client{Timeout: conf.HTTPTimeout},
		tokens:  tokens,
		log:     log,
	}, nil
}

func (c *Client) url(p string, params url.Values) string {
	u := c.baseURL + path.Join("/", p)
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// setHeaders attaches the bearer token (if any; an absent token is
// forwarded as-is since the server is the authority on 401s) and a
// request id for server-side correlation.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if tok := c.tokens.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
}

// do sends a JSON request and decodes the JSON response into out (when
// out is non-nil and the response has content).
func (c *Client) do(method, p string, params url.Values, body, out interface{}) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encoding request body")
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, c.url(p, params), rdr)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setHeaders(req)

	res, err := c.http.Do(req)
	if err != nil {
		c.log.Error("request failed", err)
		return &core.APIError{Message: "network failure", Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return c.apiError(res)
	}
	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decoding response")
	}
	return nil
}

func (c *Client) get(p string, params url.Values, out interface{}) error {
	return c.do(http.MethodGet, p, params, nil, out)
}

func (c *Client) post(p string, body, out interface{}) error {
	return c.do(http.MethodPost, p, nil, body, out)
}

func (c *Client) patch(p string, body, out interface{}) error {
	return c.do(http.MethodPatch, p, nil, body, out)
}

func (c *Client) del(p string) error {
	return c.do(http.MethodDelete, p, nil, nil, nil)
}

// envelope is the pagination envelope of every list endpoint.
type envelope struct {
	Results json.RawMessage `json:"results"`
	Count   int             `json:"count"`
}

// list fetches a paginated collection into out (a pointer to a slice)
// and returns the total count. All filtering is delegated to the server
// through the query string; there is no client-side fallback.
func (c *Client) list(p string, params url.Values, out interface{}) (int, error) {
	var env envelope
	if err := c.get(p, params, &env); err != nil {
		return 0, err
	}
	if env.Results != nil {
		if err := json.Unmarshal(env.Results, out); err != nil {
			return 0, errors.Wrap(err, "decoding results")
		}
	}
	return env.Count, nil
}

// upload sends files and fields as multipart form data instead of JSON.
func (c *Client) upload(p string, fields map[string]string, uploads map[string]core.Upload, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return errors.Wrap(err, "writing form field")
		}
	}
	for field, up := range uploads {
		fw, err := w.CreateFormFile(field, up.Name)
		if err != nil {
			return errors.Wrap(err, "creating form file")
		}
		if _, err := io.Copy(fw, up.Content); err != nil {
			return errors.Wrap(err, "copying file content")
		}
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "closing multipart writer")
	}

	req, err := http.NewRequest(http.MethodPost, c.url(p, nil), &buf)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	c.setHeaders(req)

	res, err := c.http.Do(req)
	if err != nil {
		c.log.Error("upload failed", err)
		return &core.APIError{Message: "network failure", Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return c.apiError(res)
	}
	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decoding response")
	}
	return nil
}

// download fetches an opaque binary response (exports, attachment
// downloads); it never goes through the JSON parser.
func (c *Client) download(p string, params url.Values) (core.File, error) {
	req, err := http.NewRequest(http.MethodGet, c.url(p, params), nil)
	if err != nil {
		return core.File{}, errors.Wrap(err, "building request")
	}
	c.setHeaders(req)
	req.Header.Set("Accept", "*/*")

	res, err := c.http.Do(req)
	if err != nil {
		c.log.Error("download failed", err)
		return core.File{}, &core.APIError{Message: "network failure", Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return core.File{}, c.apiError(res)
	}
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return core.File{}, errors.Wrap(err, "reading file content")
	}

	f := core.File{
		ContentType: res.Header.Get("Content-Type"),
		Data:        data,
	}
	if cd := res.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			f.Name = params["filename"]
		}
	}
	return f, nil
}

// apiError maps a non-2xx response onto the error taxonomy: a 400 with
// a field->message body becomes a *core.ValidationError (surfaced inline
// next to inputs); everything else becomes a *core.APIError (surfaced as
// a banner with an explicit retry control, never retried automatically).
func (c *Client) apiError(res *http.Response) error {
	b, _ := io.ReadAll(res.Body)

	if res.StatusCode == http.StatusBadRequest {
		var flds map[string]string
		if err := json.Unmarshal(b, &flds); err == nil && len(flds) > 0 {
			if msg, ok := flds["error"]; ok && len(flds) == 1 {
				return core.NewAPIError(res.StatusCode, msg)
			}
			fldErrs := make([]core.FieldError, 0, len(flds))
			for f, m := range flds {
				fldErrs = append(fldErrs, core.FieldError{Field: f, Error: m})
			}
			return core.NewValidationError(nil, fldErrs...)
		}
	}

	var body struct {
		Error string `json:"error"`
	}
	msg := http.StatusText(res.StatusCode)
	if err := json.Unmarshal(b, &body); err == nil && body.Error != "" {
		msg = body.Error
	}
	apiErr := core.NewAPIError(res.StatusCode, msg)
	c.log.Error("api error", apiErr)
	return apiErr
}
