package cms_store

import (
	"booking-service/internal/pkg/cms_dto"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

// Requester is the shared transport for every collection client. All calls go
// through one outbound rate limiter so a burst of availability requests cannot
// flood the CMS.
type Requester struct {
	BaseURL    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
}

func NewRequester(baseURL string, requestsPerSecond int) *Requester {
	return &Requester{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
		Limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
	}
}

type errorBody struct {
	Message string `json:"message"`
}

func (r *Requester) QueryRows(ctx context.Context, instanceID, collection string, query cms_dto.Query) ([]cms_dto.Row, error) {
	body, err := json.Marshal(query)
	if err != nil {
		return nil, exceptions.ErrCmsQueryRows(err, collection)
	}

	url := fmt.Sprintf("%s/%s/cms/%s/%s/query", r.BaseURL, instanceID, constvars.CollectionNamespace, collection)
	resp, err := r.do(ctx, constvars.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrCmsQueryRows(readErrorBody(resp), collection)
	}

	var result cms_dto.QueryResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, collection)
	}
	return result.Items, nil
}

func (r *Requester) GetRowByID(ctx context.Context, instanceID, collection, rowID string) (*cms_dto.Row, error) {
	url := fmt.Sprintf("%s/%s/cms/%s/%s/rows/%s", r.BaseURL, instanceID, constvars.CollectionNamespace, collection, rowID)
	resp, err := r.do(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return nil, exceptions.ErrCmsRowNotFound(readErrorBody(resp), collection, rowID)
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrCmsGetRow(readErrorBody(resp), collection)
	}

	var row cms_dto.Row
	if err := json.NewDecoder(resp.Body).Decode(&row); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, collection)
	}
	return &row, nil
}

func (r *Requester) ImportRow(ctx context.Context, instanceID, collection string, fields map[string]cms_dto.Field) error {
	body, err := json.Marshal(cms_dto.ImportRequest{Fields: fields})
	if err != nil {
		return exceptions.ErrCmsImportRow(err, collection)
	}

	url := fmt.Sprintf("%s/%s/cms/%s/%s/import", r.BaseURL, instanceID, constvars.CollectionNamespace, collection)
	resp, err := r.do(ctx, constvars.MethodPost, url, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return exceptions.ErrCmsImportRow(readErrorBody(resp), collection)
	}
	return nil
}

func (r *Requester) do(ctx context.Context, method, url string, body []byte) (*http.Response, error) {
	if err := r.Limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	return resp, nil
}

func readErrorBody(resp *http.Response) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	var parsed errorBody
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Message != "" {
		return fmt.Errorf("status %d: %s", resp.StatusCode, parsed.Message)
	}
	return fmt.Errorf("status %d: %s", resp.StatusCode, string(raw))
}

// TextField reads a required text field of a row.
func TextField(row cms_dto.Row, name string) (string, error) {
	field, ok := row.Fields[name]
	if !ok {
		return "", exceptions.ErrRowFieldMissing(nil, name)
	}
	value, err := field.AsText()
	if err != nil {
		return "", exceptions.ErrRowFieldType(err, name)
	}
	return value, nil
}

// OptionalTextField reads a text field, returning "" when absent.
func OptionalTextField(row cms_dto.Row, name string) (string, error) {
	field, ok := row.Fields[name]
	if !ok {
		return "", nil
	}
	value, err := field.AsText()
	if err != nil {
		return "", exceptions.ErrRowFieldType(err, name)
	}
	return value, nil
}

// NumberField reads a required numeric field of a row.
func NumberField(row cms_dto.Row, name string) (float64, error) {
	field, ok := row.Fields[name]
	if !ok {
		return 0, exceptions.ErrRowFieldMissing(nil, name)
	}
	value, err := field.AsNumber()
	if err != nil {
		return 0, exceptions.ErrRowFieldType(err, name)
	}
	return value, nil
}
