package myhttpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/MarcGrol/ndaonboarding/lib/mylog"
)

const (
	timeout = 15 * time.Second
)

//go:generate mockgen -source=httpClient.go -package myhttpclient -destination httpClient_mock.go HTTPSender
type HTTPSender interface {
	Send(c context.Context, method string, url string, accessToken string, body []byte) (int, []byte, error)
}

type jsonHTTPClient struct {
	client *http.Client
	logger mylog.Logger
}

// NewJSONHTTPClient returns a sender for json apis that authenticate with a bearer token.
func NewJSONHTTPClient(client *http.Client) HTTPSender {
	if client == nil {
		client = &http.Client{
			Timeout: timeout,
		}
	}
	return &jsonHTTPClient{
		client: client,
		logger: mylog.New("httpclient"),
	}
}

func (hc jsonHTTPClient) Send(c context.Context, method string, url string, accessToken string, body []byte) (int, []byte, error) {
	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(c, method, url, reqBody)
	if err != nil {
		return 0, []byte{}, fmt.Errorf("error creating http request for %s %s: %s", method, url, err)
	}

	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")
	if accessToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+accessToken)
	}

	hc.logger.Log(c, "", mylog.SeverityDebug, "HTTP request: %s %s", method, url)

	httpResp, err := hc.client.Do(httpReq)
	if err != nil {
		return 0, []byte{}, fmt.Errorf("error sending %s %s: %s", method, url, err)
	}
	defer httpResp.Body.Close()

	respDump, err := httputil.DumpResponse(httpResp, false)
	if err == nil {
		hc.logger.Log(c, "", mylog.SeverityDebug, "HTTP-resp:\n%s", string(respDump))
	}

	respPayload, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return 0, []byte{}, fmt.Errorf("error reading response %s %s: %s", method, url, err)
	}

	hc.logger.Log(c, "", mylog.SeverityDebug, "HTTP resp: %d", httpResp.StatusCode)

	return httpResp.StatusCode, respPayload, nil
}
