package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every outbound request made through [HTTPClient].
const UserAgent = "helios-keeper"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://www.lightclientdata.org/eth/v1/beacon/light_client/finality_update")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent resty client carrying the
// helios-keeper user agent. Each call returns a client with its own
// configuration and connection pool.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", UserAgent)

	return &HTTPClient{Client: client}
}
