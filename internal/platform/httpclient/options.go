package httpclient

import (
	"net/http"
	"strings"
)

type requestOptions struct {
	method      string
	autoRaise   bool
	addProxies  bool
	whitelist   []int
	headers     http.Header
	body        []byte
	contentType string
	validator   func(any) bool
}

// Option tunes a single request.
type Option func(*requestOptions)

func defaultRequestOptions() requestOptions {
	return requestOptions{
		method:     http.MethodGet,
		autoRaise:  true,
		addProxies: true,
		headers:    make(http.Header),
	}
}

func WithMethod(method string) Option {
	return func(o *requestOptions) {
		if m := strings.ToUpper(strings.TrimSpace(method)); m != "" {
			o.method = m
		}
	}
}

// WithAutoRaise controls whether a 4xx/5xx status is treated as a failure.
func WithAutoRaise(enabled bool) Option {
	return func(o *requestOptions) { o.autoRaise = enabled }
}

// WithWhitelist lists statuses accepted even when auto-raise is on.
func WithWhitelist(codes ...int) Option {
	return func(o *requestOptions) { o.whitelist = append(o.whitelist, codes...) }
}

// WithProxies toggles the configured proxy and the fixed User-Agent header.
func WithProxies(enabled bool) Option {
	return func(o *requestOptions) { o.addProxies = enabled }
}

func WithHeader(key, value string) Option {
	return func(o *requestOptions) { o.headers.Set(key, value) }
}

func WithBody(contentType string, body []byte) Option {
	return func(o *requestOptions) {
		o.contentType = contentType
		o.body = body
	}
}

// WithValidator rejects decoded JSON documents for which fn returns false.
func WithValidator(fn func(any) bool) Option {
	return func(o *requestOptions) { o.validator = fn }
}

func (o requestOptions) whitelisted(code int) bool {
	for _, item := range o.whitelist {
		if item == code {
			return true
		}
	}
	return false
}
