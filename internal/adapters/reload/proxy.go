package reload

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"
	"strings"

	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

type proxyHostKey struct{}

// parseProjectURL accepts a bare host such as "mysite.local" as well as a
// full URL.
func parseProjectURL(raw string) (*url.URL, error) {
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	target, err := url.Parse(raw)
	if err == nil && target.Host == "" {
		err = zerr.New("missing host")
	}
	if err != nil {
		return nil, domain.Classify(domain.ErrConfig,
			zerr.With(zerr.Wrap(err, "invalid projectURL"), "projectURL", raw))
	}
	return target, nil
}

// newProxy forwards requests to target. HTML responses get the client
// script and have links to target rewritten to the proxy.
func newProxy(target *url.URL) *httputil.ReverseProxy {
	targetOrigin := target.Scheme + "://" + target.Host

	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
			pr.Out.Host = target.Host
			// identity responses can be rewritten in place
			pr.Out.Header.Del("Accept-Encoding")
			pr.Out = pr.Out.WithContext(context.WithValue(pr.Out.Context(), proxyHostKey{}, pr.In.Host))
		},
		ModifyResponse: func(resp *http.Response) error {
			proxyHost, _ := resp.Request.Context().Value(proxyHostKey{}).(string)
			proxyOrigin := "http://" + proxyHost

			if loc := resp.Header.Get("Location"); strings.HasPrefix(loc, targetOrigin) {
				resp.Header.Set("Location", proxyOrigin+strings.TrimPrefix(loc, targetOrigin))
			}
			if !isHTML(resp.Header.Get("Content-Type")) || resp.Header.Get("Content-Encoding") != "" {
				return nil
			}

			body, err := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			if err != nil {
				return zerr.Wrap(err, "failed to read proxied page")
			}
			body = rewriteOrigin(body, targetOrigin, proxyOrigin)
			body = injectScript(body)

			resp.Body = io.NopCloser(bytes.NewReader(body))
			resp.ContentLength = int64(len(body))
			resp.Header.Set("Content-Length", strconv.Itoa(len(body)))
			return nil
		},
	}
}

// rewriteOrigin replaces absolute links to from, in plain and JSON escaped
// form, with links to to.
func rewriteOrigin(body []byte, from, to string) []byte {
	body = bytes.ReplaceAll(body, []byte(from), []byte(to))
	escape := func(s string) []byte { return []byte(strings.ReplaceAll(s, "/", `\/`)) }
	return bytes.ReplaceAll(body, escape(from), escape(to))
}
