package reload

import (
	"bytes"
	_ "embed"
	"mime"
	"net/http"
	"strings"
)

// Paths served by the development server itself.
const (
	PathPrefix  = "/__wpbuild/"
	PathSocket  = PathPrefix + "ws"
	PathClient  = PathPrefix + "client.js"
	PathMetrics = PathPrefix + "metrics"
)

//go:embed client.js
var clientScript []byte

var scriptTag = []byte(`<script src="` + PathClient + `" async></script>`)

// injectScript inserts the client script tag before the last </body>, or
// appends it when the document has none.
func injectScript(html []byte) []byte {
	idx := bytes.LastIndex(bytes.ToLower(html), []byte("</body>"))
	if idx < 0 {
		return append(append(make([]byte, 0, len(html)+len(scriptTag)), html...), scriptTag...)
	}
	out := make([]byte, 0, len(html)+len(scriptTag))
	out = append(out, html[:idx]...)
	out = append(out, scriptTag...)
	return append(out, html[idx:]...)
}

func isHTML(contentType string) bool {
	media, _, err := mime.ParseMediaType(contentType)
	return err == nil && strings.EqualFold(media, "text/html")
}

func serveClient(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(clientScript)
}
