package reload

import (
	"net/http"
	"os"
	"path"
	"strings"
)

// staticHandler serves dir. HTML documents get the client script.
func staticHandler(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean("/" + r.URL.Path)
		if strings.HasSuffix(r.URL.Path, "/") {
			name = path.Join(name, "index.html")
		}
		if ext := path.Ext(name); ext != ".html" && ext != ".htm" {
			files.ServeHTTP(w, r)
			return
		}

		root, err := os.OpenRoot(dir)
		if err != nil {
			http.Error(w, "site root unavailable", http.StatusInternalServerError)
			return
		}
		defer func() { _ = root.Close() }()

		page, err := root.ReadFile(strings.TrimPrefix(name, "/"))
		if err != nil {
			files.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(injectScript(page))
	})
}
