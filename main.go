// Taskboard's serving shell: it delivers the WebAssembly client and
// forwards /api requests to the remote REST API. It holds no state and
// implements no API logic of its own.
package main

import (
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

//go:embed static/*
var staticFS embed.FS

func main() {
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}

	upstream, err := url.Parse(cfg.APIURL)
	if err != nil {
		slog.Error("parse api url", "url", cfg.APIURL, "err", err)
		os.Exit(1)
	}
	proxy := &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(upstream)
			r.SetXForwarded()
		},
	}

	mux := http.NewServeMux()

	staticSub, _ := fs.Sub(staticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))

	mux.Handle("/api/", proxy)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mux.Handle("/", &app.Handler{
		Name:        "Taskboard",
		ShortName:   "Taskboard",
		Description: "Project and task management dashboard.",
		Styles:      []string{"/static/styles.css"},
	})

	slog.Info("taskboard running", "addr", cfg.Addr, "api", cfg.APIURL)
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
