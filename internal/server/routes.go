package server

import (
	"net/http"
	"os"
)

// NewMux routes /ws to the hub, /proto/ to the schema directory and / to
// staticDir. Directories that do not exist are not mounted.
func NewMux(h *Hub, staticDir, protoDir string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/ws", h.Handler())

	if isDir(protoDir) {
		mux.Handle("/proto/", http.StripPrefix("/proto/", http.FileServer(http.Dir(protoDir))))
	}
	if isDir(staticDir) {
		mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	} else {
		h.logger.Info("static directory not found, serving websocket feed only", "dir", staticDir)
	}
	return mux
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
