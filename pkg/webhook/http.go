package webhook

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// ServeHTTP adapts Handle to the gateway's HTTP callback shape:
//
//	GET /?method=pay&params[account]=...&params[signature]=...
//
// The response is always HTTP 200 with the JSON-serialized Outcome, so the
// gateway gets a well-formed body even for rejected requests.
//
// The source IP is taken from the connection's remote address, not from
// forwarding headers; terminate any reverse proxy in a way that preserves the
// client address, or call Handle directly with the real source.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	cb := Callback{
		Method:   query.Get("method"),
		Params:   map[string]string{},
		SourceIP: remoteIP(r),
	}
	for key, values := range query {
		name, ok := paramName(key)
		if !ok || len(values) == 0 {
			continue
		}
		cb.Params[name] = values[0]
	}

	out := h.Handle(cb)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		zap.L().Error("write callback response", zap.Error(err))
	}
}

// paramName extracts "account" from a "params[account]" query key.
func paramName(key string) (string, bool) {
	if !strings.HasPrefix(key, "params[") || !strings.HasSuffix(key, "]") {
		return "", false
	}
	name := key[len("params[") : len(key)-1]
	return name, name != ""
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
