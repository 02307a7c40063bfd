package preview

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"
)

// reloadSnippet connects the page to the livereload socket.
const reloadSnippet = `<script>(function(){var ws=new WebSocket((location.protocol==="https:"?"wss://":"ws://")+location.host+"/livereload");ws.onmessage=function(e){var m=JSON.parse(e.data);if(m.type==="reload")location.reload();};})();</script>`

// injectReload buffers HTML responses and appends the livereload client
// before the closing body tag. Non-HTML responses pass through untouched.
func injectReload(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := &bufferingWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(buf, r)

		body := buf.body.Bytes()
		if strings.Contains(buf.Header().Get("Content-Type"), "text/html") {
			body = appendSnippet(body)
		}

		buf.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.WriteHeader(buf.status)
		w.Write(body)
	})
}

// appendSnippet inserts the snippet before </body>, or at the end when the
// page has no closing body tag.
func appendSnippet(body []byte) []byte {
	idx := bytes.LastIndex(body, []byte("</body>"))
	if idx < 0 {
		return append(body, []byte(reloadSnippet)...)
	}
	out := make([]byte, 0, len(body)+len(reloadSnippet))
	out = append(out, body[:idx]...)
	out = append(out, []byte(reloadSnippet)...)
	out = append(out, body[idx:]...)
	return out
}

// bufferingWriter captures a response so the body can be rewritten before
// it reaches the client.
type bufferingWriter struct {
	http.ResponseWriter
	body   bytes.Buffer
	status int
}

func (w *bufferingWriter) WriteHeader(status int) {
	w.status = status
}

func (w *bufferingWriter) Write(p []byte) (int, error) {
	return w.body.Write(p)
}
