package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
)

// readFields turns a JSON object or a submitted form into the flat field
// map the renderer takes. Repeated form keys keep their first value.
func readFields(w http.ResponseWriter, r *http.Request, maxBytes int64) (map[string]any, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	mediaType := ""
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return nil, fmt.Errorf("bad content type: %w", err)
		}
		mediaType = mt
	}

	switch mediaType {
	case "application/json":
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		var fields map[string]any
		if err := dec.Decode(&fields); err != nil {
			return nil, fmt.Errorf("decoding json body: %w", err)
		}
		if fields == nil {
			return nil, errors.New("json body must be an object")
		}
		return fields, nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			return nil, fmt.Errorf("parsing form: %w", err)
		}
	case "application/x-www-form-urlencoded", "":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parsing form: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported content type %q", mediaType)
	}

	fields := make(map[string]any, len(r.PostForm))
	for k, v := range r.PostForm {
		if len(v) > 0 {
			fields[k] = v[0]
		}
	}
	return fields, nil
}
