package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

// dateLayout is the fixed calendar rendering used for every date in a
// response body, e.g. "Mon Jan 02 2006". Request dates are parsed
// separately and accept ISO-8601 among other forms.
const dateLayout = "Mon Jan 02 2006"

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes the uniform {"error": message} failure body.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// formPayload is implemented by request payloads that can also be populated
// from a urlencoded form body.
type formPayload interface {
	fromForm(url.Values)
}

// decodeBody populates dst from either a JSON or urlencoded request body.
func decodeBody(r *http.Request, dst formPayload) error {
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return json.NewDecoder(r.Body).Decode(dst)
	}
	if err := r.ParseForm(); err != nil {
		return err
	}
	dst.fromForm(r.PostForm)
	return nil
}

// flexString accepts both JSON strings and bare scalar tokens, so a numeric
// duration works whether the client sends "30" or 30.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	*s = flexString(b)
	return nil
}
