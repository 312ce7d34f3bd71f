package http

import (
	"encoding/json"
	"net/http/httptest"
)

func decodeJSON(w *httptest.ResponseRecorder, v any) error {
	return json.Unmarshal(w.Body.Bytes(), v)
}
