package utils

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
)

type ApiError struct {
	StatusCode int    `json:"-"`
	Msg        string `json:"error,omitempty"`
}

func (o *ApiError) Error() string {
	return strconv.Itoa(o.StatusCode) + ": " + o.Msg
}

func NewBadRequest(msg string) ApiError {
	return ApiError{http.StatusBadRequest, msg}
}

func NewUnauthorized(msg string) ApiError {
	return ApiError{http.StatusUnauthorized, msg}
}

func NewInternalServerError(msg string) ApiError {
	return ApiError{http.StatusInternalServerError, msg}
}

func JsonDecodeBody(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, dst)
}

func RenderResponse(w http.ResponseWriter, statusCode int, res interface{}) {
	w.Header().Set("Content-Type", "application/json")
	var body []byte
	if res != nil {
		var err error
		body, err = json.Marshal(res)
		if err != nil {
			ae := NewInternalServerError(err.Error())
			statusCode = ae.StatusCode
			body, err = json.Marshal(&ae)
			if err != nil {
				body = []byte(`{"error": "internal server error"}`)
			}
		}
	}
	w.WriteHeader(statusCode)
	if len(body) > 0 {
		w.Write(body)
	}
}

// AllowedContentTypes rejects request bodies whose media type is not in the
// allow list.
func AllowedContentTypes(next http.HandlerFunc, mediaTypes ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contentType := strings.TrimSpace(strings.Split(r.Header.Get("Content-Type"), ";")[0])
		for _, mt := range mediaTypes {
			if contentType == mt {
				next(w, r)
				return
			}
		}
		RenderResponse(w, http.StatusUnsupportedMediaType, nil)
	}
}
