package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"vacstore/internal/common"
)

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, err error) {
	code := common.CodeOf(err)
	message := "internal error"
	var appErr *common.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	JSON(w, statusFor(code), errorBody{Error: string(code), Message: message})
}

func statusFor(code common.Code) int {
	switch code {
	case common.CodeValidation:
		return http.StatusBadRequest
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeConnection, common.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
