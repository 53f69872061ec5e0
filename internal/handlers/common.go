package handlers

import (
	"encoding/json"
	"net/http"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/edumela/admin-api/internal/customerror"
	"github.com/edumela/admin-api/internal/middlewares/logger"
)

func decodeAndValidate(w http.ResponseWriter, r *http.Request, validate *validatorv10.Validate, dst interface{}) bool {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "can't parse body", http.StatusBadRequest)
		logger.Log.Error(err.Error())
		return false
	}

	if err := validate.Struct(dst); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
	}
}

// writeRepositoryError maps repository errors onto HTTP codes via the
// CustomError contract; anything else becomes a 500.
func writeRepositoryError(w http.ResponseWriter, err error) {
	if customErr, ok := err.(customerror.CustomError); ok {
		http.Error(w, customErr.Error(), customErr.GetHTTPCode())
		logger.Log.Warn(customErr.Error())
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
	logger.Log.Error(err.Error())
}
