package router

import (
	"encoding/json"
	"net/http"
)

type CustomerRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

type TransactionRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

func New(
	customerController CustomerRouteRegistrar,
	transactionController TransactionRouteRegistrar,
) *http.ServeMux {
	mux := http.NewServeMux()
	registerHealthRoutes(mux)

	if customerController != nil {
		customerController.RegisterRoutes(mux)
	}
	if transactionController != nil {
		transactionController.RegisterRoutes(mux)
	}

	return mux
}

func registerHealthRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/{$}", func(w http.ResponseWriter, r *http.Request) {
		writeHealthJSON(w, http.StatusOK, map[string]string{"message": "Server is running!"})
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeHealthJSON(w, http.StatusOK, map[string]string{"status": "OK"})
	})
}

func writeHealthJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
