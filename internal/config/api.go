package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
)

// ConfigAPI provides HTTP endpoints to view, validate and reload configuration
type ConfigAPI struct {
	cfg    *Config
	mu     sync.RWMutex
	router *mux.Router
	loader func() (*Config, error)
}

func NewConfigAPI(cfg *Config) *ConfigAPI {
	api := &ConfigAPI{
		cfg:    cfg,
		router: mux.NewRouter(),
		loader: Load,
	}
	api.routes()
	return api
}

func (api *ConfigAPI) Router() *mux.Router {
	return api.router
}

// Snapshot returns a copy of the live configuration. Handlers read
// per-request settings through it so a reload takes effect immediately.
func (api *ConfigAPI) Snapshot() Config {
	api.mu.RLock()
	defer api.mu.RUnlock()
	return *api.cfg
}

// Register mounts the config routes on an outer router.
func (api *ConfigAPI) Register(r *mux.Router) {
	r.HandleFunc("/configure", api.getConfig).Methods("GET")
	r.HandleFunc("/configure/", api.getConfig).Methods("GET")
	r.HandleFunc("/configure/reload", api.reloadConfig).Methods("POST")
	r.HandleFunc("/configure/validate", api.validateConfig).Methods("POST")
	r.HandleFunc("/configure/{section}", api.getSection).Methods("GET")
}

func (api *ConfigAPI) routes() {
	api.Register(api.router)
}

func (api *ConfigAPI) getConfig(w http.ResponseWriter, r *http.Request) {
	api.mu.RLock()
	defer api.mu.RUnlock()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(api.safeConfigCopy())
}

func (api *ConfigAPI) getSection(w http.ResponseWriter, r *http.Request) {
	api.mu.RLock()
	defer api.mu.RUnlock()

	safe := api.safeConfigCopy()
	section := mux.Vars(r)["section"]
	var sectionCfg interface{}

	switch section {
	case "server":
		sectionCfg = safe.Server
	case "auth":
		sectionCfg = safe.Auth
	case "log":
		sectionCfg = safe.Log
	case "storage":
		sectionCfg = safe.Storage
	case "history":
		sectionCfg = safe.History
	case "report":
		sectionCfg = safe.Report
	default:
		http.Error(w, fmt.Sprintf("unknown config section: %s", section), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sectionCfg)
}

// reloadConfig re-reads config.yaml and the environment. Settings consumed at
// startup (listen address, storage paths, prune schedule) need a restart.
func (api *ConfigAPI) reloadConfig(w http.ResponseWriter, r *http.Request) {
	api.mu.Lock()
	defer api.mu.Unlock()
	reloadedCfg, err := api.loader()
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to reload config: %v", err), http.StatusInternalServerError)
		return
	}
	if err := reloadedCfg.Validate(); err != nil {
		http.Error(w, fmt.Sprintf("invalid configuration: %v", err), http.StatusBadRequest)
		return
	}
	*api.cfg = *reloadedCfg
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(api.safeConfigCopy())
}

func (api *ConfigAPI) validateConfig(w http.ResponseWriter, r *http.Request) {
	var cfg Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, fmt.Sprintf("invalid config payload: %v", err), http.StatusBadRequest)
		return
	}
	if err := cfg.Validate(); err != nil {
		http.Error(w, fmt.Sprintf("invalid configuration: %v", err), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"valid": true, "message": "configuration is valid"})
}

func (api *ConfigAPI) safeConfigCopy() Config {
	copyCfg := *api.cfg
	if copyCfg.Auth.Token != "" {
		copyCfg.Auth.Token = "***"
	}
	if copyCfg.Storage.Bucket.SecretKey != "" {
		copyCfg.Storage.Bucket.SecretKey = "***"
	}
	return copyCfg
}
