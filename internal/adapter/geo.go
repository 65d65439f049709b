package adapter

import (
	"context"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/coach-courier/internal/config"
	"github.com/MKhiriev/coach-courier/internal/logger"
	"github.com/MKhiriev/coach-courier/internal/utils"
	"github.com/MKhiriev/coach-courier/models"
)

// defaultGeoTimeout bounds a single lookup call when no timeout is
// configured. Lookups that exceed it degrade to an unknown location.
const defaultGeoTimeout = 3 * time.Second

type geoAdapter struct {
	client *utils.HTTPClient

	// cache holds successful lookups for the process lifetime, keyed by
	// address. No eviction, no TTL.
	mu    sync.RWMutex
	cache map[string]models.Location

	logger *logger.Logger
}

// NewGeoAdapter constructs an HTTP implementation of [GeoLocator] against
// the configured geolocation provider.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewGeoAdapter(cfg config.Geo, logger *logger.Logger) (GeoLocator, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultGeoTimeout
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &geoAdapter{
		client: client,
		cache:  make(map[string]models.Location),
		logger: logger,
	}, nil
}

type geoResponse struct {
	Status      string `json:"status"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
	City        string `json:"city"`
	Region      string `json:"regionName"`
	ISP         string `json:"isp"`
}

// Resolve implements [GeoLocator]. Loopback and private addresses
// short-circuit to a synthetic "Local" result without any network call.
// Provider failures, timeouts and malformed responses all degrade to
// Success=false; the caller treats that as "unknown", never as an error.
func (g *geoAdapter) Resolve(ctx context.Context, ip string) models.Location {
	log := logger.FromContext(ctx)

	ip = strings.TrimSpace(ip)
	if isLocalAddress(ip) {
		return models.Location{Country: "Local", CountryCode: "LO", Success: true}
	}

	g.mu.RLock()
	cached, ok := g.cache[ip]
	g.mu.RUnlock()
	if ok {
		return cached
	}

	var body geoResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get("/" + ip)
	if err != nil {
		log.Warn().Err(err).Str("func", "*geoAdapter.Resolve").Str("ip", ip).Msg("geo lookup failed")
		return models.Location{}
	}
	if resp.IsError() || body.Status != "success" {
		log.Warn().Str("func", "*geoAdapter.Resolve").Str("ip", ip).Int("status", resp.StatusCode()).Msg("geo provider reported failure")
		return models.Location{}
	}

	location := models.Location{
		Country:     body.Country,
		CountryCode: body.CountryCode,
		City:        body.City,
		Region:      body.Region,
		ISP:         body.ISP,
		Success:     true,
	}

	g.mu.Lock()
	g.cache[ip] = location
	g.mu.Unlock()

	return location
}

// isLocalAddress reports whether ip is empty, loopback, private or
// otherwise not reachable from a geolocation provider's point of view.
func isLocalAddress(ip string) bool {
	if ip == "" || ip == "localhost" {
		return true
	}

	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}

	return parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsLinkLocalUnicast() || parsed.IsUnspecified()
}
