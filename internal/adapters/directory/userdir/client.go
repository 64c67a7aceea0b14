package userdir

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"beneficiary-trajectory/internal/domain/actors"
	"beneficiary-trajectory/internal/platform/httpclient"

	"github.com/patrickmn/go-cache"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrNotConfigured = errors.New("user directory not configured")
)

const DefaultCacheTTL = 5 * time.Minute

// Config del directorio de usuarios del portal.
type Config struct {
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
	CacheTTL time.Duration

	// Transport opcional, para tests.
	Transport http.RoundTripper
}

// Directory resuelve actores (nombre y rol) contra el servicio de usuarios.
// Implementa actors.Repository. Solo se cachean los aciertos.
type Directory struct {
	http  *httpclient.Client
	cache *cache.Cache
}

func New(cfg Config) (*Directory, error) {
	headers := map[string]string{}
	if k := strings.TrimSpace(cfg.APIKey); k != "" {
		headers["X-Api-Key"] = k
	}

	hc, err := httpclient.New(httpclient.Config{
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		Headers:   headers,
		Transport: cfg.Transport,
	})
	if err != nil {
		return nil, fmt.Errorf("userdir: %w", err)
	}

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &Directory{
		http:  hc,
		cache: cache.New(ttl, ttl*2),
	}, nil
}

type userResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

func (d *Directory) GetByID(ctx context.Context, id string) (actors.Actor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return actors.Actor{}, ErrNotFound
	}
	if !d.http.Configured() {
		return actors.Actor{}, ErrNotConfigured
	}

	if cached, found := d.cache.Get(id); found {
		return cached.(actors.Actor), nil
	}

	var out userResponse
	if err := d.http.GetJSON(ctx, "/v1/users/"+url.PathEscape(id), &out); err != nil {
		if httpclient.StatusCode(err) == http.StatusNotFound {
			return actors.Actor{}, ErrNotFound
		}
		return actors.Actor{}, fmt.Errorf("userdir: get %s: %w", id, err)
	}

	a := actors.Actor{
		ID:          id,
		DisplayName: strings.TrimSpace(out.DisplayName),
		Role:        actors.Role(strings.ToLower(strings.TrimSpace(out.Role))),
	}
	d.cache.Set(id, a, cache.DefaultExpiration)
	return a, nil
}

// Flush descarta lo cacheado (p.ej. después de un cambio de rol).
func (d *Directory) Flush() {
	d.cache.Flush()
}
