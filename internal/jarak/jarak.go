// Package jarak menaksir jarak tempuh sekali jalan (km) antara dua alamat
// lewat Google Maps Directions, dengan cache eksplisit supaya alamat yang
// sama tidak ditanyakan berulang kali ke API berbayar.
package jarak

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"googlemaps.github.io/maps"
)

// ErrCacheMiss dikembalikan Cache saat key tidak ditemukan.
var ErrCacheMiss = errors.New("jarak: cache miss")

// Hasil adalah taksiran jarak untuk satu pasangan asal-tujuan.
type Hasil struct {
	Km           float64 `json:"km"`
	DurasiMenit  float64 `json:"durasi_menit"`
	URLReferensi string  `json:"url_referensi"`
}

// LookupFunc mengambil taksiran jarak dari sumber eksternal.
type LookupFunc func(ctx context.Context, asal, tujuan string) (Hasil, error)

// Cache adalah penyimpanan key-value sederhana milik pemanggil. Service
// tidak pernah memakai state global proses.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// Service menggabungkan lookup eksternal dengan cache.
type Service struct {
	lookup LookupFunc
	cache  Cache
	ttl    time.Duration
}

// NewService membuat service jarak. cache boleh nil; setiap permintaan lalu
// langsung diteruskan ke lookup.
func NewService(lookup LookupFunc, cache Cache, ttl time.Duration) *Service {
	return &Service{lookup: lookup, cache: cache, ttl: ttl}
}

// Estimasi mengembalikan taksiran jarak, dari cache bila ada.
func (s *Service) Estimasi(ctx context.Context, asal, tujuan string) (Hasil, error) {
	key := "jarak:" + asal + "|" + tujuan

	if s.cache != nil {
		if val, err := s.cache.Get(ctx, key); err == nil {
			var h Hasil
			if err := json.Unmarshal([]byte(val), &h); err == nil {
				return h, nil
			}
			// Entri rusak diabaikan dan ditimpa hasil lookup baru.
		}
	}

	h, err := s.lookup(ctx, asal, tujuan)
	if err != nil {
		return Hasil{}, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(h); err == nil {
			_ = s.cache.Set(ctx, key, string(raw), s.ttl)
		}
	}
	return h, nil
}

// GoogleLookup membuat LookupFunc di atas Google Maps Directions, mode
// driving dengan bias wilayah Indonesia.
func GoogleLookup(client *maps.Client) LookupFunc {
	return func(ctx context.Context, asal, tujuan string) (Hasil, error) {
		r := &maps.DirectionsRequest{
			Origin:      asal,
			Destination: tujuan,
			Mode:        maps.TravelModeDriving,
			Language:    "id",
			Region:      "id",
		}

		routes, _, err := client.Directions(ctx, r)
		if err != nil {
			return Hasil{}, fmt.Errorf("maps api error: %w", err)
		}
		if len(routes) == 0 || len(routes[0].Legs) == 0 {
			return Hasil{}, fmt.Errorf("rute tidak ditemukan dari %q ke %q", asal, tujuan)
		}

		leg := routes[0].Legs[0]
		return Hasil{
			Km:           float64(leg.Distance.Meters) / 1000,
			DurasiMenit:  leg.Duration.Minutes(),
			URLReferensi: urlReferensi(asal, tujuan),
		}, nil
	}
}

// urlReferensi membangun URL Google Maps yang ikut disimpan pada rincian
// tarif sebagai jejak audit.
func urlReferensi(asal, tujuan string) string {
	return fmt.Sprintf("https://www.google.com/maps/dir/?api=1&origin=%s&destination=%s",
		url.QueryEscape(asal), url.QueryEscape(tujuan))
}

// RedisCache adalah implementasi Cache di atas Redis.
type RedisCache struct {
	rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	return val, err
}

func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}
