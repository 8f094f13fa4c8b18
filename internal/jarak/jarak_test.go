package jarak

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cacheMemori struct {
	data map[string]string
}

func (c *cacheMemori) Get(_ context.Context, key string) (string, error) {
	val, ok := c.data[key]
	if !ok {
		return "", ErrCacheMiss
	}
	return val, nil
}

func (c *cacheMemori) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.data[key] = value
	return nil
}

func TestEstimasiMemakaiCache(t *testing.T) {
	panggilan := 0
	lookup := func(_ context.Context, asal, tujuan string) (Hasil, error) {
		panggilan++
		return Hasil{Km: 7.4, DurasiMenit: 18, URLReferensi: urlReferensi(asal, tujuan)}, nil
	}

	svc := NewService(lookup, &cacheMemori{data: map[string]string{}}, time.Hour)

	h1, err := svc.Estimasi(context.Background(), "RSUD Harapan", "Jl. Melati 12")
	require.NoError(t, err)
	h2, err := svc.Estimasi(context.Background(), "RSUD Harapan", "Jl. Melati 12")
	require.NoError(t, err)

	assert.Equal(t, 1, panggilan, "panggilan kedua harus dilayani dari cache")
	assert.Equal(t, h1, h2)
	assert.Equal(t, 7.4, h1.Km)
}

func TestEstimasiTanpaCache(t *testing.T) {
	panggilan := 0
	lookup := func(_ context.Context, _, _ string) (Hasil, error) {
		panggilan++
		return Hasil{Km: 3.1}, nil
	}

	svc := NewService(lookup, nil, time.Hour)
	_, err := svc.Estimasi(context.Background(), "a", "b")
	require.NoError(t, err)
	_, err = svc.Estimasi(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.Equal(t, 2, panggilan)
}

func TestEstimasiLookupGagal(t *testing.T) {
	gagal := errors.New("no route found")
	svc := NewService(func(_ context.Context, _, _ string) (Hasil, error) {
		return Hasil{}, gagal
	}, &cacheMemori{data: map[string]string{}}, time.Hour)

	_, err := svc.Estimasi(context.Background(), "a", "b")
	assert.ErrorIs(t, err, gagal)
}

func TestEstimasiCacheRusakDitimpa(t *testing.T) {
	cache := &cacheMemori{data: map[string]string{"jarak:a|b": "{bukan json"}}
	svc := NewService(func(_ context.Context, _, _ string) (Hasil, error) {
		return Hasil{Km: 2.2}, nil
	}, cache, time.Hour)

	h, err := svc.Estimasi(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.Equal(t, 2.2, h.Km)
	assert.JSONEq(t, `{"km":2.2,"durasi_menit":0,"url_referensi":""}`, cache.data["jarak:a|b"])
}
