package redis

import (
	"context"
	"encoding/binary"
	"errors"
	"math"
	"time"

	"pharma-search-srv/internal/embedding/repository"
	pkgRedis "pharma-search-srv/pkg/redis"
)

const (
	Prefix     = "embedding:"
	DefaultTTL = 24 * time.Hour
)

var errCorruptVector = errors.New("embedding cache: corrupt vector")

func cacheKey(model, textHash string) string {
	return Prefix + model + ":" + textHash
}

// Get returns the cached vector, or (nil, nil) on a cache miss.
func (r *implRepository) Get(ctx context.Context, opt repository.GetOptions) ([]float32, error) {
	data, err := r.redis.Get(ctx, cacheKey(opt.Model, opt.TextHash))
	if err != nil {
		if pkgRedis.IsNil(err) {
			return nil, nil
		}
		r.l.Errorf(ctx, "embedding.repository.redis.Get: %v", err)
		return nil, err
	}

	vector, err := decodeVector(data)
	if err != nil {
		r.l.Warnf(ctx, "embedding.repository.redis.Get: %v", err)
		return nil, err
	}
	return vector, nil
}

func (r *implRepository) Save(ctx context.Context, opt repository.SaveOptions) error {
	if err := r.redis.Set(ctx, cacheKey(opt.Model, opt.TextHash), encodeVector(opt.Vector), r.ttl); err != nil {
		r.l.Errorf(ctx, "embedding.repository.redis.Save: %v", err)
		return err
	}
	return nil
}

// encodeVector packs the vector as little-endian float32s.
func encodeVector(v []float32) []byte {
	buf := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(f))
	}
	return buf
}

func decodeVector(buf []byte) ([]float32, error) {
	if len(buf) == 0 || len(buf)%4 != 0 {
		return nil, errCorruptVector
	}
	v := make([]float32, len(buf)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[4*i:]))
	}
	return v, nil
}
