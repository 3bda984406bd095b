package compcache

import (
	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/zerr"
)

func encodeBlob(uow UnitOfWork) ([]byte, error) {
	raw, err := msgpack.Marshal(uow)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheEncodeFailed.Error())
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheEncodeFailed.Error())
	}
	defer func() { _ = enc.Close() }()

	return enc.EncodeAll(raw, nil), nil
}

func decodeBlob(blob []byte) (UnitOfWork, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheDecodeFailed.Error())
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(blob, nil)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheDecodeFailed.Error())
	}

	uow := make(UnitOfWork)
	if err := msgpack.Unmarshal(raw, &uow); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheDecodeFailed.Error())
	}
	return uow, nil
}

// FetchValue decodes the value stored under prefix and key.
// An entry that does not decode as T is reported as absent.
func FetchValue[T any](c *Cache, prefix, key string) (T, bool) {
	var value T
	raw, ok := c.Fetch(prefix, key)
	if !ok {
		return value, false
	}
	if err := msgpack.Unmarshal(raw, &value); err != nil {
		c.logger.Debug("discarding undecodable cache entry " + prefix + ":" + key)
		var zero T
		return zero, false
	}
	return value, true
}

// SaveValue encodes value and stores it under prefix and key.
func SaveValue(c *Cache, prefix, key string, value any) {
	raw, err := msgpack.Marshal(value)
	if err != nil {
		c.logger.Warn(zerr.With(zerr.Wrap(err, domain.ErrCacheEncodeFailed.Error()), "key", prefix+":"+key).Error())
		return
	}
	c.Save(prefix, key, raw)
}
