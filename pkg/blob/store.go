package blob

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when no blob lives under the container/key pair.
var ErrNotFound = errors.New("blob not found")

// Store is the blob storage collaborator: opaque bytes addressed by
// container and key.
type Store interface {
	Put(container, key string, data []byte) error
	Get(container, key string) ([]byte, error)
	Delete(container, key string) error
}

// RedisStore keeps blobs in Redis under "<container>:<key>".
type RedisStore struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, ctx: context.Background()}
}

func blobKey(container, key string) string {
	return container + ":" + key
}

func (s *RedisStore) Put(container, key string, data []byte) error {
	return s.client.Set(s.ctx, blobKey(container, key), data, 0).Err()
}

func (s *RedisStore) Get(container, key string) ([]byte, error) {
	data, err := s.client.Get(s.ctx, blobKey(container, key)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisStore) Delete(container, key string) error {
	return s.client.Del(s.ctx, blobKey(container, key)).Err()
}
