package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisConn *redis.Client

// NewRedis returns a client backed by a shared embedded miniredis server.
func NewRedis() *redis.Client {
	if redisConn == nil {
		redisOnce.Do(
			func() {
				redisConn = openRedisConn()
			},
		)
	}

	return redisConn
}

func openRedisConn() *redis.Client {
	server, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	return redis.NewClient(
		&redis.Options{
			Addr: server.Addr(),
		},
	)
}

// ClearRedis drops every key so the next scenario starts clean.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
