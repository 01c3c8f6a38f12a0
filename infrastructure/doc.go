// Package infrastructure provides concrete implementations of the interfaces
// defined in core/interfaces.
//
//   - http/standard: net/http transport with retries and exponential backoff on GET
//   - logger/logrus: structured logger on sirupsen/logrus
//   - cache/memory: in-process preference store on patrickmn/go-cache
//   - cache/redis: shared preference store on go-redis
//   - cache/sqlite: persistent preference store on mattn/go-sqlite3
//   - metrics/prometheus: fetch counters and latency histograms
//
// # Preference stores
//
//	store := memory.NewMemoryCache(10 * time.Minute)
//	err := store.Set(ctx, "pref:city", []byte("izmir"), 0)
//	city, err := store.Get(ctx, "pref:city")
//
//	store, err := redis.NewRedisCache(config.RedisConfig{Address: "localhost:6379"})
//	store, err := sqlite.NewSQLiteCache("newsreader.db")
//
// Every store returns interfaces.ErrCacheMiss for absent keys.
package infrastructure
