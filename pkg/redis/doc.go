// Package redis connects to Redis with go-redis.
//
// Config is read from REDIS_* environment variables. Connect retries until
// the server answers a ping; Healthcheck returns a readiness probe.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	cache := tenant.NewRedisCache(client, cfg.KeyPrefix)
//
// Errors are sentinel values joined with the go-redis cause, so errors.Is
// works on both.
package redis
