package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"jobmatch/internal/domain/user"
	"jobmatch/internal/session"
)

const defaultRedisPrefix = "jobmatch:session"

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	// Prefix namespaces the keys and the change channel.
	Prefix string
}

// Redis keeps the session in Redis and announces every write on a pub/sub
// channel, so that other client processes can follow logins and logouts.
type Redis struct {
	client *redis.Client
	logger *log.Logger
	prefix string
}

func NewRedis(ctx context.Context, cfg RedisConfig, logger *log.Logger) (*Redis, error) {
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "localhost"
	}
	port := strings.TrimSpace(cfg.Port)
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	r := NewRedisFromClient(client, cfg.Prefix, logger)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := r.Ping(pingCtx); err != nil {
		_ = r.Close()
		return nil, fmt.Errorf("redis session store unavailable: %w", err)
	}
	return r, nil
}

func NewRedisFromClient(client *redis.Client, prefix string, logger *log.Logger) *Redis {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &Redis{client: client, logger: logger, prefix: prefix}
}

func (r *Redis) key(name string) string {
	return r.prefix + ":" + name
}

func (r *Redis) channel() string {
	return r.prefix + ":events"
}

func (r *Redis) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Close()
}

func (r *Redis) Load(ctx context.Context) (session.Session, error) {
	vals, err := r.client.MGet(ctx, r.key(keyToken), r.key(keyUserType)).Result()
	if err != nil {
		return session.Session{}, err
	}

	var out session.Session
	if s, ok := vals[0].(string); ok {
		out.Token = s
	}
	if s, ok := vals[1].(string); ok {
		out.UserType = user.Type(s)
	}
	if out.Token == "" {
		return session.Session{}, nil
	}
	return out, nil
}

func (r *Redis) Save(ctx context.Context, s session.Session) error {
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, r.key(keyToken), s.Token, 0)
		p.Set(ctx, r.key(keyUserType), string(s.UserType), 0)
		p.Publish(ctx, r.channel(), "login")
		return nil
	})
	return err
}

func (r *Redis) Clear(ctx context.Context) error {
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, r.key(keyToken), r.key(keyUserType))
		p.Publish(ctx, r.channel(), "logout")
		return nil
	})
	return err
}

func (r *Redis) Changes(ctx context.Context) (<-chan struct{}, error) {
	sub := r.client.Subscribe(ctx, r.channel())
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer sub.Close()
		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-msgs:
				if !ok {
					if r.logger != nil {
						r.logger.Printf("[SessionStore] redis subscription closed")
					}
					return
				}
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()
	return out, nil
}

// Ping reports whether Redis is reachable.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.client == nil {
		return errors.New("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
}

var (
	_ session.Persister = (*Redis)(nil)
	_ session.Notifier  = (*Redis)(nil)
)
