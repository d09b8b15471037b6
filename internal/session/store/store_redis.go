package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"markethub/internal/session"
	id "markethub/pkg/domain"
)

const sessionTTL = 30 * 24 * time.Hour

// RedisStore keeps sessions in Redis. A per-user set indexes session IDs so
// invalidation by user is a bounded fan-out rather than a keyspace scan.
type RedisStore struct {
	client *goredis.Client
}

func NewRedisStore(client *goredis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(sessionID id.SessionID) string {
	return "session:" + sessionID.String()
}

func userSessionsKey(userID id.UserID) string {
	return "user_sessions:" + userID.String()
}

// Save persists the session and indexes it under its user.
func (s *RedisStore) Save(ctx context.Context, sess *session.Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, sessionKey(sess.ID), payload, sessionTTL)
	pipe.SAdd(ctx, userSessionsKey(sess.UserID), sess.ID.String())
	pipe.Expire(ctx, userSessionsKey(sess.UserID), sessionTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// ListByUser returns every session recorded for the user, any status.
func (s *RedisStore) ListByUser(ctx context.Context, userID id.UserID) ([]*session.Session, error) {
	ids, err := s.client.SMembers(ctx, userSessionsKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list user sessions: %w", err)
	}

	sessions := make([]*session.Session, 0, len(ids))
	for _, raw := range ids {
		sessionID, err := id.ParseSessionID(raw)
		if err != nil {
			continue
		}
		payload, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
		if err == goredis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get session %s: %w", raw, err)
		}
		var sess session.Session
		if err := json.Unmarshal(payload, &sess); err != nil {
			return nil, fmt.Errorf("unmarshal session %s: %w", raw, err)
		}
		sessions = append(sessions, &sess)
	}
	return sessions, nil
}

// InvalidateByUser marks every active session for the user invalid. Records
// are rewritten in place, never deleted.
func (s *RedisStore) InvalidateByUser(ctx context.Context, userID id.UserID, now time.Time) error {
	sessions, err := s.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	for _, sess := range sessions {
		if sess.Status != session.StatusActive {
			continue
		}
		sess.ApplyInvalidation(now)
		payload, err := json.Marshal(sess)
		if err != nil {
			return fmt.Errorf("marshal session: %w", err)
		}
		if err := s.client.Set(ctx, sessionKey(sess.ID), payload, goredis.KeepTTL).Err(); err != nil {
			return fmt.Errorf("invalidate session %s: %w", sess.ID, err)
		}
	}
	return nil
}
