package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrChatCapReached is returned when a patient has used up their daily
// assistant message allowance.
var ErrChatCapReached = errors.New("daily chat message cap reached")

// incrWithExpiryScript atomically increments the patient's daily counter and
// sets its TTL on first use. The Redis client sends EVALSHA after the first
// call, so the script body only travels once.
var incrWithExpiryScript = redis.NewScript(`
	local count = redis.call('INCR', KEYS[1])
	if count == 1 then
		redis.call('EXPIRE', KEYS[1], ARGV[1])
	end
	return count
`)

const chatCapKeyPrefix = "chat:daily:"

// ChatLimitService enforces a per-patient daily message cap for the chat
// assistant. Counters are keyed by patient and UTC date and expire on their
// own, so there is nothing to sweep.
type ChatLimitService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	dailyCap    int
}

func NewChatLimitService(redisClient *redis.Client, log *logrus.Logger, dailyCap int) *ChatLimitService {
	return &ChatLimitService{
		redisClient: redisClient,
		log:         log,
		dailyCap:    dailyCap,
	}
}

// Allow consumes one message from the patient's daily allowance. It returns
// ErrChatCapReached once the cap is exceeded. A Redis failure is logged and
// treated as allowed; the cap is protective, not load-bearing, and the chat
// surface must stay available.
func (s *ChatLimitService) Allow(ctx context.Context, patientUserID uuid.UUID) error {
	now := time.Now().UTC()
	key := fmt.Sprintf("%s%s:%s", chatCapKeyPrefix, patientUserID, now.Format("2006-01-02"))

	// Expire at end of the UTC day plus a small grace period.
	endOfDay := now.Truncate(24 * time.Hour).Add(24 * time.Hour)
	ttl := int(endOfDay.Sub(now).Seconds()) + 60

	count, err := incrWithExpiryScript.Run(ctx, s.redisClient, []string{key}, ttl).Int()
	if err != nil {
		s.log.Warnf("Chat cap check failed for patient %s (allowing): %+v", patientUserID, err)
		return nil
	}

	if count > s.dailyCap {
		return ErrChatCapReached
	}
	return nil
}
