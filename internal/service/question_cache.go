package service

import (
	"career_compass_backend/internal/model"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// QuestionCache 缓存已生成的题目，减少对生成式服务的调用
type QuestionCache interface {
	Get(ctx context.Context, quizType model.QuizType) ([]Question, bool, error)
	Set(ctx context.Context, quizType model.QuizType, questions []Question) error
}

type RedisQuestionCache struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewRedisQuestionCache(rdb *redis.Client, ttl time.Duration) *RedisQuestionCache {
	return &RedisQuestionCache{Redis: rdb, TTL: ttl}
}

func QuestionCacheKey(quizType model.QuizType) string {
	return "quiz:questions:" + string(quizType)
}

func (c *RedisQuestionCache) Get(ctx context.Context, quizType model.QuizType) ([]Question, bool, error) {
	data, err := c.Redis.Get(ctx, QuestionCacheKey(quizType)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var questions []Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, false, err
	}
	return questions, true, nil
}

func (c *RedisQuestionCache) Set(ctx context.Context, quizType model.QuizType, questions []Question) error {
	data, err := json.Marshal(questions)
	if err != nil {
		return err
	}
	return c.Redis.Set(ctx, QuestionCacheKey(quizType), data, c.TTL).Err()
}
