// 手动预热题目缓存
//
// 为每个测验变体生成一组题目并写入 Redis，之后的 /generate-quiz 请求直接命中缓存。
// 需要在配置中开启 redis.enabled 并设置 quiz.question_cache_ttl_seconds。
//
// 用法: go run scripts/warm_question_cache.go

package main

import (
	"career_compass_backend/internal/config"
	"career_compass_backend/internal/service"
	"career_compass_backend/pkg/database"
	"career_compass_backend/pkg/logger"
	"context"
	"log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}
	if !cfg.Redis.Enabled || cfg.Quiz.QuestionCacheTTL() <= 0 {
		log.Fatal("题目缓存未开启，请设置 redis.enabled 和 quiz.question_cache_ttl_seconds")
	}

	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Redis 连接失败: %v", err)
	}
	defer rdb.Close()

	cache := service.NewRedisQuestionCache(rdb, cfg.Quiz.QuestionCacheTTL())
	quiz := service.NewQuizService(service.NewAIService(cfg.AI), nil, cache)

	ctx := context.Background()
	for _, v := range service.QuizVariants() {
		// 先清掉旧的题目，保证重新生成
		if err := rdb.Del(ctx, service.QuestionCacheKey(v.Type)).Err(); err != nil {
			log.Fatalf("清理缓存失败: %v", err)
		}
		questions, err := quiz.GenerateQuestions(ctx, v.Type)
		if err != nil {
			log.Fatalf("生成题目失败 (%s): %v", v.Type, err)
		}
		log.Printf("%s: 已缓存 %d 道题目", v.Type, len(questions))
	}
	log.Println("完成！")
}
