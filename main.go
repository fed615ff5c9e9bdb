package main

import (
	"context"
	"log"

	"github.com/baitoguard/backend/internal/client"
	"github.com/baitoguard/backend/internal/config"
	"github.com/baitoguard/backend/internal/db"
	"github.com/baitoguard/backend/internal/handler"
	"github.com/baitoguard/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title 闇バイトチェッカー API
// @version 1.0
// @description 求人情報の安全性をAIで分析するAPIサーバー
// @BasePath /
func main() {
	// .envは開発用。無くてもエラーにしない
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	// ストア選択: Postgres設定が揃っていれば実ストア、
	// 無ければ決定的フィクスチャ入りのメモリストア
	var store service.Store
	if cfg.PostgresConfigured() {
		pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
		if err != nil {
			log.Fatalf("Failed to connect to Postgres: %v", err)
		}
		defer pool.Close()

		pg := &db.Postgres{Pool: pool}
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Fatalf("Failed to ensure schema: %v", err)
		}
		store = pg
		log.Println("Using Postgres store")
	} else {
		store = db.NewMemory()
		log.Println("Postgres not configured, using in-memory store")
	}

	// APIキー未設定でも起動は続ける（分析系は500を返す）
	var llm service.LLM
	if cfg.Gemini.APIKey != "" {
		gemini, err := client.NewGeminiClient(cfg.Gemini)
		if err != nil {
			log.Fatalf("Failed to init Gemini client: %v", err)
		}
		llm = gemini
	} else {
		log.Println("GEMINI_API_KEY is not set, analysis endpoints will be unavailable")
	}

	timeout := cfg.Gemini.Timeout
	analyzeSvc := service.NewAnalyzeService(llm, store, cfg.Analyzer.PromptTemplate, timeout)
	chatSvc := service.NewChatService(llm, timeout)
	historySvc := service.NewHistoryService(store)
	statsSvc := service.NewStatisticsService(store)
	trendsSvc := service.NewTrendsService(store)
	compareSvc := service.NewCompareService(analyzeSvc, cfg.Analyzer.CompareLimit)
	ocrSvc := service.NewOCRService(llm, timeout)
	scrapeSvc := service.NewScrapeService(client.NewScraper(cfg.Analyzer.ScrapeFixtures))
	similarSvc := service.NewSimilarService(llm, store, timeout)

	router := gin.Default()
	router.Use(handler.CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/ping", handler.Ping)
	router.GET("/", handler.Root)
	router.GET("/openapi.json", handler.OpenAPIDoc)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/analyze", handler.NewAnalyzeHandler(analyzeSvc).Analyze)
		v1.POST("/compare", handler.NewCompareHandler(compareSvc).Compare)
		v1.GET("/analyses", handler.NewHistoryHandler(historySvc).List)
		v1.GET("/statistics", handler.NewStatisticsHandler(statsSvc).Statistics)
		v1.GET("/trends", handler.NewTrendsHandler(trendsSvc).Trends)
		v1.POST("/chat", handler.NewChatHandler(chatSvc).Chat)
		v1.POST("/scrape", handler.NewScrapeHandler(scrapeSvc).Scrape)
		v1.POST("/ocr", handler.NewOCRHandler(ocrSvc).ExtractText)
		v1.POST("/similar", handler.NewSimilarHandler(similarSvc).Search)
	}

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
