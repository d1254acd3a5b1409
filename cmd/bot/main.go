package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/go-redis/redis/v8"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"

	"tour-planner/config"
	redisdao "tour-planner/dao/redis"
	"tour-planner/db"
	"tour-planner/game"
)

// telegramSender adapts the bot API to the game.Sender interface.
type telegramSender struct {
	bot *tgbotapi.BotAPI
}

func (s *telegramSender) Send(chatID int64, text string, replyTo int) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.DisableWebPagePreview = true
	if replyTo != 0 {
		msg.ReplyToMessageID = replyTo
	}
	_, err := s.bot.Send(msg)
	return err
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	botToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	if botToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN env var not set. Set it and run again.")
	}

	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Fatal("Failed to initialize bot:", err)
	}
	log.Printf("Authenticated as @%s", bot.Self.UserName)

	store := newStateStore()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	handler := game.NewHandler(store, &telegramSender{bot: bot}, rng, bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := bot.GetUpdatesChan(u)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		log.Println("Shutting down...")
		bot.StopReceivingUpdates()
	}()

	for update := range updates {
		m := update.Message
		if m == nil || m.Text == "" || m.From == nil {
			continue
		}
		handler.HandleMessage(m.Chat.ID, m.From.ID, m.MessageID, m.Text)
	}

	log.Println("Stopped.")
}

// newStateStore picks Redis when REDIS_ADDR is configured, otherwise keeps
// game states in memory.
func newStateStore() game.StateStore {
	if os.Getenv("REDIS_ADDR") == "" {
		log.Println("Using in-memory game state store")
		return game.NewMemoryStateStore()
	}

	ctx := context.Background()
	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.RedisAddress(),
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})
	redisClient := db.NewKVRedisClient(ctx, redisInternalClient)
	log.Println("Using redis game state store")
	return redisdao.NewRedisGameDAO(redisClient)
}
