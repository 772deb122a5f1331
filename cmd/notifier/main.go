package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/callmedory/sport-project/db"
	"github.com/callmedory/sport-project/internal/model"
	"github.com/callmedory/sport-project/internal/repository"
	"github.com/callmedory/sport-project/pkg/notify"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	err = db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(); err != nil {
		log.Fatalf("error ensuring schema: %v", err)
	}

	notificationRepository := repository.NewNotificationRepository(db.DB)

	slog.Info("notifier started", "queue", db.NotifyQueueKey)

	for {
		payload, err := db.PopFromQueue(db.NotifyQueueKey, 30*time.Second)
		if errors.Is(err, redis.Nil) {
			if failed, lenErr := db.GetQueueLength(db.DeadLetterKey); lenErr == nil && failed > 0 {
				slog.Warn("dead letter queue is not empty", "count", failed)
			}
			continue
		}
		if err != nil {
			slog.Error("error popping from Redis queue", "error", err)
			break
		}

		var event notify.PublishedEvent
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			slog.Error("invalid event payload, moving to dead letter", "error", err)
			deadLetter(payload)
			continue
		}

		notification := model.Notification{
			ID:        uuid.NewString(),
			UserID:    event.AuthorID,
			Subject:   "Your article is live",
			Body:      fmt.Sprintf("%q was published on %s.", event.ArticleTitle, event.PublishedAt.Format("2 Jan 2006")),
			CreatedAt: time.Now(),
		}

		if err := notificationRepository.Create(&notification); err != nil {
			slog.Error("error saving notification, moving to dead letter", "error", err, "article_id", event.ArticleID)
			deadLetter(payload)
			continue
		}

		slog.Info("notification delivered", "user_id", event.AuthorID, "article_id", event.ArticleID)
	}

}

// deadLetter parks a payload that could not be processed. A failed park is
// the last place a message can be lost, so it gets its own error log.
func deadLetter(payload string) {
	if err := db.PushToQueue(db.DeadLetterKey, payload); err != nil {
		slog.Error("error pushing to dead letter queue", "error", err)
	}
}
