package notify

import (
	"encoding/json"
	"time"
)

// PublishedEvent is the queue payload emitted when an article goes live.
type PublishedEvent struct {
	AuthorID     string    `json:"author_id"`
	ArticleID    string    `json:"article_id"`
	ArticleTitle string    `json:"article_title"`
	PublishedAt  time.Time `json:"published_at"`
}

// Dispatcher delivers "article published" notices to the article's author.
type Dispatcher interface {
	ArticlePublished(event PublishedEvent) error
}

// QueueDispatcher hands events to a queue for the notifier worker to pick up.
type QueueDispatcher struct {
	push     func(queueKey, data string) error
	queueKey string
}

func NewQueueDispatcher(push func(queueKey, data string) error, queueKey string) *QueueDispatcher {
	return &QueueDispatcher{push: push, queueKey: queueKey}
}

func (d *QueueDispatcher) ArticlePublished(event PublishedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return d.push(d.queueKey, string(payload))
}
