// Package notifier содержит каналы доставки уведомлений о заказах.
// Каждый канал независим: ошибка одного не мешает попытке другого.
package notifier

import "context"

type Message struct {
	Subject string
	Text    string
	HTML    string
}

type Notifier interface {
	Send(ctx context.Context, msg Message) error
}
