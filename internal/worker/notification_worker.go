// Package worker starts background consumers of domain events.
package worker

import (
	"github.com/spec-kit/support-assistant/internal/service"
)

// StartNotificationWorker subscribes the notification service to the
// dispatcher. Handlers run synchronously on Publish.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}
