package jobs

import (
	"context"

	"github.com/quillforge/creator-api/pkg/creator_api/services"
	"github.com/quillforge/creator-api/pkg/tools"
	"github.com/robfig/cron/v3"
)

// ScheduleDailyAudit sets up a cron job that checks the media links of
// every published creation once a day and unpublishes dead ones.
func ScheduleDailyAudit(ctx context.Context, svc *services.CreationService) *cron.Cron {
	c := cron.New()
	_, _ = c.AddFunc("@daily", func() {
		tools.Dispatch(context.Background(), "audit_published", func(ctx context.Context) error {
			return svc.AuditPublishedContent(ctx)
		})
	})
	c.Start()

	go func() {
		<-ctx.Done()
		c.Stop()
	}()
	return c
}
