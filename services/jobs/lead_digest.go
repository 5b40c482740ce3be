package jobs

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"autobot_site_go/config"
	"autobot_site_go/models"
	"autobot_site_go/services"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// digestLinkTTL is how long the emailed spreadsheet link stays valid
const digestLinkTTL = 7 * 24 * time.Hour

// StartScheduler schedules the daily lead digest. It returns nil when the
// schedule is disabled; callers stop the returned scheduler on shutdown.
func StartScheduler(database *gorm.DB, cfg *config.Config) (*cron.Cron, error) {
	if cfg.LeadDigestSchedule == "" {
		log.Println("[CRON] Lead digest disabled")
		return nil, nil
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("[WARNING] Unknown timezone %q, using UTC: %v", cfg.Timezone, err)
		loc = time.UTC
	}

	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc(cfg.LeadDigestSchedule, func() {
		log.Println("[CRON] Running lead digest")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if _, err := SendLeadDigest(ctx, database, cfg, time.Now().In(loc)); err != nil {
			log.Printf("[CRON] Lead digest failed: %v", err)
		}
	}); err != nil {
		return nil, fmt.Errorf("failed to schedule lead digest %q: %w", cfg.LeadDigestSchedule, err)
	}

	c.Start()
	log.Printf("[CRON] Lead digest scheduled at %q (%s)", cfg.LeadDigestSchedule, loc)
	return c, nil
}

// SendLeadDigest emails the sales inbox every lead received in the 24 hours
// before now, with a spreadsheet stored through services.Storage when one is
// initialized. It returns the number of leads in the digest.
func SendLeadDigest(ctx context.Context, database *gorm.DB, cfg *config.Config, now time.Time) (int, error) {
	if cfg.SalesNotifyEmail == "" {
		log.Println("[JOB] SALES_NOTIFY_EMAIL not set, skipping lead digest")
		return 0, nil
	}

	leads, err := services.ListLeads(ctx, database, now.Add(-24*time.Hour))
	if err != nil {
		return 0, err
	}
	if len(leads) == 0 {
		log.Println("[JOB] No new leads for the digest")
		return 0, nil
	}

	exportURL := ""
	if services.Storage != nil {
		url, err := storeDigestExport(ctx, leads, now)
		if err != nil {
			// The digest still goes out without the attachment link
			log.Printf("[WARNING] Lead digest export failed: %v", err)
		} else {
			exportURL = url
		}
	}

	email := services.BuildLeadDigestEmail(cfg.SalesNotifyEmail, leads, now, exportURL, cfg.AppURL)
	if err := services.SendEmail(cfg, email); err != nil {
		return 0, fmt.Errorf("failed to send lead digest: %w", err)
	}

	log.Printf("[JOB] Sent lead digest with %d leads", len(leads))
	return len(leads), nil
}

func storeDigestExport(ctx context.Context, leads []models.Lead, now time.Time) (string, error) {
	buf, err := services.ExportLeadsXLSX(leads)
	if err != nil {
		return "", err
	}

	key := services.GenerateExportKey("digest", now, ".xlsx")
	size := int64(buf.Len())
	if _, err := services.Storage.Put(ctx, key, bytes.NewReader(buf.Bytes()), size); err != nil {
		return "", err
	}
	return services.Storage.Link(ctx, key, digestLinkTTL)
}
