// internals/helpers/oss/oss_orphan_reaper.go
package helper

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

/*
Reaper des blobs orphelins.

L'upload de document est en deux temps : (a) put du blob, (b) insertion
de la ligne de métadonnées. Si (b) échoue après (a), la ligne est créée
en statut "orphelin" (ou le blob reste sans ligne) ; ce job de fond
réconcilie en supprimant les blobs sans métadonnées valides. Le coeur
de requête n'embarque jamais cette logique.
*/

type OrphanReaperConfig struct {
	CronSchedule  string
	RetentionDays int
	DryRun        bool
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	case "":
		return def
	default:
		return false
	}
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// StartOrphanReaperCron — à appeler depuis main.go une fois la DB prête.
func StartOrphanReaperCron(db *gorm.DB) {
	cfg := OrphanReaperConfig{
		CronSchedule:  getEnvOrDefault("REAPER_CRON_SCHEDULE", "45 2 * * *"),
		RetentionDays: getEnvInt("REAPER_RETENTION_DAYS", 7),
		DryRun:        getEnvBool("REAPER_DRY_RUN", false),
	}

	blob, err := NewOSSBlobServiceFromEnv(getEnvOrDefault("ALI_OSS_PREFIX", "documents"))
	if err != nil {
		log.Printf("[ORPHAN-REAPER] ENV OSS incomplet (%v) — job désactivé", err)
		return
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err = c.AddFunc(cfg.CronSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
		defer cancel()
		if err := runOrphanReaper(ctx, db, blob, cfg); err != nil {
			log.Printf("[ORPHAN-REAPER] error: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("[ORPHAN-REAPER] add cron: %v", err)
	}
	log.Printf("[ORPHAN-REAPER] started schedule=%q retention=%dj dryRun=%v",
		cfg.CronSchedule, cfg.RetentionDays, cfg.DryRun)
	c.Start()
}

func runOrphanReaper(ctx context.Context, db *gorm.DB, blob BlobService, cfg OrphanReaperConfig) error {
	threshold := time.Now().Add(-time.Duration(cfg.RetentionDays) * 24 * time.Hour)

	type orphanRow struct {
		DocumentID        string
		DocumentObjectKey string
	}
	var rows []orphanRow
	if err := db.WithContext(ctx).
		Table("documents_importes").
		Select("document_id, document_object_key").
		Where("document_statut = ?", "orphelin").
		Where("document_created_at < ?", threshold).
		Limit(200).
		Scan(&rows).Error; err != nil {
		return err
	}

	log.Printf("[ORPHAN-REAPER] %d orphelin(s) candidats (avant %s)", len(rows), threshold.Format(time.RFC3339))
	for _, r := range rows {
		if cfg.DryRun {
			log.Printf("[ORPHAN-REAPER] dry-run: delete %s", r.DocumentObjectKey)
			continue
		}
		if err := blob.DeleteByObjectKey(ctx, r.DocumentObjectKey); err != nil {
			log.Printf("[ORPHAN-REAPER] blob %s: %v (retenté au prochain passage)", r.DocumentObjectKey, err)
			continue
		}
		if err := db.WithContext(ctx).
			Table("documents_importes").
			Where("document_id = ?", r.DocumentID).
			Update("document_deleted_at", time.Now()).Error; err != nil {
			log.Printf("[ORPHAN-REAPER] row %s: %v", r.DocumentID, err)
		}
	}

	// Purge des lignes soft-delete au-delà de la rétention
	res := db.WithContext(ctx).Exec(
		"DELETE FROM documents_importes WHERE document_deleted_at IS NOT NULL AND document_deleted_at < ?",
		threshold,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		log.Printf("[ORPHAN-REAPER] %d ligne(s) purgée(s)", res.RowsAffected)
	}
	return nil
}
