package storage

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nileshd/newsguard/internal/collector"
)

const archiveSummaryLimit = 2000

// ArchivedArticle keeps one assessed article beyond the bounded snapshot.
type ArchivedArticle struct {
	ID           string         `gorm:"primaryKey;size:40" json:"id"`
	Title        string         `gorm:"size:512" json:"title"`
	Link         string         `gorm:"size:1024;uniqueIndex" json:"link"`
	Source       string         `gorm:"size:128;index" json:"source"`
	Summary      string         `gorm:"size:2048" json:"summary"`
	PublishedAt  time.Time      `gorm:"index" json:"publishedAt"`
	ImageURL     string         `gorm:"size:1024" json:"imageUrl"`
	OverallLabel string         `gorm:"size:16;index" json:"overallLabel"`
	Confidence   float64        `json:"confidence"`
	Evidence     datatypes.JSON `gorm:"type:jsonb" json:"evidence"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Archive writes every published batch into Postgres so history survives
// the 350-article snapshot bound. It is optional; callers hold a nil
// *Archive when no DSN is configured.
type Archive struct {
	DB *gorm.DB
}

func NewArchive(dsn string) (*Archive, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&ArchivedArticle{}); err != nil {
		return nil, err
	}
	return &Archive{DB: db}, nil
}

// SaveBatch upserts a batch keyed by link. Re-ingestion replaces the
// recorded assessment rather than mutating it in place.
func (a *Archive) SaveBatch(items []collector.Article) error {
	if a == nil || a.DB == nil {
		return nil
	}
	for _, it := range items {
		if it.Link == "" {
			continue
		}

		evidence, err := json.Marshal(it.Sentences)
		if err != nil {
			evidence = []byte("[]")
		}

		rec := &ArchivedArticle{
			ID:           hashLink(it.Link),
			Title:        toValidUTF8(it.Title),
			Link:         it.Link,
			Source:       toValidUTF8(it.Source),
			Summary:      truncateRunes(toValidUTF8(it.Summary), archiveSummaryLimit),
			PublishedAt:  it.PublishedAt,
			ImageURL:     it.ImageURL,
			OverallLabel: string(it.OverallLabel),
			Confidence:   it.Confidence,
			Evidence:     datatypes.JSON(evidence),
		}

		// Link is the idempotency key; existing rows get the fresh
		// assessment and timestamps.
		if err := a.DB.Where("link = ?", it.Link).FirstOrCreate(rec).Error; err != nil {
			return err
		}
		_ = a.DB.Model(rec).Updates(map[string]any{
			"title":         rec.Title,
			"summary":       rec.Summary,
			"published_at":  rec.PublishedAt,
			"image_url":     rec.ImageURL,
			"overall_label": rec.OverallLabel,
			"confidence":    rec.Confidence,
			"evidence":      rec.Evidence,
		}).Error
	}
	return nil
}

func hashLink(link string) string {
	h := sha1.New()
	h.Write([]byte(link))
	return hex.EncodeToString(h.Sum(nil))
}

// toValidUTF8 normalizes strings before they hit Postgres; some feeds ship
// mixed encodings.
func toValidUTF8(s string) string {
	return strings.ToValidUTF8(s, "�")
}

// truncateRunes caps a string by rune count so it fits the column size.
func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	return string(rs[:limit])
}
