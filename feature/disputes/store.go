package disputes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dispute-reconciler/core/database"
	"dispute-reconciler/core/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrExists is returned by Add when the dispute id is already stored.
	ErrExists = errors.New("dispute already exists")
	// ErrSchemaMismatch is returned by VerifySchema when expected columns are missing.
	ErrSchemaMismatch = errors.New("dispute table schema mismatch")
)

// Store is the internal system of record for disputes.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewStore creates a store over db.
func NewStore(db *gorm.DB, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: db, logger: logger}
}

// Migrate creates or updates the disputes table.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&DisputeRecord{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", TableName, err)
	}
	return nil
}

// VerifySchema checks the live table has every column the store reads.
func (s *Store) VerifySchema() error {
	missing, err := database.MissingColumns(s.db, TableName, columns)
	if err != nil {
		return fmt.Errorf("failed to inspect %s: %w", TableName, err)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing columns %s", ErrSchemaMismatch, strings.Join(missing, ", "))
	}
	return nil
}

// Seed inserts the sample disputes when the table is empty.
func (s *Store) Seed(ctx context.Context) (int, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&DisputeRecord{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count disputes: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	samples := SampleDisputes()
	records := make([]DisputeRecord, 0, len(samples))
	for _, d := range samples {
		records = append(records, FromDispute(d))
	}
	if err := s.db.WithContext(ctx).Create(&records).Error; err != nil {
		return 0, fmt.Errorf("failed to seed disputes: %w", err)
	}
	s.logger.Info("Seeded dispute store", zap.Int("count", len(records)))
	return len(records), nil
}

// GetAll returns every stored dispute ordered by id.
func (s *Store) GetAll(ctx context.Context) ([]reconcile.Dispute, error) {
	var records []DisputeRecord
	if err := s.db.WithContext(ctx).Order("dispute_id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load disputes: %w", err)
	}
	return toDisputes(records), nil
}

// GetByID returns the dispute with id, or nil when it does not exist.
func (s *Store) GetByID(ctx context.Context, id string) (*reconcile.Dispute, error) {
	var record DisputeRecord
	err := s.db.WithContext(ctx).Where("dispute_id = ?", id).Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load dispute %s: %w", id, err)
	}
	d := record.ToDispute()
	return &d, nil
}

// GetByStatus returns disputes whose status matches case-insensitively.
func (s *Store) GetByStatus(ctx context.Context, status string) ([]reconcile.Dispute, error) {
	var records []DisputeRecord
	err := s.db.WithContext(ctx).
		Where("LOWER(status) = ?", strings.ToLower(status)).
		Order("dispute_id").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load disputes with status %s: %w", status, err)
	}
	return toDisputes(records), nil
}

// Add stores a new dispute.
func (s *Store) Add(ctx context.Context, d reconcile.Dispute) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&DisputeRecord{}).Where("dispute_id = ?", d.DisputeID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check dispute %s: %w", d.DisputeID, err)
		}
		if count > 0 {
			return fmt.Errorf("%w: %s", ErrExists, d.DisputeID)
		}

		record := FromDispute(d)
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to add dispute %s: %w", d.DisputeID, err)
		}
		return nil
	})
}

// Update replaces a stored dispute. It reports false, without error, when
// the dispute does not exist.
func (s *Store) Update(ctx context.Context, d reconcile.Dispute) (bool, error) {
	updated := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing DisputeRecord
		err := tx.Where("dispute_id = ?", d.DisputeID).Take(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to load dispute %s: %w", d.DisputeID, err)
		}

		record := FromDispute(d)
		record.CreatedAt = existing.CreatedAt
		if err := tx.Save(&record).Error; err != nil {
			return fmt.Errorf("failed to update dispute %s: %w", d.DisputeID, err)
		}
		updated = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if !updated {
		s.logger.Debug("Update skipped, dispute not found", zap.String("dispute_id", d.DisputeID))
	}
	return updated, nil
}

func toDisputes(records []DisputeRecord) []reconcile.Dispute {
	out := make([]reconcile.Dispute, 0, len(records))
	for _, r := range records {
		out = append(out, r.ToDispute())
	}
	return out
}
