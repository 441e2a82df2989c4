package state

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// kvRow is one state entry. The key column is binary so the packed keys survive as-is.
type kvRow struct {
	K []byte `gorm:"column:k;primaryKey;type:varbinary(512)"`
	V []byte `gorm:"column:v;type:mediumblob;not null"`
}

func (kvRow) TableName() string { return "fund_state" }

// SQL stores state in a single table through gorm.
type SQL struct {
	db *gorm.DB
}

// OpenMySQL connects with the same defaults the other services use and migrates the table.
// Example payload: state.OpenMySQL("fund:secret@tcp(127.0.0.1:3306)/fund")
func OpenMySQL(dsn string) (*SQL, error) {
	dsn = ensureParam(dsn, "parseTime", "true")
	if !strings.Contains(dsn, "charset=") {
		dsn = ensureParam(dsn, "charset", "utf8mb4")
		dsn = ensureParam(dsn, "collation", "utf8mb4_unicode_ci")
	}

	gormLogger := logger.New(
		log.New(log.Writer(), "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("mysql: %w", err)
	}
	return NewSQL(db)
}

// NewSQL wraps an existing gorm handle. The handle should be opened with TranslateError
// so duplicate keys surface as gorm.ErrDuplicatedKey.
func NewSQL(db *gorm.DB) (*SQL, error) {
	if err := db.AutoMigrate(&kvRow{}); err != nil {
		return nil, fmt.Errorf("migrate fund_state: %w", err)
	}
	return &SQL{db: db}, nil
}

func (s *SQL) Get(ctx context.Context, key string) (string, error) {
	var row kvRow
	err := s.db.WithContext(ctx).Where("k = ?", []byte(key)).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get %x: %w", key, err)
	}
	return string(row.V), nil
}

func (s *SQL) Commit(ctx context.Context, muts ...Mutation) error {
	if len(muts) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range muts {
			row := kvRow{K: []byte(m.Key), V: []byte(m.Value)}
			if m.Create {
				if err := tx.Create(&row).Error; err != nil {
					if errors.Is(err, gorm.ErrDuplicatedKey) {
						return fmt.Errorf("%w: %x", ErrExists, m.Key)
					}
					return fmt.Errorf("create %x: %w", m.Key, err)
				}
				continue
			}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "k"}},
				DoUpdates: clause.AssignmentColumns([]string{"v"}),
			}).Create(&row).Error
			if err != nil {
				return fmt.Errorf("put %x: %w", m.Key, err)
			}
		}
		return nil
	})
}

func (s *SQL) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func ensureParam(dsn, key, val string) string {
	if strings.Contains(dsn, key+"=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + key + "=" + val
}
