// Package adapters provides the repository implementations for the symbollist feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stock_dashboard/internal/feature/symbollist/domain"
	"stock_dashboard/internal/feature/symbollist/domain/entity"
	"stock_dashboard/internal/feature/symbollist/usecase"
)

// symbolGorm is the gorm implementation of usecase.SymbolRepository.
// It works with both the SQLite and the Postgres dialector.
type symbolGorm struct {
	db *gorm.DB
}

var _ usecase.SymbolRepository = (*symbolGorm)(nil)

// NewSymbolRepository creates a new symbolGorm repository with the given DB connection.
func NewSymbolRepository(db *gorm.DB) *symbolGorm {
	return &symbolGorm{db: db}
}

// SymbolModel is the table layout of the reference universe.
type SymbolModel struct {
	ID            uint    `gorm:"primaryKey"`
	Code          string  `gorm:"size:20;not null;uniqueIndex"`
	Name          string  `gorm:"size:255;not null"`
	Price         float64 `gorm:"not null"`
	Change        float64 `gorm:"not null"`
	ChangePercent float64 `gorm:"not null"`
	Volume        int64   `gorm:"not null;default:0"`
	MarketCap     int64   `gorm:"not null;default:0"`
	IsActive      bool    `gorm:"not null"`
	SortKey       int     `gorm:"not null;default:0"`
}

func (SymbolModel) TableName() string {
	return "symbols"
}

func toModel(e entity.Symbol) SymbolModel {
	return SymbolModel{
		Code:          e.Code,
		Name:          e.Name,
		Price:         e.Price,
		Change:        e.Change,
		ChangePercent: e.ChangePercent,
		Volume:        e.Volume,
		MarketCap:     e.MarketCap,
		IsActive:      e.IsActive,
		SortKey:       e.SortKey,
	}
}

func toEntity(m SymbolModel) entity.Symbol {
	return entity.Symbol{
		Code:          m.Code,
		Name:          m.Name,
		Price:         m.Price,
		Change:        m.Change,
		ChangePercent: m.ChangePercent,
		Volume:        m.Volume,
		MarketCap:     m.MarketCap,
		IsActive:      m.IsActive,
		SortKey:       m.SortKey,
	}
}

// Migrate creates or updates the symbols table.
func (r *symbolGorm) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&SymbolModel{})
}

// Seed upserts the given symbols keyed by code.
func (r *symbolGorm) Seed(ctx context.Context, symbols []entity.Symbol) error {
	if len(symbols) == 0 {
		return nil
	}
	ms := make([]SymbolModel, 0, len(symbols))
	for _, s := range symbols {
		ms = append(ms, toModel(s))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "price", "change", "change_percent", "volume", "market_cap", "is_active", "sort_key",
		}),
	}).Create(&ms).Error
}

// ListActive returns all active symbols ordered by sort_key.
func (r *symbolGorm) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	var rows []SymbolModel
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.Symbol, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

// FindByCode returns the active symbol with the given code.
func (r *symbolGorm) FindByCode(ctx context.Context, code string) (*entity.Symbol, error) {
	var m SymbolModel
	err := r.db.WithContext(ctx).
		Where("code = ? AND is_active = ?", code, true).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSymbolNotFound
		}
		return nil, err
	}

	s := toEntity(m)
	return &s, nil
}
