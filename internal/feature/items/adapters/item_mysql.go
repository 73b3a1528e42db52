// Package adapters はitemsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/KoheiTanihara/Gado-back/internal/feature/items/domain/entity"
	"github.com/KoheiTanihara/Gado-back/internal/feature/items/usecase"
)

// itemMySQL はItemRepositoryインターフェースのMySQL実装です。
type itemMySQL struct {
	db *gorm.DB
}

var _ usecase.ItemRepository = (*itemMySQL)(nil)

// NewItemMySQL は指定されたDB接続でitemMySQLリポジトリの新しいインスタンスを生成します。
func NewItemMySQL(db *gorm.DB) *itemMySQL {
	return &itemMySQL{db: db}
}

// Create はアイテムをデータベースに追加します。
func (r *itemMySQL) Create(ctx context.Context, item *entity.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// ListByOwner は所有者のアイテムをID順でskip/limit付きで返します。
func (r *itemMySQL) ListByOwner(ctx context.Context, ownerID uint, skip, limit int) ([]entity.Item, error) {
	var items []entity.Item
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID は所有者に属するアイテムを取得します。
// 存在しない、または所有者が異なる場合、usecase.ErrItemNotFoundを返します。
func (r *itemMySQL) FindByID(ctx context.Context, ownerID, id uint) (*entity.Item, error) {
	var item entity.Item
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Update はアイテムを保存します。
func (r *itemMySQL) Update(ctx context.Context, item *entity.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete は所有者に属するアイテムを削除します。
// 対象行がない場合、usecase.ErrItemNotFoundを返します。
func (r *itemMySQL) Delete(ctx context.Context, ownerID, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&entity.Item{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrItemNotFound
	}
	return nil
}
