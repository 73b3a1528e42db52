// Package usecase はitemsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"github.com/KoheiTanihara/Gado-back/internal/feature/items/domain/entity"
)

const (
	// defaultLimit は一覧取得時のデフォルト件数です。
	defaultLimit = 100
)

// ItemRepository はアイテムエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
// すべての読み書きは所有者IDでフィルタされます。
type ItemRepository interface {
	// Create は新しいアイテムをストレージに永続化します。
	Create(ctx context.Context, item *entity.Item) error

	// ListByOwner は指定された所有者のアイテムをID順でskip/limit付きで返します。
	ListByOwner(ctx context.Context, ownerID uint, skip, limit int) ([]entity.Item, error)

	// FindByID は所有者に属するアイテムを取得します。
	// 存在しない、または所有者が異なる場合、ErrItemNotFoundを返します。
	FindByID(ctx context.Context, ownerID, id uint) (*entity.Item, error)

	// Update はアイテムを保存します。
	Update(ctx context.Context, item *entity.Item) error

	// Delete は所有者に属するアイテムを削除します。
	// 存在しない場合、ErrItemNotFoundを返します。
	Delete(ctx context.Context, ownerID, id uint) error
}

// ItemUsecase はアイテム操作のビジネスロジックを提供します。
type ItemUsecase struct {
	repo ItemRepository
}

// NewItemUsecase は指定されたリポジトリでItemUsecaseを生成します。
func NewItemUsecase(r ItemRepository) *ItemUsecase {
	return &ItemUsecase{repo: r}
}

// CreateItem は認証済みユーザーを所有者として新しいアイテムを作成します。
func (u *ItemUsecase) CreateItem(ctx context.Context, ownerID uint, title, description string) (*entity.Item, error) {
	item := &entity.Item{
		Title:       title,
		Description: description,
		OwnerID:     ownerID,
	}
	if err := u.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListItems は所有者のアイテム一覧を返します。
// skipが負の場合は0、limitが0以下の場合はデフォルト値に正規化します。
func (u *ItemUsecase) ListItems(ctx context.Context, ownerID uint, skip, limit int) ([]entity.Item, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	return u.repo.ListByOwner(ctx, ownerID, skip, limit)
}

// GetItem は所有者に属する単一のアイテムを返します。
func (u *ItemUsecase) GetItem(ctx context.Context, ownerID, id uint) (*entity.Item, error) {
	return u.repo.FindByID(ctx, ownerID, id)
}

// UpdateItem は所有者に属するアイテムのタイトルと説明を置き換えます。
func (u *ItemUsecase) UpdateItem(ctx context.Context, ownerID, id uint, title, description string) (*entity.Item, error) {
	item, err := u.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	item.Title = title
	item.Description = description
	if err := u.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem は所有者に属するアイテムを削除します。
func (u *ItemUsecase) DeleteItem(ctx context.Context, ownerID, id uint) error {
	return u.repo.Delete(ctx, ownerID, id)
}
