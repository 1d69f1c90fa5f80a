package repository

import (
	"canteen-system/internal/domain"
)

type MenuRepositoryInterface interface {
	GetMenu() []domain.MenuItem
	GetItem(id int) (domain.MenuItem, bool)
}

// MenuRepository serves read-only reference data. Orders snapshot item name
// and price at creation, so edits here never rewrite order history.
type MenuRepository struct {
	items []domain.MenuItem
}

func NewMenuRepository() *MenuRepository {
	return &MenuRepository{items: seedMenu()}
}

func (mr *MenuRepository) GetMenu() []domain.MenuItem {
	return append([]domain.MenuItem(nil), mr.items...)
}

func (mr *MenuRepository) GetItem(id int) (domain.MenuItem, bool) {
	for _, it := range mr.items {
		if it.ID == id {
			return it, true
		}
	}
	return domain.MenuItem{}, false
}

func seedMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: 1, CategoryID: 1, Name: "招牌牛肉飯", Description: "特製醬汁配上嫩滑牛肉", Price: 58, Available: true, ImageURL: "beef-rice.png"},
		{ID: 2, CategoryID: 1, Name: "日式咖哩雞飯", Description: "香濃咖哩", Price: 52, Available: true, ImageURL: "fry chicken.png"},
		{ID: 3, CategoryID: 2, Name: "炸雞軟骨", Description: "佐酒一流", Price: 28, Available: true, ImageURL: "curry-chicken.png"},
		{ID: 4, CategoryID: 3, Name: "凍檸茶", Description: "茶餐廳經典", Price: 18, Available: true, ImageURL: "ice tea.png"},
	}
}
