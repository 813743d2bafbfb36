package models

import (
	"github.com/foodcourt/backend/internal/domain/catalog"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// FoodItemModel is the persistence model for the FoodItem domain entity.
type FoodItemModel struct {
	BaseModel
	Name         string          `gorm:"type:varchar(255);not null"`
	Description  string          `gorm:"type:text"`
	Price        decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ImageURL     string          `gorm:"type:varchar(2048)"`
	AvailableQty int             `gorm:"not null;default:0;check:available_qty >= 0"`
	IsActive     bool            `gorm:"not null;default:true;index"`
	Restrictions pq.StringArray  `gorm:"type:text[]"`
}

// TableName returns the table name for GORM
func (FoodItemModel) TableName() string {
	return "food_items"
}

// ToDomain converts the persistence model to a domain FoodItem entity.
func (m *FoodItemModel) ToDomain() *catalog.FoodItem {
	restrictions := []string(m.Restrictions)
	if restrictions == nil {
		restrictions = []string{}
	}
	return &catalog.FoodItem{
		BaseEntity:   m.BaseModel.ToDomain(),
		Name:         m.Name,
		Description:  m.Description,
		Price:        m.Price,
		ImageURL:     m.ImageURL,
		AvailableQty: m.AvailableQty,
		IsActive:     m.IsActive,
		Restrictions: restrictions,
	}
}

// FromDomain populates the persistence model from a domain FoodItem entity.
func (m *FoodItemModel) FromDomain(f *catalog.FoodItem) {
	m.FromDomainBaseEntity(f.BaseEntity)
	m.Name = f.Name
	m.Description = f.Description
	m.Price = f.Price
	m.ImageURL = f.ImageURL
	m.AvailableQty = f.AvailableQty
	m.IsActive = f.IsActive
	m.Restrictions = pq.StringArray(f.Restrictions)
}

// FoodItemModelFromDomain creates a new persistence model from a domain FoodItem entity.
func FoodItemModelFromDomain(f *catalog.FoodItem) *FoodItemModel {
	m := &FoodItemModel{}
	m.FromDomain(f)
	return m
}
