package domain

import "time"

type ProductCategory string

const (
	CategoryKayak     ProductCategory = "kayak"
	CategoryBoat      ProductCategory = "boat"
	CategorySUP       ProductCategory = "sup"
	CategoryAccessory ProductCategory = "accessory"
)

func ValidProductCategory(c ProductCategory) bool {
	switch c {
	case CategoryKayak, CategoryBoat, CategorySUP, CategoryAccessory:
		return true
	}
	return false
}

// TypeKind distinguishes the category-specific type tables of the catalog
// (article types for accessories, kayak/boat/sup types for craft).
type TypeKind string

const (
	KindArticle TypeKind = "article"
	KindKayak   TypeKind = "kayak"
	KindBoat    TypeKind = "boat"
	KindSUP     TypeKind = "sup"
)

func ValidTypeKind(k TypeKind) bool {
	switch k {
	case KindArticle, KindKayak, KindBoat, KindSUP:
		return true
	}
	return false
}

type ProductType struct {
	ID      uint64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Kind    TypeKind `json:"kind" gorm:"type:enum('article','kayak','boat','sup');not null;uniqueIndex:idx_type_kind_name"`
	Name    string   `json:"name" gorm:"not null;size:100;uniqueIndex:idx_type_kind_name"`
	MainUse string   `json:"mainUse" gorm:"size:255"`

	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

type Product struct {
	ID          uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string          `json:"name" gorm:"not null;size:255;index"`
	Description string          `json:"description" gorm:"type:text"`
	Image       string          `json:"image,omitempty" gorm:"type:text"`
	Price       float64         `json:"price" gorm:"not null"`
	Stock       int             `json:"stock" gorm:"not null;default:0"`
	SoldCount   int             `json:"soldCount" gorm:"not null;default:0"`
	Approved    bool            `json:"approved" gorm:"not null;default:false"`
	Category    ProductCategory `json:"category" gorm:"type:enum('kayak','boat','sup','accessory');not null"`

	TypeID *uint64      `json:"typeId,omitempty" gorm:"index"`
	Type   *ProductType `json:"type,omitempty" gorm:"foreignKey:TypeID"`

	SellerID   *uint64 `json:"sellerId,omitempty" gorm:"index"`
	SellerName string  `json:"sellerName,omitempty" gorm:"size:100"`

	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
