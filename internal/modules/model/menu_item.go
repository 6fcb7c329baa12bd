package model

type MenuItem struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:text;not null" json:"name"`

	// MenuItem <-> Product, many-to-many through menu_item_products.
	AssociatedProducts []Product `gorm:"many2many:menu_item_products;joinForeignKey:MenuItemID;joinReferences:ProductID" json:"-"`
}

func (MenuItem) TableName() string { return "menu_items" }

// MenuItemProduct is the join entity behind the MenuItem <-> Product
// many-to-many. Its compound primary key rejects duplicate pairs.
type MenuItemProduct struct {
	MenuItemID int `gorm:"primaryKey;autoIncrement:false" json:"menu_item_id"`
	ProductID  int `gorm:"primaryKey;autoIncrement:false" json:"product_id"`
}

func (MenuItemProduct) TableName() string { return "menu_item_products" }
