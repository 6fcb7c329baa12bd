package model

type Product struct {
	ID              int    `gorm:"primaryKey" json:"id"`
	Price           int    `gorm:"not null;check:price >= 0" json:"price"`
	NumberOfTickets int    `gorm:"not null" json:"number_of_tickets"`
	Name            string `gorm:"type:text;not null" json:"name"`
	Description     string `gorm:"type:text;not null" json:"description"`
	ExperienceWorth int    `gorm:"not null;default:0" json:"experience_worth"`
	Visible         bool   `gorm:"not null;default:true" json:"visible"`

	// Product <-> UserGroup, via the ProductUserGroup join entity.
	ProductUserGroups []ProductUserGroup `gorm:"foreignKey:ProductID" json:"-"`

	// Product <-> MenuItem, many-to-many through menu_item_products.
	EligibleMenuItems []MenuItem `gorm:"many2many:menu_item_products;joinForeignKey:ProductID;joinReferences:MenuItemID" json:"-"`
}

func (Product) TableName() string { return "products" }

// AvailableTo reports whether the product is purchasable by the group.
func (p *Product) AvailableTo(group UserGroup) bool {
	for _, pug := range p.ProductUserGroups {
		if pug.UserGroup == group {
			return true
		}
	}
	return false
}

// ProductUserGroup scopes a product to a user group. The compound primary
// key rejects duplicate (product, group) pairs at commit time.
type ProductUserGroup struct {
	ProductID int       `gorm:"primaryKey;autoIncrement:false" json:"product_id"`
	UserGroup UserGroup `gorm:"primaryKey;autoIncrement:false;type:smallint" json:"user_group"`

	Product *Product `gorm:"foreignKey:ProductID;references:ID" json:"-"`
}

func (ProductUserGroup) TableName() string { return "product_user_groups" }
