package model

const TableNameVendorOffer = "vendor_offers"

type VendorOffer struct {
	ID            int64  `gorm:"column:id;primaryKey;autoIncrement:true" json:"id"`
	VendorID      string `gorm:"column:vendor_id;not null" json:"vendor_id"`
	Item          string `gorm:"column:item;not null" json:"item"`
	Price         int64  `gorm:"column:price;not null" json:"price"`
	Stock         int64  `gorm:"column:stock;not null" json:"stock"`
	InfiniteStock bool   `gorm:"column:infinite_stock;not null" json:"infinite_stock"`
}

func (*VendorOffer) TableName() string { return TableNameVendorOffer }
