package models

import "go.mongodb.org/mongo-driver/v2/bson"

type StoreInfo struct {
	Address      string `bson:"address,omitempty" json:"address,omitempty"`
	GST          string `bson:"gst,omitempty" json:"gst,omitempty"`
	Logo         string `bson:"logo,omitempty" json:"logo,omitempty"`
	StoreTimings string `bson:"storeTimings,omitempty" json:"storeTimings,omitempty"`
}

// Product is an inventory line embedded in a seller document. Every field is
// optional; numbers are pointers so that an absent value stays absent.
type Product struct {
	Category    string   `bson:"category,omitempty" json:"category,omitempty"`
	SubCategory string   `bson:"subCategory,omitempty" json:"subCategory,omitempty"`
	ProductName string   `bson:"productName,omitempty" json:"productName,omitempty"`
	MRP         *float64 `bson:"MRP,omitempty" json:"MRP,omitempty"`
	SP          *float64 `bson:"SP,omitempty" json:"SP,omitempty"`
	QTY         *float64 `bson:"QTY,omitempty" json:"QTY,omitempty"`
	Images      []string `bson:"images" json:"images"`
}

type Seller struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email        string        `bson:"email" json:"email"`
	BusinessName string        `bson:"businessName" json:"businessName"`
	Password     string        `bson:"password" json:"password"` // stored and returned verbatim
	StoreInfo    *StoreInfo    `bson:"storeInfo,omitempty" json:"storeInfo,omitempty"`
	Products     []Product     `bson:"products" json:"products"`
}

func NewSeller(email, businessName, password string) *Seller {
	return &Seller{
		Email:        email,
		BusinessName: businessName,
		Password:     password,
		Products:     []Product{},
	}
}

// AppendProduct adds p at the end of the inventory. No id is generated and
// duplicates are kept.
func (s *Seller) AppendProduct(p Product) {
	if p.Images == nil {
		p.Images = []string{}
	}
	s.Products = append(s.Products, p)
}

// Normalize replaces nil slices with empty ones so the document always
// serializes products and images as arrays.
func (s *Seller) Normalize() {
	if s.Products == nil {
		s.Products = []Product{}
	}
	for i := range s.Products {
		if s.Products[i].Images == nil {
			s.Products[i].Images = []string{}
		}
	}
}
