package dto

import "github.com/princinho/sellerdashboard/models"

// SignupDTO is bound from a JSON or urlencoded body.
type SignupDTO struct {
	Email           Text `json:"email" form:"email" binding:"required"`
	BusinessName    Text `json:"businessName" form:"businessName" binding:"required"`
	Password        Text `json:"password" form:"password" binding:"required"`
	ConfirmPassword Text `json:"confirmPassword" form:"confirmPassword" binding:"required,eqfield=Password"`
}

// AddProductDTO has no required fields: whatever is absent stays absent.
type AddProductDTO struct {
	Category    Text     `json:"category" form:"category"`
	SubCategory Text     `json:"subCategory" form:"subCategory"`
	ProductName Text     `json:"productName" form:"productName"`
	MRP         Number   `json:"MRP" form:"MRP"`
	SP          Number   `json:"SP" form:"SP"`
	QTY         Number   `json:"QTY" form:"QTY"`
	Images      TextList `json:"images" form:"images"`
}

func (d AddProductDTO) ToProduct() models.Product {
	return models.Product{
		Category:    string(d.Category),
		SubCategory: string(d.SubCategory),
		ProductName: string(d.ProductName),
		MRP:         d.MRP.Value,
		SP:          d.SP.Value,
		QTY:         d.QTY.Value,
		Images:      []string(d.Images),
	}
}
