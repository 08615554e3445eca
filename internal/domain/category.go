package domain

type ProductCategory struct {
	ID           int64  `json:"id"`
	CategoryName string `json:"categoryName"`
}
