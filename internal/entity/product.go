package entity

type Product struct {
	ID    string `json:"productID"`
	Name  string `json:"productName"`
	Model string `json:"productModel"`
}

// ProductFault is a known fault category a complaint can reference.
type ProductFault struct {
	ProductID string `json:"productID"`
	Fault     string `json:"fault"`
}
