package entity

type Plan struct {
	ID          string  `json:"planID"`
	Name        string  `json:"planName"`
	Cost        float64 `json:"cost"`
	Description string  `json:"description"`
}

// PlanProduct is a product name bundled into a rental plan.
type PlanProduct struct {
	PlanID      string `json:"planID"`
	ProductName string `json:"productName"`
}
