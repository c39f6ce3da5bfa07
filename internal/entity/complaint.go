package entity

import "time"

const (
	ComplaintOpen   = 0
	ComplaintClosed = 1
)

type Complaint struct {
	ID                string     `json:"complaintID"`
	UserID            string     `json:"userID"`
	ProductID         string     `json:"productID"`
	Faults            string     `json:"faults"`
	ProblemDesc       string     `json:"probDesc"`
	DateOfComplaint   time.Time  `json:"dateOfComplaint"`
	DateOfMaintenance *time.Time `json:"dateOfMaintenance,omitempty"`
	Status            int        `json:"status"` // 0 open, 1 closed
	Cost              float64    `json:"cost"`
}
