package models

// User is the sole persisted entity. The ID is assigned by the store on
// insert and never changes or gets reused; Email is unique across all rows.
type User struct {
	ID      int64  `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Country string `json:"country"`
}
