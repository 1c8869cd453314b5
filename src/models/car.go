package models

// Car is read-mostly reference data owned by the fleet admin side.
type Car struct {
	ID    uint    `gorm:"primarykey" json:"id"`
	Brand string  `json:"brand"`
	Model string  `json:"model"`
	Image []byte  `json:"-"`
	Price float64 `json:"price"`
}
