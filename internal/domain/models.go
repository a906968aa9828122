package domain

type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Favorite struct {
	UserID    int `json:"user_id"`
	ProductID int `json:"product_id"`
}
