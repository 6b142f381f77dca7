package domain

// Revenue rollups over COMPLETED orders.

type TopClient struct {
	Total  float64 `json:"total"`
	Client Client  `json:"client"`
}

type TopSeller struct {
	Total  float64 `json:"total"`
	Seller User    `json:"seller"`
}
