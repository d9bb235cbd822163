package response

import "gleamshop/internal/usecase/queries"

type ProductListResponse struct {
	Products []*queries.ProductListItem `json:"products"`
}

type ProductDetailResponse struct {
	Product *queries.ProductView       `json:"product"`
	Related []*queries.ProductListItem `json:"related"`
}
