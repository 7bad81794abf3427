package storefront

import (
	"fmt"
	"strings"
)

func requireID(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", name)
	}
	return nil
}

func validateGetProduct(req *GetProductRequest) error {
	return requireID("product_id", req.ProductID)
}

func validateUpdateProduct(req *UpdateProductRequest) error {
	return requireID("product_id", req.ProductID)
}

func validateDeleteProduct(req *DeleteProductRequest) error {
	return requireID("product_id", req.ProductID)
}

func validateCartItem(req *CartItemRequest) error {
	return requireID("product_id", req.ProductID)
}

func validateGetOrder(req *GetOrderRequest) error {
	return requireID("order_id", req.OrderID)
}

func validateGetInvoice(req *GetInvoiceRequest) error {
	return requireID("order_id", req.OrderID)
}
