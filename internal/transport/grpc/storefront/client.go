package storefront

import (
	"context"
	"errors"
	"io"

	"google.golang.org/grpc"
)

// Client calls the storefront service over the json content-subtype.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func invoke[Req, Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in *Req, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListProducts(ctx context.Context, in *ListProductsRequest) (*ListProductsReply, error) {
	return invoke[ListProductsRequest, ListProductsReply](ctx, c.cc, "ListProducts", in)
}

func (c *Client) ListAdminProducts(ctx context.Context, in *ListProductsRequest) (*ListProductsReply, error) {
	return invoke[ListProductsRequest, ListProductsReply](ctx, c.cc, "ListAdminProducts", in)
}

func (c *Client) GetProduct(ctx context.Context, in *GetProductRequest) (*GetProductReply, error) {
	return invoke[GetProductRequest, GetProductReply](ctx, c.cc, "GetProduct", in)
}

func (c *Client) CreateProduct(ctx context.Context, in *CreateProductRequest) (*CreateProductReply, error) {
	return invoke[CreateProductRequest, CreateProductReply](ctx, c.cc, "CreateProduct", in)
}

func (c *Client) UpdateProduct(ctx context.Context, in *UpdateProductRequest) (*Empty, error) {
	return invoke[UpdateProductRequest, Empty](ctx, c.cc, "UpdateProduct", in)
}

func (c *Client) DeleteProduct(ctx context.Context, in *DeleteProductRequest) (*Empty, error) {
	return invoke[DeleteProductRequest, Empty](ctx, c.cc, "DeleteProduct", in)
}

func (c *Client) AddToCart(ctx context.Context, in *CartItemRequest) (*Empty, error) {
	return invoke[CartItemRequest, Empty](ctx, c.cc, "AddToCart", in)
}

func (c *Client) RemoveFromCart(ctx context.Context, in *CartItemRequest) (*Empty, error) {
	return invoke[CartItemRequest, Empty](ctx, c.cc, "RemoveFromCart", in)
}

func (c *Client) ResetCart(ctx context.Context) (*Empty, error) {
	return invoke[Empty, Empty](ctx, c.cc, "ResetCart", &Empty{})
}

func (c *Client) GetCart(ctx context.Context) (*GetCartReply, error) {
	return invoke[Empty, GetCartReply](ctx, c.cc, "GetCart", &Empty{})
}

func (c *Client) Checkout(ctx context.Context) (*CheckoutReply, error) {
	return invoke[Empty, CheckoutReply](ctx, c.cc, "Checkout", &Empty{})
}

func (c *Client) ListOrders(ctx context.Context) (*ListOrdersReply, error) {
	return invoke[Empty, ListOrdersReply](ctx, c.cc, "ListOrders", &Empty{})
}

func (c *Client) GetOrder(ctx context.Context, in *GetOrderRequest) (*GetOrderReply, error) {
	return invoke[GetOrderRequest, GetOrderReply](ctx, c.cc, "GetOrder", in)
}

// GetInvoice receives the whole invoice stream and returns the first chunk's
// header with Data holding the concatenated document.
func (c *Client) GetInvoice(ctx context.Context, in *GetInvoiceRequest) (*InvoiceChunk, error) {
	stream, err := c.cc.NewStream(ctx, &ServiceDesc.Streams[0], fullMethod("GetInvoice"), grpc.CallContentSubtype(CodecName))
	if err != nil {
		return nil, err
	}
	if err := stream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := stream.CloseSend(); err != nil {
		return nil, err
	}

	var out *InvoiceChunk
	for {
		chunk := new(InvoiceChunk)
		err := stream.RecvMsg(chunk)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if out == nil {
			out = chunk
			continue
		}
		out.Data = append(out.Data, chunk.Data...)
	}
	if out == nil {
		out = &InvoiceChunk{}
	}
	return out, nil
}
