package storefront

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "storefront.v1.StorefrontService"

// StorefrontServer is the server API of the storefront service.
type StorefrontServer interface {
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsReply, error)
	ListAdminProducts(context.Context, *ListProductsRequest) (*ListProductsReply, error)
	GetProduct(context.Context, *GetProductRequest) (*GetProductReply, error)
	CreateProduct(context.Context, *CreateProductRequest) (*CreateProductReply, error)
	UpdateProduct(context.Context, *UpdateProductRequest) (*Empty, error)
	DeleteProduct(context.Context, *DeleteProductRequest) (*Empty, error)
	AddToCart(context.Context, *CartItemRequest) (*Empty, error)
	RemoveFromCart(context.Context, *CartItemRequest) (*Empty, error)
	ResetCart(context.Context, *Empty) (*Empty, error)
	GetCart(context.Context, *Empty) (*GetCartReply, error)
	Checkout(context.Context, *Empty) (*CheckoutReply, error)
	ListOrders(context.Context, *Empty) (*ListOrdersReply, error)
	GetOrder(context.Context, *GetOrderRequest) (*GetOrderReply, error)
	GetInvoice(*GetInvoiceRequest, InvoiceStream) error
}

// InvoiceStream is the server side of the GetInvoice stream.
type InvoiceStream interface {
	Context() context.Context
	Send(*InvoiceChunk) error
}

// RegisterStorefrontServer registers srv on s.
func RegisterStorefrontServer(s grpc.ServiceRegistrar, srv StorefrontServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// unary builds the method descriptor for one request/response call.
func unary[Req, Resp any](method string, call func(StorefrontServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(StorefrontServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(method)}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(StorefrontServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

type invoiceServerStream struct {
	grpc.ServerStream
}

func (s *invoiceServerStream) Send(c *InvoiceChunk) error {
	return s.ServerStream.SendMsg(c)
}

func getInvoiceHandler(srv interface{}, stream grpc.ServerStream) error {
	in := new(GetInvoiceRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(StorefrontServer).GetInvoice(in, &invoiceServerStream{stream})
}

// ServiceDesc describes storefront.v1.StorefrontService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StorefrontServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("ListProducts", StorefrontServer.ListProducts),
		unary("ListAdminProducts", StorefrontServer.ListAdminProducts),
		unary("GetProduct", StorefrontServer.GetProduct),
		unary("CreateProduct", StorefrontServer.CreateProduct),
		unary("UpdateProduct", StorefrontServer.UpdateProduct),
		unary("DeleteProduct", StorefrontServer.DeleteProduct),
		unary("AddToCart", StorefrontServer.AddToCart),
		unary("RemoveFromCart", StorefrontServer.RemoveFromCart),
		unary("ResetCart", StorefrontServer.ResetCart),
		unary("GetCart", StorefrontServer.GetCart),
		unary("Checkout", StorefrontServer.Checkout),
		unary("ListOrders", StorefrontServer.ListOrders),
		unary("GetOrder", StorefrontServer.GetOrder),
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "GetInvoice",
			Handler:       getInvoiceHandler,
			ServerStreams: true,
		},
	},
}
