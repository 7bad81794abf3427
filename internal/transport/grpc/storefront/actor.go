package storefront

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// UserIDHeader carries the authenticated user id, set by the edge in front of
// this service.
const UserIDHeader = "x-user-id"

func actorFrom(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, UserIDHeader+" metadata is required")
	}
	for _, v := range md.Get(UserIDHeader) {
		if v = strings.TrimSpace(v); v != "" {
			return v, nil
		}
	}
	return "", status.Error(codes.Unauthenticated, UserIDHeader+" metadata is required")
}

// WithUser attaches userID to an outgoing call.
func WithUser(ctx context.Context, userID string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, UserIDHeader, userID)
}
