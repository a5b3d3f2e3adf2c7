package common

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type viewerKey struct{}

// WithViewer stores the authenticated viewer id on ctx.
func WithViewer(ctx context.Context, viewerID string) context.Context {
	return context.WithValue(ctx, viewerKey{}, viewerID)
}

// ViewerFromContext returns the viewer id injected by the auth interceptors.
func ViewerFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(viewerKey{}).(string)
	return id, ok && id != ""
}

// BearerToken extracts <token> from "Bearer <token>".
func BearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", false
	}
	return parts[1], true
}

func authenticate(ctx context.Context, v *TokenValidator) (context.Context, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing metadata")
	}
	vals := md["authorization"]
	if len(vals) == 0 {
		return nil, status.Error(codes.Unauthenticated, "authorization required")
	}
	tokenString, ok := BearerToken(vals[0])
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "invalid auth header")
	}
	claims, err := v.Validate(tokenString)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
	}
	return WithViewer(ctx, claims.ViewerID), nil
}

// AuthInterceptor validates the bearer token and injects the viewer id.
func AuthInterceptor(v *TokenValidator) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		ctx, err := authenticate(ctx, v)
		if err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

type authedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authedStream) Context() context.Context { return s.ctx }

func StreamAuthInterceptor(v *TokenValidator) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx, err := authenticate(ss.Context(), v)
		if err != nil {
			return err
		}
		return handler(srv, &authedStream{ServerStream: ss, ctx: ctx})
	}
}
