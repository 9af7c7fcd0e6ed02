package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	transferauthv1 "github.com/simaogato/transferauth/internal/adapter/grpc/transferauth/v1"
)

// adminMethods require the admin token
var adminMethods = map[string]bool{
	transferauthv1.TransferAuthorityService_ForceValidate_FullMethodName: true,
	transferauthv1.TransferAuthorityService_Block_FullMethodName:         true,
	transferauthv1.TransferAuthorityService_Unblock_FullMethodName:       true,
	transferauthv1.TransferAuthorityService_UnblockUser_FullMethodName:   true,
}

// AuthInterceptor returns a gRPC unary server interceptor that validates
// the authorization token from request metadata.
// If the token is missing or unknown, it returns status.Unauthenticated.
// Admin methods only accept adminToken and answer status.PermissionDenied
// to the API token. The admin token is valid on every method.
func AuthInterceptor(apiToken, adminToken string) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		authHeaders := md.Get("authorization")
		if len(authHeaders) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing authorization header")
		}

		token := strings.TrimPrefix(authHeaders[0], "Bearer ")
		switch {
		case token == adminToken:
		case token == apiToken:
			if adminMethods[info.FullMethod] {
				return nil, status.Error(codes.PermissionDenied, "admin token required")
			}
		default:
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		return handler(ctx, req)
	}
}

// LoggingInterceptor logs every call with its status code and duration
func LoggingInterceptor(logger zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		event := logger.Info()
		if code == codes.Internal || code == codes.Unknown {
			event = logger.Error().Err(err)
		} else if err != nil {
			event = logger.Warn().Str("error", status.Convert(err).Message())
		}
		event.
			Str("method", info.FullMethod).
			Str("code", code.String()).
			Dur("duration", time.Since(start)).
			Msg("rpc handled")

		return resp, err
	}
}
