package grpc

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	transferauthv1 "github.com/simaogato/transferauth/internal/adapter/grpc/transferauth/v1"
	"github.com/simaogato/transferauth/internal/domain"
	"github.com/simaogato/transferauth/internal/usecase/authority"
)

// Server implements the TransferAuthorityService gRPC server
type Server struct {
	transferauthv1.UnimplementedTransferAuthorityServiceServer

	Authority *authority.TransferAuthority
}

// NewServer creates a new gRPC server instance
func NewServer(transferAuthority *authority.TransferAuthority) *Server {
	return &Server{
		Authority: transferAuthority,
	}
}

var _ transferauthv1.TransferAuthorityServiceServer = (*Server)(nil)

// Initiate handles the Initiate RPC
func (s *Server) Initiate(ctx context.Context, req *transferauthv1.InitiateTransferRequest) (*transferauthv1.Transfer, error) {
	ownerID, err := parseID("owner_id", req.OwnerId)
	if err != nil {
		return nil, err
	}

	// Parse amount from string to decimal
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount format: %v", err)
	}

	transfer, err := s.Authority.Initiate(ctx, authority.InitiateInput{
		OwnerID:               ownerID,
		DestinationAccountRef: req.DestinationAccountRef,
		Amount:                amount,
		Description:           req.Description,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return toTransferMessage(transfer), nil
}

// AddCode handles the AddCode RPC
func (s *Server) AddCode(ctx context.Context, req *transferauthv1.AddCodeRequest) (*transferauthv1.VerificationCode, error) {
	transferID, err := parseID("transfer_id", req.TransferId)
	if err != nil {
		return nil, err
	}

	code, err := s.Authority.AddCode(ctx, authority.AddCodeInput{
		TransferID: transferID,
		Label:      req.Label,
		Value:      req.Value,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return toCodeMessage(code), nil
}

// ValidateCode handles the ValidateCode RPC. A rejected code is a normal
// response; only refusals to compare are errors.
func (s *Server) ValidateCode(ctx context.Context, req *transferauthv1.ValidateCodeRequest) (*transferauthv1.ValidateCodeResponse, error) {
	transferID, err := parseID("transfer_id", req.TransferId)
	if err != nil {
		return nil, err
	}

	result, err := s.Authority.ValidateCode(ctx, transferID, req.Code, originFromContext(ctx))
	if err != nil {
		return nil, mapError(err)
	}

	return &transferauthv1.ValidateCodeResponse{
		Transfer:          toTransferMessage(result.Transfer),
		Validated:         result.Validated,
		RemainingAttempts: int32(result.RemainingAttempts),
		Blocked:           result.Blocked,
		AllCodesValidated: result.AllCodesValidated,
	}, nil
}

// Execute handles the Execute RPC
func (s *Server) Execute(ctx context.Context, req *transferauthv1.TransferRequest) (*transferauthv1.Transfer, error) {
	return s.transferCall(ctx, req.TransferId, s.Authority.ExecuteTransfer)
}

// Cancel handles the Cancel RPC
func (s *Server) Cancel(ctx context.Context, req *transferauthv1.TransferRequest) (*transferauthv1.Transfer, error) {
	return s.transferCall(ctx, req.TransferId, s.Authority.CancelTransfer)
}

// GetTransfer handles the GetTransfer RPC
func (s *Server) GetTransfer(ctx context.Context, req *transferauthv1.TransferRequest) (*transferauthv1.Transfer, error) {
	transferID, err := parseID("transfer_id", req.TransferId)
	if err != nil {
		return nil, err
	}

	view, err := s.Authority.GetTransfer(ctx, transferID)
	if err != nil {
		return nil, mapError(err)
	}

	return toTransferView(view), nil
}

// ListAttempts handles the ListAttempts RPC
func (s *Server) ListAttempts(ctx context.Context, req *transferauthv1.TransferRequest) (*transferauthv1.ListAttemptsResponse, error) {
	transferID, err := parseID("transfer_id", req.TransferId)
	if err != nil {
		return nil, err
	}

	attempts, err := s.Authority.ListAttempts(ctx, transferID)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &transferauthv1.ListAttemptsResponse{Attempts: make([]*transferauthv1.Attempt, 0, len(attempts))}
	for _, a := range attempts {
		resp.Attempts = append(resp.Attempts, toAttemptMessage(a))
	}
	return resp, nil
}

// GetAccount handles the GetAccount RPC
func (s *Server) GetAccount(ctx context.Context, req *transferauthv1.AccountRequest) (*transferauthv1.AccountResponse, error) {
	ownerID, err := parseID("owner_id", req.OwnerId)
	if err != nil {
		return nil, err
	}

	balance, err := s.Authority.Balance(ctx, ownerID)
	if err != nil {
		return nil, mapError(err)
	}
	blocked, err := s.Authority.IsUserBlocked(ctx, ownerID)
	if err != nil {
		return nil, mapError(err)
	}

	return &transferauthv1.AccountResponse{
		OwnerId: ownerID.String(),
		Balance: balance.String(),
		Blocked: blocked,
	}, nil
}

// ForceValidate handles the admin ForceValidate RPC
func (s *Server) ForceValidate(ctx context.Context, req *transferauthv1.AdminTransferRequest) (*transferauthv1.Transfer, error) {
	return s.adminCall(ctx, req, s.Authority.ForceValidateTransfer)
}

// Block handles the admin Block RPC
func (s *Server) Block(ctx context.Context, req *transferauthv1.AdminTransferRequest) (*transferauthv1.Transfer, error) {
	return s.adminCall(ctx, req, s.Authority.BlockTransfer)
}

// Unblock handles the admin Unblock RPC
func (s *Server) Unblock(ctx context.Context, req *transferauthv1.AdminTransferRequest) (*transferauthv1.Transfer, error) {
	return s.adminCall(ctx, req, s.Authority.UnblockTransfer)
}

// UnblockUser handles the admin UnblockUser RPC
func (s *Server) UnblockUser(ctx context.Context, req *transferauthv1.UnblockUserRequest) (*transferauthv1.UnblockUserResponse, error) {
	ownerID, err := parseID("owner_id", req.OwnerId)
	if err != nil {
		return nil, err
	}

	unblocked, err := s.Authority.UnblockUser(ctx, ownerID, authority.AdminAction{
		Actor:  req.Actor,
		Reason: req.Reason,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &transferauthv1.UnblockUserResponse{Unblocked: int32(unblocked)}, nil
}

func (s *Server) transferCall(
	ctx context.Context,
	rawID string,
	call func(context.Context, uuid.UUID) (*domain.Transfer, error),
) (*transferauthv1.Transfer, error) {
	transferID, err := parseID("transfer_id", rawID)
	if err != nil {
		return nil, err
	}

	transfer, err := call(ctx, transferID)
	if err != nil {
		return nil, mapError(err)
	}
	return toTransferMessage(transfer), nil
}

func (s *Server) adminCall(
	ctx context.Context,
	req *transferauthv1.AdminTransferRequest,
	call func(context.Context, uuid.UUID, authority.AdminAction) (*domain.Transfer, error),
) (*transferauthv1.Transfer, error) {
	transferID, err := parseID("transfer_id", req.TransferId)
	if err != nil {
		return nil, err
	}

	transfer, err := call(ctx, transferID, authority.AdminAction{Actor: req.Actor, Reason: req.Reason})
	if err != nil {
		return nil, mapError(err)
	}
	return toTransferMessage(transfer), nil
}

func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return id, nil
}

// originFromContext captures the caller's address and agent for attempt logs.
// A forwarding proxy's x-forwarded-for wins over the transport peer.
func originFromContext(ctx context.Context) domain.Origin {
	var origin domain.Origin

	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		origin.ClientIP = p.Addr.String()
		if host, _, err := net.SplitHostPort(origin.ClientIP); err == nil {
			origin.ClientIP = host
		}
	}

	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if fwd := md.Get("x-forwarded-for"); len(fwd) > 0 {
			if first := strings.TrimSpace(strings.Split(fwd[0], ",")[0]); first != "" {
				origin.ClientIP = first
			}
		}
		if agent := md.Get("user-agent"); len(agent) > 0 {
			origin.ClientAgent = agent[0]
		}
	}

	return origin
}

// mapError maps domain errors to gRPC status codes
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrAccountBlocked):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrTransferExpired),
		errors.Is(err, domain.ErrNoCurrentCode),
		errors.Is(err, domain.ErrInvalidTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrConcurrencyConflict):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	}

	// Default to Internal error for unknown errors
	return status.Error(codes.Internal, err.Error())
}
