package grpc

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	transferauthv1 "github.com/simaogato/transferauth/internal/adapter/grpc/transferauth/v1"
	"github.com/simaogato/transferauth/internal/domain"
	"github.com/simaogato/transferauth/internal/usecase/authority"
)

func toTransferMessage(t *domain.Transfer) *transferauthv1.Transfer {
	msg := &transferauthv1.Transfer{
		Id:                    t.ID.String(),
		OwnerId:               t.OwnerID.String(),
		DestinationAccountRef: t.DestinationAccountRef,
		Amount:                t.Amount.String(),
		Description:           t.Description,
		Status:                string(t.Status),
		CurrentCodeIndex:      int32(t.CurrentCodeIndex),
		FailedAttemptsTotal:   int32(t.FailedAttemptsTotal),
		IsAccountBlocked:      t.IsAccountBlocked,
		CreatedAt:             timestamppb.New(t.CreatedAt),
		UpdatedAt:             timestamppb.New(t.UpdatedAt),
		ExpiresAt:             timestamppb.New(t.ExpiresAt),
	}
	if t.ExecutedAt != nil {
		msg.ExecutedAt = timestamppb.New(*t.ExecutedAt)
	}
	return msg
}

func toCodeMessage(c *domain.VerificationCode) *transferauthv1.VerificationCode {
	msg := &transferauthv1.VerificationCode{
		Id:             c.ID.String(),
		TransferId:     c.TransferID.String(),
		Order:          int32(c.Order),
		Label:          c.Label,
		Status:         string(c.Status),
		FailedAttempts: int32(c.FailedAttempts),
		CreatedAt:      timestamppb.New(c.CreatedAt),
	}
	if c.ValidatedAt != nil {
		msg.ValidatedAt = timestamppb.New(*c.ValidatedAt)
	}
	if c.ExpiresAt != nil {
		msg.ExpiresAt = timestamppb.New(*c.ExpiresAt)
	}
	return msg
}

func toTransferView(view *authority.TransferView) *transferauthv1.Transfer {
	msg := toTransferMessage(view.Transfer)
	msg.Codes = make([]*transferauthv1.VerificationCode, 0, len(view.Codes))
	for _, c := range view.Codes {
		msg.Codes = append(msg.Codes, toCodeMessage(c))
	}
	return msg
}

func toAttemptMessage(a *domain.AttemptLog) *transferauthv1.Attempt {
	msg := &transferauthv1.Attempt{
		Id:        a.ID.String(),
		CodeId:    a.CodeID.String(),
		Succeeded: a.Succeeded,
		Timestamp: timestamppb.New(a.Timestamp),
	}
	if a.ClientIP != nil {
		msg.ClientIp = *a.ClientIP
	}
	if a.ClientAgent != nil {
		msg.ClientAgent = *a.ClientAgent
	}
	return msg
}
