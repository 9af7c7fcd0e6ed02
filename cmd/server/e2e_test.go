//go:build integration

package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	transferauthv1 "github.com/simaogato/transferauth/internal/adapter/grpc/transferauth/v1"
	"github.com/simaogato/transferauth/internal/config"
)

var (
	grpcClient transferauthv1.TransferAuthorityServiceClient
	ownerID    = uuid.MustParse("5f0c2a8e-0d43-4b7e-9a51-6b1c3f2e9d10")
)

// TestMain starts PostgreSQL and the full server, then runs the suite against it
func TestMain(m *testing.M) {
	os.Exit(runSuite(m))
}

func runSuite(m *testing.M) int {
	ctx := context.Background()

	// 1. Start Database
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("transferauth"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		panic(fmt.Sprintf("Failed to start postgres: %v", err))
	}
	defer func() { _ = container.Terminate(ctx) }()

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		panic(fmt.Sprintf("Failed to get connection string: %v", err))
	}

	// 2. Start Server
	cfg, err := config.FromEnv()
	if err != nil {
		panic(fmt.Sprintf("Failed to build config: %v", err))
	}
	cfg.GRPCAddr = freeAddr()
	cfg.StorageBackend = config.BackendPostgres
	cfg.DBConnStr = connStr
	cfg.SweepInterval = time.Second
	cfg.SeedAccounts = []config.SeedAccount{{ID: ownerID, Balance: decimal.NewFromInt(500)}}

	serverCtx, stopServer := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- run(serverCtx, cfg, zerolog.Nop()) }()
	defer func() {
		stopServer()
		<-done
	}()

	// 3. Connect to gRPC Server
	conn, err := grpc.NewClient(cfg.GRPCAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to gRPC server: %v", err))
	}
	defer conn.Close()
	grpcClient = transferauthv1.NewTransferAuthorityServiceClient(conn)

	return m.Run()
}

func freeAddr() string {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		panic(fmt.Sprintf("Failed to reserve port: %v", err))
	}
	defer lis.Close()
	return lis.Addr().String()
}

func authContext(token string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token), cancel
}

// TestEndToEndFlow tests the complete flow: Initiate -> Codes -> Validate -> Execute
func TestEndToEndFlow(t *testing.T) {
	ctx, cancel := authContext("dev-token")
	defer cancel()

	transfer, err := grpcClient.Initiate(ctx, &transferauthv1.InitiateTransferRequest{
		OwnerId:               ownerID.String(),
		DestinationAccountRef: "IBAN-PT50-0000",
		Amount:                "125.50",
		Description:           "Rent",
	}, grpc.WaitForReady(true))
	require.NoError(t, err, "Initiate should succeed")
	assert.Equal(t, "pending", transfer.Status)

	account, err := grpcClient.GetAccount(ctx, &transferauthv1.AccountRequest{OwnerId: ownerID.String()})
	require.NoError(t, err)
	assert.Equal(t, "374.5", account.Balance, "Amount should be held at initiation")

	for _, value := range []string{"sms-4821", "app-9931"} {
		_, err := grpcClient.AddCode(ctx, &transferauthv1.AddCodeRequest{TransferId: transfer.Id, Value: value})
		require.NoError(t, err)
	}

	for _, value := range []string{"sms-4821", "app-9931"} {
		result, err := grpcClient.ValidateCode(ctx, &transferauthv1.ValidateCodeRequest{TransferId: transfer.Id, Code: value})
		require.NoError(t, err)
		assert.True(t, result.Validated)
	}

	executed, err := grpcClient.Execute(ctx, &transferauthv1.TransferRequest{TransferId: transfer.Id})
	require.NoError(t, err)
	assert.Equal(t, "completed", executed.Status)

	_, err = grpcClient.Cancel(ctx, &transferauthv1.TransferRequest{TransferId: transfer.Id})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err), "Completed transfers cannot be cancelled")
}

// TestLockoutAndAdminUnblock tests the lock-out path and its admin recovery
func TestLockoutAndAdminUnblock(t *testing.T) {
	ctx, cancel := authContext("dev-token")
	defer cancel()
	adminCtx, adminCancel := authContext("dev-admin-token")
	defer adminCancel()

	transfer, err := grpcClient.Initiate(ctx, &transferauthv1.InitiateTransferRequest{
		OwnerId:               ownerID.String(),
		DestinationAccountRef: "IBAN-PT50-1111",
		Amount:                "10",
	}, grpc.WaitForReady(true))
	require.NoError(t, err)
	_, err = grpcClient.AddCode(ctx, &transferauthv1.AddCodeRequest{TransferId: transfer.Id, Value: "right"})
	require.NoError(t, err)

	var last *transferauthv1.ValidateCodeResponse
	for i := 0; i < 3; i++ {
		last, err = grpcClient.ValidateCode(ctx, &transferauthv1.ValidateCodeRequest{TransferId: transfer.Id, Code: "wrong"})
		require.NoError(t, err)
	}
	assert.True(t, last.Blocked)

	_, err = grpcClient.Initiate(ctx, &transferauthv1.InitiateTransferRequest{
		OwnerId:               ownerID.String(),
		DestinationAccountRef: "IBAN-PT50-2222",
		Amount:                "1",
	})
	assert.Equal(t, codes.PermissionDenied, status.Code(err), "Blocked owners cannot initiate")

	_, err = grpcClient.UnblockUser(ctx, &transferauthv1.UnblockUserRequest{OwnerId: ownerID.String(), Actor: "ops"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err), "API token cannot unblock")

	resp, err := grpcClient.UnblockUser(adminCtx, &transferauthv1.UnblockUserRequest{OwnerId: ownerID.String(), Actor: "ops", Reason: "identity confirmed"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), resp.Unblocked)

	result, err := grpcClient.ValidateCode(ctx, &transferauthv1.ValidateCodeRequest{TransferId: transfer.Id, Code: "right"})
	require.NoError(t, err)
	assert.True(t, result.AllCodesValidated)
}
