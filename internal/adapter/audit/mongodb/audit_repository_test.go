package mongodb

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/simaogato/transferauth/internal/domain"
)

func TestToDocument(t *testing.T) {
	transferID := uuid.New()
	created := time.Date(2026, 3, 2, 11, 0, 0, 0, time.FixedZone("CET", 3600))

	tests := []struct {
		name  string
		entry domain.AuditEntry
		check func(t *testing.T, doc auditDocument)
	}{
		{
			name: "Transfer override keeps the transfer reference",
			entry: domain.AuditEntry{
				ID:         uuid.New(),
				TransferID: &transferID,
				OwnerID:    uuid.New(),
				Action:     domain.AuditActionForceValidate,
				Actor:      "ops",
				Reason:     "customer called",
				CreatedAt:  created,
			},
			check: func(t *testing.T, doc auditDocument) {
				require.NotNil(t, doc.TransferID)
				assert.Equal(t, transferID.String(), *doc.TransferID)
				assert.Equal(t, "force_validate", doc.Action)
				assert.Equal(t, time.UTC, doc.CreatedAt.Location())
			},
		},
		{
			name: "User-wide override has no transfer",
			entry: domain.AuditEntry{
				ID:      uuid.New(),
				OwnerID: uuid.New(),
				Action:  domain.AuditActionUnblockUser,
				Actor:   "ops",
			},
			check: func(t *testing.T, doc auditDocument) {
				assert.Nil(t, doc.TransferID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := toDocument(&tt.entry)
			assert.Equal(t, tt.entry.ID.String(), doc.ID)
			tt.check(t, doc)

			raw, err := bson.Marshal(doc)
			require.NoError(t, err)

			var decoded bson.M
			require.NoError(t, bson.Unmarshal(raw, &decoded))
			assert.Equal(t, tt.entry.OwnerID.String(), decoded["owner_id"])
			_, hasTransfer := decoded["transfer_id"]
			assert.Equal(t, tt.entry.TransferID != nil, hasTransfer)
		})
	}
}
