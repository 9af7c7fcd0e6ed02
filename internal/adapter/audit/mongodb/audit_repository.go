// Package mongodb stores administrative override records in MongoDB.
// It backs AUDIT_BACKEND=mongo.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/simaogato/transferauth/internal/domain"
)

// CollectionName is the collection holding override records
const CollectionName = "transfer_overrides"

// auditDocument is the stored shape of an AuditEntry
type auditDocument struct {
	ID         string    `bson:"_id"`
	TransferID *string   `bson:"transfer_id,omitempty"`
	OwnerID    string    `bson:"owner_id"`
	Action     string    `bson:"action"`
	Actor      string    `bson:"actor"`
	Reason     string    `bson:"reason,omitempty"`
	CreatedAt  time.Time `bson:"created_at"`
}

func toDocument(entry *domain.AuditEntry) auditDocument {
	doc := auditDocument{
		ID:        entry.ID.String(),
		OwnerID:   entry.OwnerID.String(),
		Action:    string(entry.Action),
		Actor:     entry.Actor,
		Reason:    entry.Reason,
		CreatedAt: entry.CreatedAt.UTC(),
	}
	if entry.TransferID != nil {
		id := entry.TransferID.String()
		doc.TransferID = &id
	}
	return doc
}

// AuditRepository implements domain.AuditRepository on a Mongo collection.
// Writes are not part of the SQL transaction of the operation recording them.
type AuditRepository struct {
	collection *mongo.Collection
}

// NewAuditRepository creates a repository on dbName
func NewAuditRepository(client *mongo.Client, dbName string) *AuditRepository {
	return &AuditRepository{collection: client.Database(dbName).Collection(CollectionName)}
}

// Connect opens a client for uri and verifies it with a ping
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the lookup indexes used by operators
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "transfer_id", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create audit indexes: %w", err)
	}
	return nil
}

// Record inserts entry
func (r *AuditRepository) Record(ctx context.Context, entry *domain.AuditEntry) error {
	if _, err := r.collection.InsertOne(ctx, toDocument(entry)); err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}
	return nil
}

var _ domain.AuditRepository = (*AuditRepository)(nil)
