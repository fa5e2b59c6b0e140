package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const documentCollection = "site_documents"

type mongoDocument struct {
	Key       string `bson:"_id"`
	Payload   string `bson:"payload"`
	UpdatedAt int64  `bson:"updated_at"`
}

type MongoDBDocumentRepositoryImpl struct {
	db *mongo.Database
}

func CreateMongoDBDocumentRepository(db *mongo.Database) DocumentRepository {
	return &MongoDBDocumentRepositoryImpl{db: db}
}

func (r *MongoDBDocumentRepositoryImpl) GetDocument(ctx context.Context, key string) (doc []byte, err error) {
	var res mongoDocument

	err = r.db.Collection(documentCollection).FindOne(ctx, bson.D{{Key: "_id", Value: key}}).Decode(&res)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrDocumentNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetDocument").Msg("")
		return nil, fmt.Errorf("%w: %v", errs.ErrRemoteStore, err)
	}

	return []byte(res.Payload), nil
}

func (r *MongoDBDocumentRepositoryImpl) UpsertDocument(ctx context.Context, key string, doc []byte) (err error) {
	data := mongoDocument{Key: key, Payload: string(doc), UpdatedAt: time.Now().UnixMilli()}

	_, err = r.db.Collection(documentCollection).ReplaceOne(ctx, bson.D{{Key: "_id", Value: key}}, data, options.Replace().SetUpsert(true))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpsertDocument").Msg("")
		return fmt.Errorf("%w: %v", errs.ErrRemoteStore, err)
	}

	return nil
}

func (r *MongoDBDocumentRepositoryImpl) Close(ctx context.Context) (err error) {
	return r.db.Client().Disconnect(ctx)
}
