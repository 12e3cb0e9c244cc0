package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sopets-web/internal/domain/betaemails"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const BetaEmailsCollection = "beta_emails"

// códigos de servidor que significan "sin permiso"
var permissionCodes = []int{
	13, // Unauthorized
	18, // AuthenticationFailed
}

type betaEmailDoc struct {
	ID        string    `bson:"_id"`
	Email     string    `bson:"email"`
	CreatedAt time.Time `bson:"createdAt"`
	Source    string    `bson:"source"`
}

type BetaEmailsRepo struct {
	coll *mongo.Collection
}

func NewBetaEmailsRepo(db *mongo.Database) *BetaEmailsRepo {
	return &BetaEmailsRepo{coll: db.Collection(BetaEmailsCollection)}
}

// EnsureIndexes crea el índice por email (lookup de ExistsByEmail).
func (r *BetaEmailsRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("email_1").SetUnique(true),
	})
	return mapErr(err)
}

func (r *BetaEmailsRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	err := r.coll.FindOne(ctx, bson.M{"email": email}, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, mapErr(err)
	}
	return true, nil
}

// Create inserta el documento. Un duplicado (carrera entre dos submits) cuenta como guardado.
func (r *BetaEmailsRepo) Create(ctx context.Context, e betaemails.Email) error {
	_, err := r.coll.InsertOne(ctx, betaEmailDoc{
		ID:        e.ID,
		Email:     e.Email,
		CreatedAt: e.CreatedAt,
		Source:    e.Source,
	})
	if mongo.IsDuplicateKeyError(err) {
		return nil
	}
	return mapErr(err)
}

// mapErr traduce errores del driver a los sentinels de betaemails.
func mapErr(err error) error {
	if err == nil {
		return nil
	}

	var se mongo.ServerError
	if errors.As(err, &se) {
		for _, code := range permissionCodes {
			if se.HasErrorCode(code) {
				return fmt.Errorf("%w: %v", betaemails.ErrPermissionDenied, err)
			}
		}
	}

	switch {
	case mongo.IsNetworkError(err), mongo.IsTimeout(err):
		return fmt.Errorf("%w: %v", betaemails.ErrUnavailable, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", betaemails.ErrUnavailable, err)
	case errors.Is(err, mongo.ErrClientDisconnected):
		return fmt.Errorf("%w: %v", betaemails.ErrUnavailable, err)
	}
	return err
}
