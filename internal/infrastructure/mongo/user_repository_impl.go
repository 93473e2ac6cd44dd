package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/srikanthravipati27/environment-hub/internal/domain/entity"
	"github.com/srikanthravipati27/environment-hub/internal/domain/repository"
)

const usersCollection = "users"

// Index names created by db/migrations; used to tell duplicate-key errors apart.
const (
	emailIndexName    = "users_email_unique"
	userNameIndexName = "users_userName_unique"
)

type userDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	UserName string             `bson:"userName"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
}

func (d userDocument) toEntity() *entity.User {
	return &entity.User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		UserName:     d.UserName,
		Email:        d.Email,
		PasswordHash: d.Password,
	}
}

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	doc := userDocument{
		Name:     u.Name,
		UserName: u.UserName,
		Email:    u.Email,
		Password: u.PasswordHash,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return duplicateKind(err)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid.Hex()
	}
	return nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, bson.M{"email": email})
}

func (r *UserRepository) ExistsByUserName(ctx context.Context, userName string) (bool, error) {
	return r.exists(ctx, bson.M{"userName": userName})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) GetByUserName(ctx context.Context, userName string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"userName": userName})
}

func (r *UserRepository) exists(ctx context.Context, filter bson.M) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return n > 0, nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var doc userDocument
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toEntity(), nil
}

// duplicateKind maps a duplicate-key write error to the violated field.
func duplicateKind(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, userNameIndexName):
		return repository.ErrDuplicateUserName
	case strings.Contains(msg, emailIndexName):
		return repository.ErrDuplicateEmail
	default:
		return fmt.Errorf("insert user: %w", err)
	}
}

var _ repository.UserRepository = (*UserRepository)(nil)
