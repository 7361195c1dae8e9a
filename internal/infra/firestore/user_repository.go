package firestore

import (
	"context"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type userRepository struct {
	client *firestore.Client
}

// NewUserRepository creates a Firestore-backed user repository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

// FindByID retrieves a single user document by ID.
func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	snap, err := r.client.Collection(usersCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user document")
	}

	return userFromDoc(snap.Ref.ID, snap.Data()), nil
}

// ListAll streams every user document.
func (r *userRepository) ListAll(ctx context.Context) ([]*entity.User, error) {
	iter := r.client.Collection(usersCollection).Documents(ctx)
	defer iter.Stop()

	var users []*entity.User
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan users collection")
		}
		users = append(users, userFromDoc(snap.Ref.ID, snap.Data()))
	}

	return users, nil
}

func userFromDoc(id string, data map[string]any) *entity.User {
	return &entity.User{
		ID:          id,
		DisplayName: stringField(data, "displayName"),
		FCMTokens:   stringSliceField(data, "fcmTokens"),
		Following:   stringSliceField(data, "following"),
	}
}
