package firestore

import (
	"context"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type chatRepository struct {
	client *firestore.Client
}

// NewChatRepository creates a Firestore-backed chat repository.
func NewChatRepository(client *firestore.Client) repository.ChatRepository {
	return &chatRepository{client: client}
}

// FindByID retrieves a single chat document by ID.
func (r *chatRepository) FindByID(ctx context.Context, id string) (*entity.Chat, error) {
	snap, err := r.client.Collection(chatsCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, repository.ErrChatNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get chat document")
	}

	data := snap.Data()

	return &entity.Chat{
		ID:           snap.Ref.ID,
		Name:         stringField(data, "name"),
		Participants: stringSliceField(data, "participants"),
	}, nil
}
