package services

import (
	"context"
	"fmt"
	"io"
	"sort"
	"testing"
	"time"

	"easyrent-backend/internal/filters"
	"easyrent-backend/internal/models"
	"easyrent-backend/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMain(m *testing.M) {
	logger.InitLogger(io.Discard, "ERROR")
	m.Run()
}

type fakePropertyRepo struct {
	properties map[string]models.Property
	searched   []filters.Predicate
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{properties: make(map[string]models.Property)}
}

func (f *fakePropertyRepo) FindByID(_ context.Context, id string) (*models.Property, error) {
	property, ok := f.properties[id]
	if !ok {
		return nil, nil
	}
	return &property, nil
}

func (f *fakePropertyRepo) FindWithPagination(_ context.Context, offset, limit int) ([]models.Property, int64, error) {
	ids := make([]string, 0, len(f.properties))
	for id := range f.properties {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var page []models.Property
	for i := offset; i < len(ids) && i < offset+limit; i++ {
		page = append(page, f.properties[ids[i]])
	}
	return page, int64(len(f.properties)), nil
}

func (f *fakePropertyRepo) Search(_ context.Context, predicate filters.Predicate) ([]models.Property, error) {
	f.searched = append(f.searched, predicate)
	all := make([]models.Property, 0, len(f.properties))
	for _, property := range f.properties {
		all = append(all, property)
	}
	return all, nil
}

func (f *fakePropertyRepo) Create(_ context.Context, property *models.Property) error {
	if property.ID.IsZero() {
		property.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	property.CreatedAt = now
	property.UpdatedAt = now
	f.properties[property.ID.Hex()] = *property
	return nil
}

func (f *fakePropertyRepo) Update(_ context.Context, property *models.Property) error {
	id := property.ID.Hex()
	if _, ok := f.properties[id]; !ok {
		return fmt.Errorf("property not found")
	}
	f.properties[id] = *property
	return nil
}

func (f *fakePropertyRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.properties[id]; !ok {
		return fmt.Errorf("property not found")
	}
	delete(f.properties, id)
	return nil
}

type noopCache struct{}

func (noopCache) GetProperty(context.Context, string) (*models.Property, error) { return nil, nil }
func (noopCache) SetProperty(context.Context, string, *models.Property, time.Duration) error {
	return nil
}
func (noopCache) GetSearchResults(context.Context, string) ([]string, error) { return nil, nil }
func (noopCache) SetSearchResults(context.Context, string, []string, time.Duration) error {
	return nil
}
func (noopCache) InvalidateProperty(context.Context, string) error { return nil }
func (noopCache) Delete(context.Context, string) error             { return nil }

type fakeUserRepo struct {
	users map[primitive.ObjectID]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]models.User)}
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = time.Now().UTC()
	f.users[user.ID] = *user
	return nil
}

type fakeMessageRepo struct {
	messages []models.Message
}

func (f *fakeMessageRepo) Create(_ context.Context, message *models.Message) error {
	if message.ID.IsZero() {
		message.ID = primitive.NewObjectID()
	}
	message.CreatedAt = time.Now().UTC()
	f.messages = append(f.messages, *message)
	return nil
}

func (f *fakeMessageRepo) FindByConversation(_ context.Context, conversationID string) ([]models.Message, error) {
	var out []models.Message
	for _, message := range f.messages {
		if message.ConversationID == conversationID {
			out = append(out, message)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) FindLatestPerConversation(_ context.Context, user primitive.ObjectID) ([]models.Message, error) {
	latest := make(map[string]models.Message)
	for _, message := range f.messages {
		if message.Sender != user && message.Recipient != user {
			continue
		}
		if current, ok := latest[message.ConversationID]; !ok || message.CreatedAt.After(current.CreatedAt) {
			latest[message.ConversationID] = message
		}
	}
	out := make([]models.Message, 0, len(latest))
	for _, message := range latest {
		out = append(out, message)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeMessageRepo) CountUnread(_ context.Context, conversationID string, recipient primitive.ObjectID) (int64, error) {
	var count int64
	for _, message := range f.messages {
		if message.ConversationID == conversationID && message.Recipient == recipient && !message.Read {
			count++
		}
	}
	return count, nil
}

func (f *fakeMessageRepo) MarkRead(_ context.Context, conversationID string, recipient primitive.ObjectID) error {
	for i := range f.messages {
		if f.messages[i].ConversationID == conversationID && f.messages[i].Recipient == recipient {
			f.messages[i].Read = true
		}
	}
	return nil
}
