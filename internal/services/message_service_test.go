package services

import (
	"context"
	"testing"

	"easyrent-backend/internal/models"
	"easyrent-backend/internal/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestMessageService(users *fakeUserRepo) (*MessageService, *fakeMessageRepo) {
	repo := &fakeMessageRepo{}
	return NewMessageService(repo, users, validators.NewMessageValidator()), repo
}

func TestConversationIDIsSymmetricAndStable(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	assert.Equal(t, ConversationID(a, b), ConversationID(b, a))
	assert.Equal(t, ConversationID(a, b), ConversationID(a, b))
	assert.NotEqual(t, ConversationID(a, b), ConversationID(a, primitive.NewObjectID()))
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	svc, repo := newTestMessageService(users)

	recipient := &models.User{Name: "Gulnara", Email: "gulnara@example.com"}
	require.NoError(t, users.Create(ctx, recipient))
	sender := primitive.NewObjectID()

	message, err := svc.SendMessage(ctx, sender.Hex(), recipient.ID.Hex(), "", "Is the apartment still available?")
	require.NoError(t, err)
	assert.Equal(t, ConversationID(sender, recipient.ID), message.ConversationID)
	assert.False(t, message.Read)
	assert.Len(t, repo.messages, 1)
}

func TestSendMessageRejections(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	svc, _ := newTestMessageService(users)

	recipient := &models.User{Name: "Gulnara", Email: "gulnara@example.com"}
	require.NoError(t, users.Create(ctx, recipient))
	sender := primitive.NewObjectID()

	// empty content
	_, err := svc.SendMessage(ctx, sender.Hex(), recipient.ID.Hex(), "", "  ")
	assert.Error(t, err)

	// messaging yourself
	_, err = svc.SendMessage(ctx, sender.Hex(), sender.Hex(), "", "hello me")
	assert.Error(t, err)

	// unknown recipient
	_, err = svc.SendMessage(ctx, sender.Hex(), primitive.NewObjectID().Hex(), "", "anyone there?")
	assert.Error(t, err)

	// malformed property reference
	_, err = svc.SendMessage(ctx, sender.Hex(), recipient.ID.Hex(), "xyz", "about this one")
	assert.Error(t, err)
}

func TestConversationFlow(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	svc, _ := newTestMessageService(users)

	alisher := &models.User{Name: "Alisher", Email: "alisher@example.com"}
	bermet := &models.User{Name: "Bermet", Email: "bermet@example.com"}
	require.NoError(t, users.Create(ctx, alisher))
	require.NoError(t, users.Create(ctx, bermet))

	_, err := svc.SendMessage(ctx, alisher.ID.Hex(), bermet.ID.Hex(), "", "Hi, about the listing")
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, bermet.ID.Hex(), alisher.ID.Hex(), "", "Hi! It is available")
	require.NoError(t, err)

	// Bermet sees one conversation with Alisher, one unread message in it
	summaries, err := svc.ListConversations(ctx, bermet.ID.Hex())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, alisher.ID.Hex(), summaries[0].Peer.ID)
	assert.Equal(t, "Alisher", summaries[0].Peer.Name)
	assert.Equal(t, int64(1), summaries[0].Unread)

	// opening the dialog returns both messages and clears the unread count
	messages, err := svc.GetConversation(ctx, bermet.ID.Hex(), alisher.ID.Hex())
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Hi, about the listing", messages[0].Content)

	summaries, err = svc.ListConversations(ctx, bermet.ID.Hex())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, int64(0), summaries[0].Unread)
}
