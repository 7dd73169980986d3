// File: calmora/services/message/message_test.go
package message

import (
	"testing"

	"calmora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessageRepo struct {
	messages []models.Message
	readFor  []string
}

func (r *fakeMessageRepo) Create(message *models.Message) error {
	r.messages = append(r.messages, *message)
	return nil
}

func (r *fakeMessageRepo) GetConversation(userID, therapistID string) ([]models.Message, error) {
	var out []models.Message
	for _, m := range r.messages {
		if m.UserID == userID && m.TherapistID == therapistID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) MarkRead(userID, therapistID, recipient string) error {
	r.readFor = append(r.readFor, recipient)
	return nil
}

func TestSendRecordsMessage(t *testing.T) {
	repo := &fakeMessageRepo{}
	svc := &DefaultMessageService{Repo: repo}

	msg, err := svc.Send("user-1", "th-1", "patient", "  Hello, doctor.  ")
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "Hello, doctor.", msg.Body)
	assert.Equal(t, "patient", msg.Sender)
	require.Len(t, repo.messages, 1)
}

func TestSendRejectsEmptyBody(t *testing.T) {
	svc := &DefaultMessageService{Repo: &fakeMessageRepo{}}

	_, err := svc.Send("user-1", "th-1", "patient", "   ")
	assert.Error(t, err)
}

func TestSendRejectsUnknownSender(t *testing.T) {
	svc := &DefaultMessageService{Repo: &fakeMessageRepo{}}

	_, err := svc.Send("user-1", "th-1", "admin", "hi")
	assert.Error(t, err)
}

func TestGetConversationMarksReaderSideRead(t *testing.T) {
	repo := &fakeMessageRepo{}
	svc := &DefaultMessageService{Repo: repo}

	_, err := svc.Send("user-1", "th-1", "patient", "Hello")
	require.NoError(t, err)
	_, err = svc.Send("user-1", "th-1", "therapist", "Hi there")
	require.NoError(t, err)

	messages, err := svc.GetConversation("user-1", "th-1", "patient")
	require.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.Equal(t, []string{"patient"}, repo.readFor)
}
