package mail

import (
	"context"
	"testing"

	"portfolio/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
)

type fakeSMTPClient struct {
	messages []*gomail.Msg
	err      error
}

func (f *fakeSMTPClient) DialAndSendWithContext(_ context.Context, messages ...*gomail.Msg) error {
	f.messages = append(f.messages, messages...)

	return f.err
}

func TestSMTPSender_Send(t *testing.T) {
	client := &fakeSMTPClient{}
	sender := newSMTPSender(client, "site@richard.dev", nil)

	info, err := sender.Send(context.Background(), "ana@example.com", "Hello", "<p>hi</p>")
	require.NoError(t, err)
	assert.Equal(t, []string{"ana@example.com"}, info.Accepted)
	assert.NotEmpty(t, info.MessageID)

	require.Len(t, client.messages, 1)
	msg := client.messages[0]
	assert.Equal(t, []string{"Hello"}, msg.GetGenHeader(gomail.HeaderSubject))
	to := msg.GetToString()
	assert.Equal(t, []string{"<ana@example.com>"}, to)
}

func TestSMTPSender_InvalidRecipient(t *testing.T) {
	client := &fakeSMTPClient{}
	sender := newSMTPSender(client, "site@richard.dev", nil)

	info, err := sender.Send(context.Background(), "not an address", "Hello", "<p>hi</p>")
	assert.Error(t, err)
	assert.Equal(t, []string{"not an address"}, info.Rejected)
	assert.Empty(t, client.messages)
}

func TestSMTPSender_TransportFailure(t *testing.T) {
	client := &fakeSMTPClient{err: errors.New("connection refused")}
	sender := newSMTPSender(client, "site@richard.dev", nil)

	info, err := sender.Send(context.Background(), "ana@example.com", "Hello", "<p>hi</p>")
	assert.Error(t, err)
	assert.Equal(t, []string{"ana@example.com"}, info.Rejected)
}

func TestSMTPSender_SendWithInline(t *testing.T) {
	client := &fakeSMTPClient{}
	sender := newSMTPSender(client, "site@richard.dev", nil)

	_, err := sender.SendWithInline(context.Background(), "ana@example.com", "Hello", `<img src="cid:qr">`,
		service.InlineImage{ContentID: "qr", Filename: "qr.png", ContentType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}},
	)
	require.NoError(t, err)

	require.Len(t, client.messages, 1)
	embeds := client.messages[0].GetEmbeds()
	require.Len(t, embeds, 1)
	assert.Equal(t, "qr.png", embeds[0].Name)
}
