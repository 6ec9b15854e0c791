package mail

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeSender struct {
	mu     sync.Mutex
	sent   []sentMail
	failTo string
}

func (f *fakeSender) Send(_ context.Context, to, subject, htmlBody string) (*service.DeliveryInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if to == f.failTo {
		return nil, errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: htmlBody})

	return &service.DeliveryInfo{MessageID: "<id@test>", Accepted: []string{to}}, nil
}

func (f *fakeSender) subjects() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, 0, len(f.sent))
	for _, m := range f.sent {
		out = append(out, m.to+" | "+m.subject)
	}
	sort.Strings(out)

	return out
}

type fakeAlert struct {
	calls []string
	err   error
}

func (f *fakeAlert) Notify(_ context.Context, address, text string) error {
	f.calls = append(f.calls, address+" | "+text)

	return f.err
}

var fixedNow = time.Date(2025, 2, 20, 15, 4, 5, 0, time.UTC)

func testDeps(sender *fakeSender, alert *fakeAlert) Deps {
	return Deps{
		Sender:       sender,
		Alert:        alert,
		WebURL:       "https://richard.dev/",
		AdminEmail:   "admin@richard.dev",
		WorkEmail:    "work@richard.dev",
		AlertAddress: "+573000000000",
		Now:          func() time.Time { return fixedNow },
		Intn:         func(int) int { return 0 },
	}
}

func testOptions() Options {
	return Options{
		ID:           uuid.MustParse("0194f1a2-0000-7000-8000-000000000001"),
		Name:         "Ana",
		Email:        "ana@example.com",
		TimeZone:     "America/Bogota",
		Message:      "The contact page crashes",
		ArticleTitle: "Go generics",
		ArticleLink:  "https://blog.richard.dev/go-generics",
		ArticleImage: "https://blog.richard.dev/go-generics.png",
	}
}

func TestNewEmail_UnknownTag(t *testing.T) {
	email, ok := NewEmail(entity.EmailType("newsletter"), testOptions(), testDeps(&fakeSender{}, &fakeAlert{}))
	assert.False(t, ok)
	assert.Nil(t, email)
}

func TestNewEmail_Variants(t *testing.T) {
	tests := []struct {
		tag  entity.EmailType
		want []string
	}{
		{
			tag:  entity.EmailTypeGreetings,
			want: []string{"ana@example.com | Grateful for your Message, Ana let's explore more together!"},
		},
		{
			tag: entity.EmailTypeOpinion,
			want: []string{
				"admin@richard.dev | You have received an opinion from Ana - Take a look!",
				"ana@example.com | Your Feedback Matters, Ana – Thanks for Helping Me Grow!",
			},
		},
		{
			tag: entity.EmailTypeWork,
			want: []string{
				"ana@example.com | Thank you for reaching out, Ana! I'm excited to discuss your project.",
				"work@richard.dev | Nueva consulta de trabajo de Ana: Oportunidad de colaboración potencial",
			},
		},
		{
			tag: entity.EmailTypeErrorReport,
			want: []string{
				"admin@richard.dev | New Error Report from Ana",
				"ana@example.com | Thank you for reporting the issue, Ana.",
			},
		},
		{
			tag: entity.EmailTypeProposal,
			want: []string{
				"admin@richard.dev | New Proposal from Ana",
				"ana@example.com | Thank you for your proposal, Ana!",
			},
		},
		{
			tag: entity.EmailTypeReview,
			want: []string{
				"admin@richard.dev | New Review from Ana",
				"ana@example.com | Thank you for your review, Ana!",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			sender := &fakeSender{}
			email, ok := NewEmail(tt.tag, testOptions(), testDeps(sender, &fakeAlert{}))
			require.True(t, ok)
			assert.Equal(t, tt.tag, email.Type())

			require.NoError(t, email.Send(context.Background()))
			assert.Equal(t, tt.want, sender.subjects())
		})
	}
}

func TestErrorReportEmail_AlertsAdmin(t *testing.T) {
	sender := &fakeSender{}
	alert := &fakeAlert{}

	email, ok := NewEmail(entity.EmailTypeErrorReport, testOptions(), testDeps(sender, alert))
	require.True(t, ok)
	require.NoError(t, email.Send(context.Background()))

	require.Len(t, alert.calls, 1)
	assert.Contains(t, alert.calls[0], "+573000000000 | ")
	assert.Contains(t, alert.calls[0], "3:04:05 PM")
	assert.Contains(t, alert.calls[0], "https://richard.dev/inbox/0194f1a2-0000-7000-8000-000000000001")
	assert.Contains(t, alert.calls[0], "The contact page crashes")
}

func TestErrorReportEmail_AlertFailureIsIgnored(t *testing.T) {
	sender := &fakeSender{}
	alert := &fakeAlert{err: errors.New("twilio down")}

	email, _ := NewEmail(entity.EmailTypeErrorReport, testOptions(), testDeps(sender, alert))
	require.NoError(t, email.Send(context.Background()))
	assert.Len(t, sender.subjects(), 2)
}

func TestErrorReportEmail_CustomerFailureStopsAdminCopy(t *testing.T) {
	sender := &fakeSender{failTo: "ana@example.com"}
	alert := &fakeAlert{}

	email, _ := NewEmail(entity.EmailTypeErrorReport, testOptions(), testDeps(sender, alert))
	assert.Error(t, email.Send(context.Background()))
	assert.Empty(t, alert.calls)
	assert.Empty(t, sender.subjects())
}

func TestOpinionEmail_AdminFailureIsReturned(t *testing.T) {
	sender := &fakeSender{failTo: "admin@richard.dev"}

	email, _ := NewEmail(entity.EmailTypeOpinion, testOptions(), testDeps(sender, &fakeAlert{}))
	assert.Error(t, email.Send(context.Background()))
}

func TestReviewEmail_BodiesQuoteTheArticle(t *testing.T) {
	sender := &fakeSender{}

	email, _ := NewEmail(entity.EmailTypeReview, testOptions(), testDeps(sender, &fakeAlert{}))
	require.NoError(t, email.Send(context.Background()))

	require.Len(t, sender.sent, 2)
	for _, m := range sender.sent {
		assert.Contains(t, m.body, "Go generics")
	}
}

func TestWorkEmail_FallsBackToAdminMailbox(t *testing.T) {
	sender := &fakeSender{}
	deps := testDeps(sender, &fakeAlert{})
	deps.WorkEmail = ""

	email, _ := NewEmail(entity.EmailTypeWork, testOptions(), deps)
	require.NoError(t, email.Send(context.Background()))
	assert.Contains(t, sender.subjects()[0], "admin@richard.dev")
}

func TestGreetingEmail_EscapesVisitorInput(t *testing.T) {
	sender := &fakeSender{}
	opts := testOptions()
	opts.Name = "<script>alert(1)</script>"

	email, _ := NewEmail(entity.EmailTypeGreetings, opts, testDeps(sender, &fakeAlert{}))
	require.NoError(t, email.Send(context.Background()))

	require.Len(t, sender.sent, 1)
	assert.NotContains(t, sender.sent[0].body, "<script>")
}
